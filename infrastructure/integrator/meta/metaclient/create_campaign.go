package metaclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/meta/domain"
)

// CreateCampaign cria uma campanha na conta de anúncios configurada
func (c *MetaClient) CreateCampaign(req *metadomain.CampaignCreateRequest) (*metadomain.CampaignRef, error) {
	// Garantir que o token seja válido antes de fazer a requisição
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	endpoint := fmt.Sprintf("%s/act_%s/campaigns", c.Cfg.Meta.URL, c.Cfg.Meta.AdAccountID)

	categories := req.SpecialAdCategories
	if categories == nil {
		categories = []string{}
	}
	categoriesJSON, err := json.Marshal(categories)
	if err != nil {
		return nil, fmt.Errorf("erro ao codificar special_ad_categories: %w", err)
	}

	params := url.Values{}
	params.Add("name", req.Name)
	params.Add("objective", req.Objective)
	params.Add("status", req.Status)
	params.Add("special_ad_categories", string(categoriesJSON))
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	if req.DailyBudget > 0 {
		params.Add("daily_budget", strconv.FormatInt(req.DailyBudget, 10))
	}
	if req.LifetimeBudget > 0 {
		params.Add("lifetime_budget", strconv.FormatInt(req.LifetimeBudget, 10))
	}
	if req.BidStrategy != "" {
		params.Add("bid_strategy", req.BidStrategy)
	}
	if req.BuyingType != "" {
		params.Add("buying_type", req.BuyingType)
	}
	if req.StartTime != "" {
		params.Add("start_time", req.StartTime)
	}
	if req.StopTime != "" {
		params.Add("stop_time", req.StopTime)
	}

	httpReq, err := http.NewRequest("POST", endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := &http.Client{}
	resp, err := client.Do(httpReq)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		// Se o erro indica que o token foi renovado, tentar novamente
		if err.Error() == "token expirado e renovado, por favor tente novamente" {
			return c.CreateCampaign(req)
		}
		return nil, err
	}

	var ref metadomain.CampaignRef
	if err := json.Unmarshal(body, &ref); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	if ref.ID == "" {
		return nil, errors.New("no campaign id returned")
	}

	return &ref, nil
}
