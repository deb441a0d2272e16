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

// CreateAdSet cria um conjunto de anúncios dentro de uma campanha existente
func (c *MetaClient) CreateAdSet(req *metadomain.AdSetCreateRequest) (*metadomain.AdSetRef, error) {
	// Garantir que o token seja válido antes de fazer a requisição
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	if req.Targeting == nil {
		return nil, errors.New("targeting é obrigatório na criação do conjunto de anúncios")
	}

	endpoint := fmt.Sprintf("%s/act_%s/adsets", c.Cfg.Meta.URL, c.Cfg.Meta.AdAccountID)

	targetingJSON, err := json.Marshal(req.Targeting)
	if err != nil {
		return nil, fmt.Errorf("erro ao codificar targeting: %w", err)
	}

	params := url.Values{}
	params.Add("name", req.Name)
	params.Add("campaign_id", req.CampaignID)
	params.Add("optimization_goal", req.OptimizationGoal)
	params.Add("billing_event", req.BillingEvent)
	params.Add("targeting", string(targetingJSON))
	params.Add("status", req.Status)
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
	if req.BidAmount > 0 {
		params.Add("bid_amount", strconv.FormatInt(req.BidAmount, 10))
	}
	if req.PromotedObject != nil {
		promotedJSON, err := json.Marshal(req.PromotedObject)
		if err != nil {
			return nil, fmt.Errorf("erro ao codificar promoted_object: %w", err)
		}
		params.Add("promoted_object", string(promotedJSON))
	}
	if req.StartTime != "" {
		params.Add("start_time", req.StartTime)
	}
	if req.EndTime != "" {
		params.Add("end_time", req.EndTime)
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
			return c.CreateAdSet(req)
		}
		return nil, err
	}

	var ref metadomain.AdSetRef
	if err := json.Unmarshal(body, &ref); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	if ref.ID == "" {
		return nil, errors.New("no ad set id returned")
	}

	return &ref, nil
}
