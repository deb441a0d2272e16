package metaclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/meta/domain"
)

// CreateAd cria um anúncio ligando um conjunto de anúncios a um criativo
func (c *MetaClient) CreateAd(req *metadomain.AdCreateRequest) (*metadomain.AdRef, error) {
	// Garantir que o token seja válido antes de fazer a requisição
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	endpoint := fmt.Sprintf("%s/act_%s/ads", c.Cfg.Meta.URL, c.Cfg.Meta.AdAccountID)

	creativeJSON, err := json.Marshal(req.Creative)
	if err != nil {
		return nil, fmt.Errorf("erro ao codificar creative: %w", err)
	}

	params := url.Values{}
	params.Add("name", req.Name)
	params.Add("adset_id", req.AdSetID)
	params.Add("creative", string(creativeJSON))
	params.Add("status", req.Status)
	params.Add("access_token", c.Cfg.Meta.AccessToken)

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
			return c.CreateAd(req)
		}
		return nil, err
	}

	var ref metadomain.AdRef
	if err := json.Unmarshal(body, &ref); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	if ref.ID == "" {
		return nil, errors.New("no ad id returned")
	}

	return &ref, nil
}
