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

// UploadVideo registra um vídeo na conta a partir de uma URL pública. O
// download é feito pela própria plataforma, então só enviamos a URL de origem.
func (c *MetaClient) UploadVideo(name, fileURL string) (string, error) {
	// Garantir que o token seja válido antes de fazer a requisição
	if err := c.EnsureValidToken(); err != nil {
		return "", fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	if fileURL == "" {
		return "", errors.New("url do vídeo não pode ser vazia")
	}

	endpoint := fmt.Sprintf("%s/act_%s/advideos", c.Cfg.Meta.URL, c.Cfg.Meta.AdAccountID)

	params := url.Values{}
	params.Add("file_url", fileURL)
	params.Add("access_token", c.Cfg.Meta.AccessToken)
	if name != "" {
		params.Add("name", name)
	}

	httpReq, err := http.NewRequest("POST", endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := &http.Client{}
	resp, err := client.Do(httpReq)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return "", err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		// Se o erro indica que o token foi renovado, tentar novamente
		if err.Error() == "token expirado e renovado, por favor tente novamente" {
			return c.UploadVideo(name, fileURL)
		}
		return "", err
	}

	var response metadomain.VideoUploadResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return "", err
	}

	if response.ID == "" {
		return "", errors.New("no video id returned")
	}

	return response.ID, nil
}
