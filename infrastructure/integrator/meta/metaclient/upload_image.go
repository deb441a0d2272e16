package metaclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/meta/domain"
)

// UploadImage envia os bytes de uma imagem para a biblioteca de mídia da conta
// e retorna o hash gerado, usado depois na criação de criativos
func (c *MetaClient) UploadImage(filename string, data []byte) (string, error) {
	// Garantir que o token seja válido antes de fazer a requisição
	if err := c.EnsureValidToken(); err != nil {
		return "", fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	if len(data) == 0 {
		return "", errors.New("imagem vazia")
	}

	endpoint := fmt.Sprintf("%s/act_%s/adimages", c.Cfg.Meta.URL, c.Cfg.Meta.AdAccountID)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(filename, filename)
	if err != nil {
		return "", fmt.Errorf("erro ao montar multipart: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("erro ao escrever imagem no multipart: %w", err)
	}

	if err := writer.WriteField("access_token", c.Cfg.Meta.AccessToken); err != nil {
		return "", fmt.Errorf("erro ao escrever access_token no multipart: %w", err)
	}

	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("erro ao finalizar multipart: %w", err)
	}

	httpReq, err := http.NewRequest("POST", endpoint, &buf)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return "", err
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

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
			return c.UploadImage(filename, data)
		}
		return "", err
	}

	var response metadomain.ImageUploadResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return "", err
	}

	// A API indexa o resultado pelo nome do arquivo enviado. Como enviamos
	// uma imagem por requisição, o primeiro hash encontrado é o da imagem.
	if image, ok := response.Images[filename]; ok && image.Hash != "" {
		return image.Hash, nil
	}
	for _, image := range response.Images {
		if image.Hash != "" {
			return image.Hash, nil
		}
	}

	return "", errors.New("no image hash returned")
}
