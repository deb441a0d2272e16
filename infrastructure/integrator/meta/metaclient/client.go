package metaclient

import (
	"net/http"

	metadomain "github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-launcher-api/internal/config"
)

type Client interface {
	CreateCampaign(req *metadomain.CampaignCreateRequest) (*metadomain.CampaignRef, error)
	CreateAdSet(req *metadomain.AdSetCreateRequest) (*metadomain.AdSetRef, error)
	CreateAdCreative(req *metadomain.CreativeCreateRequest) (*metadomain.CreativeRef, error)
	CreateAd(req *metadomain.AdCreateRequest) (*metadomain.AdRef, error)
	UploadImage(filename string, data []byte) (string, error)
	UploadVideo(name, fileURL string) (string, error)
	RefreshToken() error
	EnsureValidToken() error
	HandleResponse(resp *http.Response) ([]byte, error)
}

type MetaClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	client := &MetaClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
	}
	return client
}

// RefreshToken obtém um novo token de longa duração
func (c *MetaClient) RefreshToken() error {
	return c.TokenManager.RefreshToken()
}

// EnsureValidToken verifica se o token atual é válido e tenta renová-lo se necessário
func (c *MetaClient) EnsureValidToken() error {
	return c.TokenManager.EnsureValidToken()
}

// HandleResponse manipula a resposta HTTP e verifica erros de token expirado
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	return c.TokenManager.HandleResponse(resp)
}
