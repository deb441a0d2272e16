package meta

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/campaign-launcher-api/internal/config"
	"github.com/vfg2006/campaign-launcher-api/internal/domain"
	"github.com/vfg2006/campaign-launcher-api/pkg/utils"
)

// Integrator constrói campanhas completas na plataforma de anúncios
type Integrator interface {
	BuildCampaign(product *domain.Product, params *domain.CampaignParameters) (*domain.CampaignBuildResult, error)
}

// MediaUploader isola o envio de mídias do restante do pipeline
type MediaUploader interface {
	UploadMedia(imageURLs, videoURLs []string) *domain.MediaUploadResult
}

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
	Media  MediaUploader
}

func New(cfg *config.Config, client metaclient.Client, media MediaUploader) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
		Media:  media,
	}
}

// BuildCampaign executa o pipeline de lançamento na ordem fixa: upload de
// mídias, criação da campanha, criação dos conjuntos de anúncios e, por fim,
// um anúncio por criativo × mídia em cada conjunto. Tudo é criado pausado;
// a ativação é sempre manual.
//
// Falhas a partir da criação da campanha propagam imediatamente, sem
// rollback: uma campanha incompleta pode ficar para trás na plataforma,
// pausada. Executar o pipeline duas vezes cria duas campanhas independentes.
func (s *MetaIntegrator) BuildCampaign(product *domain.Product, params *domain.CampaignParameters) (*domain.CampaignBuildResult, error) {
	media := s.Media.UploadMedia(product.Images, product.Videos)

	stamp := utils.DateStamp(time.Now())
	campaignName := params.Name + "_" + stamp

	status := params.Status
	if status == "" {
		status = domain.StatusPaused
	}

	buyingType := params.BuyingType
	if buyingType == "" {
		buyingType = domain.BuyingTypeAuction
	}

	campaign, err := s.Client.CreateCampaign(&metadomain.CampaignCreateRequest{
		Name:                campaignName,
		Objective:           string(params.Objective),
		Status:              status,
		SpecialAdCategories: params.SpecialAdCategories,
		DailyBudget:         utils.ToCents(params.DailyBudget),
		BidStrategy:         string(params.BidStrategy),
		BuyingType:          buyingType,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_name": campaignName,
			"error":         err.Error(),
		}).Error("launch: failed to create campaign")
		return nil, errors.Wrap(err, "erro ao criar campanha")
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id":   campaign.ID,
		"campaign_name": campaignName,
	}).Info("launch: campaign created")

	result := &domain.CampaignBuildResult{
		CampaignID:     campaign.ID,
		CampaignName:   campaignName,
		AdSetIDs:       []string{},
		AdIDs:          []string{},
		ImagesUploaded: len(media.ImageHashes),
		VideosUploaded: len(media.VideoIDs),
		UploadFailures: media.Failures,
	}

	for _, adSetParams := range params.AdSets {
		adSet, err := s.createAdSet(campaign.ID, adSetParams)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"ad_set_name": adSetParams.Name,
				"error":       err.Error(),
			}).Error("launch: failed to create ad set")
			return nil, errors.Wrap(err, "erro ao criar conjunto de anúncios")
		}

		result.AdSetIDs = append(result.AdSetIDs, adSet.ID)

		adIDs, err := s.createAds(adSet.ID, params.AdCreatives, product, media, stamp)
		if err != nil {
			return nil, err
		}

		result.AdIDs = append(result.AdIDs, adIDs...)
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaign.ID,
		"ad_sets":     len(result.AdSetIDs),
		"ads":         len(result.AdIDs),
	}).Info("launch: campaign build finished")

	return result, nil
}

func (s *MetaIntegrator) createAdSet(campaignID string, params domain.AdSetParameters) (*metadomain.AdSetRef, error) {
	targeting := params.Targeting
	targeting.CustomAudiences = s.resolveAudienceIDs(targeting.CustomAudiences)
	targeting.ExcludedCustomAudiences = s.resolveAudienceIDs(targeting.ExcludedCustomAudiences)

	req := &metadomain.AdSetCreateRequest{
		Name:             params.Name,
		CampaignID:       campaignID,
		DailyBudget:      utils.ToCents(params.DailyBudget),
		OptimizationGoal: string(params.OptimizationGoal),
		BillingEvent:     params.BillingEvent,
		BidStrategy:      string(params.BidStrategy),
		Targeting:        BuildTargetingSpec(targeting),
		StartTime:        params.StartTime,
		EndTime:          params.EndTime,
		Status:           domain.StatusPaused,
	}

	if params.LifetimeBudget != nil {
		req.LifetimeBudget = utils.ToCents(*params.LifetimeBudget)
	}

	return s.Client.CreateAdSet(req)
}

// Apelidos de públicos personalizados aceitos nos lançamentos. Os
// identificadores reais vêm da configuração, nunca do ambiente do processo.
const (
	AudienceWebsiteVisitors = "website_visitors"
	AudienceCartAbandoners  = "cart_abandoners"
)

// resolveAudienceIDs troca apelidos de públicos pelos identificadores da
// plataforma configurados. Valores que não são apelidos passam intactos.
func (s *MetaIntegrator) resolveAudienceIDs(values []string) []string {
	if len(values) == 0 {
		return values
	}

	resolved := make([]string, 0, len(values))
	for _, value := range values {
		switch value {
		case AudienceWebsiteVisitors:
			if s.cfg.Audiences.WebsiteVisitorsID != "" {
				value = s.cfg.Audiences.WebsiteVisitorsID
			}
		case AudienceCartAbandoners:
			if s.cfg.Audiences.CartAbandonersID != "" {
				value = s.cfg.Audiences.CartAbandonersID
			}
		}
		resolved = append(resolved, value)
	}

	return resolved
}

// createAds cria um anúncio por criativo × mídia enviada, na ordem dos
// criativos: primeiro as imagens, depois os vídeos
func (s *MetaIntegrator) createAds(
	adSetID string,
	creatives []domain.AdCreative,
	product *domain.Product,
	media *domain.MediaUploadResult,
	stamp string,
) ([]string, error) {
	adIDs := []string{}

	for _, creative := range creatives {
		for _, imageHash := range media.ImageHashes {
			ad, err := s.createImageAd(adSetID, creative, product, imageHash, stamp)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"ad_set_id":  adSetID,
					"image_hash": imageHash,
					"error":      err.Error(),
				}).Error("launch: failed to create image ad")
				return nil, errors.Wrap(err, "erro ao criar anúncio de imagem")
			}
			adIDs = append(adIDs, ad.ID)
		}

		for _, videoID := range media.VideoIDs {
			ad, err := s.createVideoAd(adSetID, creative, videoID, stamp)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"ad_set_id": adSetID,
					"video_id":  videoID,
					"error":     err.Error(),
				}).Error("launch: failed to create video ad")
				return nil, errors.Wrap(err, "erro ao criar anúncio de vídeo")
			}
			adIDs = append(adIDs, ad.ID)
		}
	}

	return adIDs, nil
}

func (s *MetaIntegrator) createImageAd(
	adSetID string,
	creative domain.AdCreative,
	product *domain.Product,
	imageHash string,
	stamp string,
) (*metadomain.AdRef, error) {
	creativeRef, err := s.Client.CreateAdCreative(&metadomain.CreativeCreateRequest{
		Name: "Creative_" + stamp,
		ObjectStorySpec: metadomain.ObjectStorySpec{
			PageID: s.cfg.Meta.PageID,
			LinkData: &metadomain.LinkData{
				Link:        creative.ResolveLink(product),
				Message:     creative.PrimaryText,
				Headline:    creative.Headline,
				Description: creative.Description,
				ImageHash:   imageHash,
				CallToAction: &metadomain.CallToAction{
					Type: creative.CallToAction,
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return s.Client.CreateAd(&metadomain.AdCreateRequest{
		Name:     "Ad_Image_" + stamp,
		AdSetID:  adSetID,
		Creative: metadomain.CreativeSpec{CreativeID: creativeRef.ID},
		Status:   domain.StatusPaused,
	})
}

func (s *MetaIntegrator) createVideoAd(
	adSetID string,
	creative domain.AdCreative,
	videoID string,
	stamp string,
) (*metadomain.AdRef, error) {
	creativeRef, err := s.Client.CreateAdCreative(&metadomain.CreativeCreateRequest{
		Name: "Creative_Video_" + stamp,
		ObjectStorySpec: metadomain.ObjectStorySpec{
			PageID: s.cfg.Meta.PageID,
			VideoData: &metadomain.VideoData{
				VideoID:         videoID,
				Title:           creative.Headline,
				Message:         creative.PrimaryText,
				Description:     creative.Description,
				LinkDescription: creative.Description,
				ImageURL:        creative.ThumbnailURL,
				CallToAction: &metadomain.CallToAction{
					Type: creative.CallToAction,
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return s.Client.CreateAd(&metadomain.AdCreateRequest{
		Name:     "Ad_Video_" + stamp,
		AdSetID:  adSetID,
		Creative: metadomain.CreativeSpec{CreativeID: creativeRef.ID},
		Status:   domain.StatusPaused,
	})
}
