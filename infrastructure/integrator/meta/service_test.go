package meta

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/meta/domain"
	clientmocks "github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/campaign-launcher-api/internal/config"
	"github.com/vfg2006/campaign-launcher-api/internal/domain"
	"github.com/vfg2006/campaign-launcher-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

func newTestIntegrator(t *testing.T) (*MetaIntegrator, *clientmocks.MockClient, *mocks.MockMediaUploader) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := clientmocks.NewMockClient(ctrl)
	mockMedia := mocks.NewMockMediaUploader(ctrl)

	cfg := &config.Config{
		Meta: config.Meta{PageID: "page_001"},
	}

	return New(cfg, mockClient, mockMedia), mockClient, mockMedia
}

func testProduct() *domain.Product {
	return domain.NewProduct(domain.Product{
		Name:    "Curso de Tráfego",
		BaseURL: "https://pay.hotmart.com/A12345",
		Images:  []string{"https://cdn.example.com/banner.jpg"},
		Videos:  []string{"https://cdn.example.com/promo.mp4"},
	})
}

func testCampaignParams() *domain.CampaignParameters {
	lifetime := 500.0

	return &domain.CampaignParameters{
		Name:        "Lancamento",
		Objective:   domain.ObjectiveOutcomeSales,
		DailyBudget: 150,
		BidStrategy: domain.BidLowestCostWithoutCap,
		AdSets: []domain.AdSetParameters{
			{
				Name:             "Publico Frio",
				OptimizationGoal: domain.OptimizationLinkClicks,
				BillingEvent:     "IMPRESSIONS",
				DailyBudget:      50,
				LifetimeBudget:   &lifetime,
				Targeting: domain.AudienceTargeting{
					AgeRange:  domain.AgeRange{Min: 25, Max: 55},
					Locations: []string{"BR"},
				},
			},
		},
		AdCreatives: []domain.AdCreative{
			{
				PrimaryText:     "Aprenda tráfego pago do zero",
				Headline:        "Última turma do ano",
				Description:     "Vagas limitadas",
				CallToAction:    "LEARN_MORE",
				LinkDestination: domain.URLCheckout,
			},
			{
				PrimaryText:  "Oferta especial",
				Headline:     "Garanta sua vaga",
				CallToAction: "SIGN_UP",
			},
		},
	}
}

func TestMetaIntegrator_BuildCampaign(t *testing.T) {
	stamp := utils.DateStamp(time.Now())

	t.Run("pipeline completo cria campanha, conjunto e um anúncio por criativo × mídia", func(t *testing.T) {
		service, mockClient, mockMedia := newTestIntegrator(t)

		mockMedia.EXPECT().
			UploadMedia([]string{"https://cdn.example.com/banner.jpg"}, []string{"https://cdn.example.com/promo.mp4"}).
			Return(&domain.MediaUploadResult{
				ImageHashes: []string{"hash_img"},
				VideoIDs:    []string{"vid_001"},
				Failures:    []domain.MediaUploadFailure{},
			})

		mockClient.EXPECT().
			CreateCampaign(gomock.Any()).
			DoAndReturn(func(req *metadomain.CampaignCreateRequest) (*metadomain.CampaignRef, error) {
				assert.Equal(t, "Lancamento_"+stamp, req.Name)
				assert.Equal(t, "OUTCOME_SALES", req.Objective)
				assert.Equal(t, domain.StatusPaused, req.Status)
				assert.Equal(t, domain.BuyingTypeAuction, req.BuyingType)
				assert.Equal(t, int64(15000), req.DailyBudget)
				return &metadomain.CampaignRef{ID: "cmp_001"}, nil
			})

		mockClient.EXPECT().
			CreateAdSet(gomock.Any()).
			DoAndReturn(func(req *metadomain.AdSetCreateRequest) (*metadomain.AdSetRef, error) {
				assert.Equal(t, "Publico Frio", req.Name)
				assert.Equal(t, "cmp_001", req.CampaignID)
				assert.Equal(t, int64(5000), req.DailyBudget)
				assert.Equal(t, int64(50000), req.LifetimeBudget)
				assert.Equal(t, domain.StatusPaused, req.Status)
				assert.Equal(t, 25, req.Targeting.AgeMin)
				assert.Equal(t, []string{"BR"}, req.Targeting.GeoLocations.Countries)
				return &metadomain.AdSetRef{ID: "set_001"}, nil
			})

		// 2 criativos × (1 imagem + 1 vídeo) = 4 pares criativo+anúncio
		creativeIDs := []string{"cr_1", "cr_2", "cr_3", "cr_4"}
		creativeCalls := 0
		mockClient.EXPECT().
			CreateAdCreative(gomock.Any()).
			DoAndReturn(func(req *metadomain.CreativeCreateRequest) (*metadomain.CreativeRef, error) {
				assert.Equal(t, "page_001", req.ObjectStorySpec.PageID)
				if req.ObjectStorySpec.LinkData != nil {
					assert.Equal(t, "Creative_"+stamp, req.Name)
					assert.Equal(t, "hash_img", req.ObjectStorySpec.LinkData.ImageHash)
				} else {
					assert.Equal(t, "Creative_Video_"+stamp, req.Name)
					assert.Equal(t, "vid_001", req.ObjectStorySpec.VideoData.VideoID)
				}
				ref := &metadomain.CreativeRef{ID: creativeIDs[creativeCalls]}
				creativeCalls++
				return ref, nil
			}).
			Times(4)

		adCalls := 0
		mockClient.EXPECT().
			CreateAd(gomock.Any()).
			DoAndReturn(func(req *metadomain.AdCreateRequest) (*metadomain.AdRef, error) {
				assert.Equal(t, "set_001", req.AdSetID)
				assert.Equal(t, domain.StatusPaused, req.Status)
				adCalls++
				return &metadomain.AdRef{ID: "ad_" + req.Creative.CreativeID}, nil
			}).
			Times(4)

		result, err := service.BuildCampaign(testProduct(), testCampaignParams())

		assert.NoError(t, err)
		assert.Equal(t, "cmp_001", result.CampaignID)
		assert.Equal(t, "Lancamento_"+stamp, result.CampaignName)
		assert.Equal(t, []string{"set_001"}, result.AdSetIDs)
		assert.Equal(t, []string{"ad_cr_1", "ad_cr_2", "ad_cr_3", "ad_cr_4"}, result.AdIDs)
		assert.Equal(t, 1, result.ImagesUploaded)
		assert.Equal(t, 1, result.VideosUploaded)
		assert.Equal(t, 4, adCalls)
	})

	t.Run("nenhuma mídia enviada ainda cria campanha e conjunto, mas zero anúncios", func(t *testing.T) {
		service, mockClient, mockMedia := newTestIntegrator(t)

		mockMedia.EXPECT().
			UploadMedia(gomock.Any(), gomock.Any()).
			Return(&domain.MediaUploadResult{
				ImageHashes: []string{},
				VideoIDs:    []string{},
				Failures: []domain.MediaUploadFailure{
					{URL: "https://cdn.example.com/banner.jpg", Kind: domain.MediaKindImage, Reason: "timeout"},
				},
			})

		mockClient.EXPECT().
			CreateCampaign(gomock.Any()).
			Return(&metadomain.CampaignRef{ID: "cmp_002"}, nil)

		mockClient.EXPECT().
			CreateAdSet(gomock.Any()).
			Return(&metadomain.AdSetRef{ID: "set_002"}, nil)

		result, err := service.BuildCampaign(testProduct(), testCampaignParams())

		assert.NoError(t, err)
		assert.Equal(t, []string{"set_002"}, result.AdSetIDs)
		assert.Empty(t, result.AdIDs)
		assert.Equal(t, 0, result.ImagesUploaded)
		assert.Len(t, result.UploadFailures, 1)
	})

	t.Run("falha na criação da campanha propaga sem criar conjuntos", func(t *testing.T) {
		service, mockClient, mockMedia := newTestIntegrator(t)

		mockMedia.EXPECT().
			UploadMedia(gomock.Any(), gomock.Any()).
			Return(&domain.MediaUploadResult{ImageHashes: []string{}, VideoIDs: []string{}})

		mockClient.EXPECT().
			CreateCampaign(gomock.Any()).
			Return(nil, errors.New("(#100) Invalid parameter"))

		result, err := service.BuildCampaign(testProduct(), testCampaignParams())

		assert.Nil(t, result)
		assert.ErrorContains(t, err, "erro ao criar campanha")
	})

	t.Run("falha no conjunto propaga sem rollback da campanha", func(t *testing.T) {
		service, mockClient, mockMedia := newTestIntegrator(t)

		mockMedia.EXPECT().
			UploadMedia(gomock.Any(), gomock.Any()).
			Return(&domain.MediaUploadResult{ImageHashes: []string{}, VideoIDs: []string{}})

		mockClient.EXPECT().
			CreateCampaign(gomock.Any()).
			Return(&metadomain.CampaignRef{ID: "cmp_003"}, nil)

		mockClient.EXPECT().
			CreateAdSet(gomock.Any()).
			Return(nil, errors.New("(#2654) adset rejected"))

		result, err := service.BuildCampaign(testProduct(), testCampaignParams())

		assert.Nil(t, result)
		assert.ErrorContains(t, err, "erro ao criar conjunto de anúncios")
	})

	t.Run("status e buying type explícitos são respeitados", func(t *testing.T) {
		service, mockClient, mockMedia := newTestIntegrator(t)

		params := testCampaignParams()
		params.Status = "ACTIVE"
		params.BuyingType = "RESERVED"
		params.AdSets = nil
		params.AdCreatives = nil

		mockMedia.EXPECT().
			UploadMedia(gomock.Any(), gomock.Any()).
			Return(&domain.MediaUploadResult{ImageHashes: []string{}, VideoIDs: []string{}})

		mockClient.EXPECT().
			CreateCampaign(gomock.Any()).
			DoAndReturn(func(req *metadomain.CampaignCreateRequest) (*metadomain.CampaignRef, error) {
				assert.Equal(t, "ACTIVE", req.Status)
				assert.Equal(t, "RESERVED", req.BuyingType)
				return &metadomain.CampaignRef{ID: "cmp_004"}, nil
			})

		_, err := service.BuildCampaign(testProduct(), params)
		assert.NoError(t, err)
	})

	t.Run("apelidos de públicos são resolvidos pela configuração", func(t *testing.T) {
		service, mockClient, mockMedia := newTestIntegrator(t)
		service.cfg.Audiences = config.Audiences{
			WebsiteVisitorsID: "23850000000000001",
			CartAbandonersID:  "23850000000000002",
		}

		params := testCampaignParams()
		params.AdSets[0].Targeting.CustomAudiences = []string{AudienceWebsiteVisitors, "23859999999999999"}
		params.AdSets[0].Targeting.ExcludedCustomAudiences = []string{AudienceCartAbandoners}
		params.AdCreatives = nil

		mockMedia.EXPECT().
			UploadMedia(gomock.Any(), gomock.Any()).
			Return(&domain.MediaUploadResult{ImageHashes: []string{}, VideoIDs: []string{}})

		mockClient.EXPECT().
			CreateCampaign(gomock.Any()).
			Return(&metadomain.CampaignRef{ID: "cmp_005"}, nil)

		mockClient.EXPECT().
			CreateAdSet(gomock.Any()).
			DoAndReturn(func(req *metadomain.AdSetCreateRequest) (*metadomain.AdSetRef, error) {
				assert.Equal(t, []metadomain.IDSpec{
					{ID: "23850000000000001"},
					{ID: "23859999999999999"},
				}, req.Targeting.CustomAudiences)
				assert.Equal(t, []metadomain.IDSpec{{ID: "23850000000000002"}}, req.Targeting.ExcludedCustomAudiences)
				return &metadomain.AdSetRef{ID: "set_005"}, nil
			})

		_, err := service.BuildCampaign(testProduct(), params)
		assert.NoError(t, err)
	})

	// Executar o pipeline duas vezes nunca reaproveita entidades remotas
	t.Run("dois builds criam campanhas independentes", func(t *testing.T) {
		service, mockClient, mockMedia := newTestIntegrator(t)

		params := testCampaignParams()
		params.AdSets = nil
		params.AdCreatives = nil

		mockMedia.EXPECT().
			UploadMedia(gomock.Any(), gomock.Any()).
			Return(&domain.MediaUploadResult{ImageHashes: []string{}, VideoIDs: []string{}}).
			Times(2)

		gomock.InOrder(
			mockClient.EXPECT().CreateCampaign(gomock.Any()).Return(&metadomain.CampaignRef{ID: "cmp_a"}, nil),
			mockClient.EXPECT().CreateCampaign(gomock.Any()).Return(&metadomain.CampaignRef{ID: "cmp_b"}, nil),
		)

		first, err := service.BuildCampaign(testProduct(), params)
		assert.NoError(t, err)

		second, err := service.BuildCampaign(testProduct(), params)
		assert.NoError(t, err)

		assert.NotEqual(t, first.CampaignID, second.CampaignID)
	})
}
