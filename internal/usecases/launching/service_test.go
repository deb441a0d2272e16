package launching

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	metamocks "github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/campaign-launcher-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-launcher-api/internal/domain"
	"github.com/vfg2006/campaign-launcher-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *metamocks.MockIntegrator, *mocks.MockCampaignBuildRepository, *mocks.MockScheduledLaunchRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockIntegrator := metamocks.NewMockIntegrator(ctrl)
	mockBuildRepo := mocks.NewMockCampaignBuildRepository(ctrl)
	mockLaunchRepo := mocks.NewMockScheduledLaunchRepository(ctrl)

	service := &Service{
		integrator: mockIntegrator,
		buildRepo:  mockBuildRepo,
		launchRepo: mockLaunchRepo,
	}

	return service, mockIntegrator, mockBuildRepo, mockLaunchRepo
}

func validLaunchRequest() *domain.LaunchCampaignRequest {
	return &domain.LaunchCampaignRequest{
		Product: &domain.Product{
			Name:    "Curso de Tráfego",
			BaseURL: "https://pay.hotmart.com/A12345",
		},
		Campaign: &domain.CampaignParameters{
			Name:        "Lancamento",
			Objective:   domain.ObjectiveOutcomeSales,
			DailyBudget: 150,
			AdSets: []domain.AdSetParameters{
				{
					Name:      "Publico Frio",
					Targeting: domain.AudienceTargeting{AgeRange: domain.AgeRange{Min: 25, Max: 55}},
				},
			},
		},
	}
}

func TestService_LaunchCampaign_Validacao(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *domain.LaunchCampaignRequest) *domain.LaunchCampaignRequest
		details string
	}{
		{
			name:    "solicitação nula",
			mutate:  func(_ *domain.LaunchCampaignRequest) *domain.LaunchCampaignRequest { return nil },
			details: "produto e campanha são obrigatórios",
		},
		{
			name: "produto ausente",
			mutate: func(req *domain.LaunchCampaignRequest) *domain.LaunchCampaignRequest {
				req.Product = nil
				return req
			},
			details: "produto e campanha são obrigatórios",
		},
		{
			name: "base_url ausente",
			mutate: func(req *domain.LaunchCampaignRequest) *domain.LaunchCampaignRequest {
				req.Product.BaseURL = ""
				return req
			},
			details: "base_url do produto é obrigatória",
		},
		{
			name: "nome da campanha ausente",
			mutate: func(req *domain.LaunchCampaignRequest) *domain.LaunchCampaignRequest {
				req.Campaign.Name = ""
				return req
			},
			details: "nome da campanha é obrigatório",
		},
		{
			name: "objetivo ausente",
			mutate: func(req *domain.LaunchCampaignRequest) *domain.LaunchCampaignRequest {
				req.Campaign.Objective = ""
				return req
			},
			details: "objetivo da campanha é obrigatório",
		},
		{
			name: "orçamento diário não positivo",
			mutate: func(req *domain.LaunchCampaignRequest) *domain.LaunchCampaignRequest {
				req.Campaign.DailyBudget = 0
				return req
			},
			details: "orçamento diário deve ser positivo",
		},
		{
			name: "faixa etária invertida",
			mutate: func(req *domain.LaunchCampaignRequest) *domain.LaunchCampaignRequest {
				req.Campaign.AdSets[0].Targeting.AgeRange = domain.AgeRange{Min: 60, Max: 30}
				return req
			},
			details: "faixa etária inválida",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _, _ := newTestService(t)

			result, err := service.LaunchCampaign(tt.mutate(validLaunchRequest()))

			assert.Nil(t, result)
			assert.True(t, IsValidationError(err))
			assert.ErrorContains(t, err, tt.details)
		})
	}
}

func TestService_LaunchCampaign_Sucesso(t *testing.T) {
	service, mockIntegrator, mockBuildRepo, _ := newTestService(t)

	buildResult := &domain.CampaignBuildResult{
		CampaignID:     "cmp_001",
		CampaignName:   "Lancamento_20250307",
		AdSetIDs:       []string{"set_001"},
		AdIDs:          []string{"ad_001", "ad_002"},
		ImagesUploaded: 2,
		VideosUploaded: 0,
		UploadFailures: []domain.MediaUploadFailure{
			{URL: "https://cdn.example.com/broken.jpg", Kind: domain.MediaKindImage, Reason: "timeout"},
		},
	}

	mockIntegrator.EXPECT().
		BuildCampaign(gomock.Any(), gomock.Any()).
		DoAndReturn(func(product *domain.Product, _ *domain.CampaignParameters) (*domain.CampaignBuildResult, error) {
			// O serviço reconstrói o produto antes do build, derivando as URLs
			url, ok := product.URL(domain.URLCheckout)
			assert.True(t, ok)
			assert.Equal(t, "https://pay.hotmart.com/A12345?ap=838e", url)
			return buildResult, nil
		})

	mockBuildRepo.EXPECT().
		CreateBuild(gomock.Any()).
		DoAndReturn(func(build *domain.CampaignBuild) (*domain.CampaignBuild, error) {
			assert.Equal(t, domain.BuildStatusCompleted, build.Status)
			assert.Equal(t, "cmp_001", *build.CampaignID)
			assert.Equal(t, 1, build.AdSetCount)
			assert.Equal(t, 2, build.AdCount)
			assert.Equal(t, 2, build.ImagesUploaded)
			assert.Equal(t, buildResult.UploadFailures, build.UploadFailures)
			return build, nil
		})

	result, err := service.LaunchCampaign(validLaunchRequest())

	assert.NoError(t, err)
	assert.NotEmpty(t, result.BuildID)
	assert.Equal(t, buildResult, result.Result)
}

func TestService_LaunchCampaign_RejeicaoDaPlataforma(t *testing.T) {
	service, mockIntegrator, mockBuildRepo, _ := newTestService(t)

	mockIntegrator.EXPECT().
		BuildCampaign(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("(#100) Invalid parameter"))

	// A falha do pipeline também entra no histórico, com status failed
	mockBuildRepo.EXPECT().
		CreateBuild(gomock.Any()).
		DoAndReturn(func(build *domain.CampaignBuild) (*domain.CampaignBuild, error) {
			assert.Equal(t, domain.BuildStatusFailed, build.Status)
			assert.Nil(t, build.CampaignID)
			// Mesmo sem resultado, o histórico guarda o nome carimbado
			assert.Equal(t, "Lancamento_"+utils.DateStamp(time.Now()), build.Name)
			assert.Contains(t, *build.Error, "(#100)")
			return build, nil
		})

	result, err := service.LaunchCampaign(validLaunchRequest())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrPlatformRejection)
}

func TestService_LaunchCampaign_FalhaDePersistenciaNaoDerrubaOLancamento(t *testing.T) {
	service, mockIntegrator, mockBuildRepo, _ := newTestService(t)

	mockIntegrator.EXPECT().
		BuildCampaign(gomock.Any(), gomock.Any()).
		Return(&domain.CampaignBuildResult{CampaignID: "cmp_001"}, nil)

	mockBuildRepo.EXPECT().
		CreateBuild(gomock.Any()).
		Return(nil, errors.New("connection refused"))

	result, err := service.LaunchCampaign(validLaunchRequest())

	assert.NoError(t, err)
	assert.Equal(t, "cmp_001", result.Result.CampaignID)
}

func TestService_ScheduleLaunch(t *testing.T) {
	runAt := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("agenda lançamento pendente", func(t *testing.T) {
		service, _, _, mockLaunchRepo := newTestService(t)

		mockLaunchRepo.EXPECT().
			CreateLaunch(gomock.Any()).
			DoAndReturn(func(launch *domain.ScheduledLaunch) (*domain.ScheduledLaunch, error) {
				assert.NotEmpty(t, launch.ID)
				assert.Equal(t, "Black Friday", launch.Name)
				assert.Equal(t, runAt, launch.RunAt)
				assert.Equal(t, domain.LaunchStatusPending, launch.Status)
				return launch, nil
			})

		launch, err := service.ScheduleLaunch("Black Friday", runAt, validLaunchRequest())

		assert.NoError(t, err)
		assert.Equal(t, domain.LaunchStatusPending, launch.Status)
	})

	t.Run("nome é obrigatório", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		_, err := service.ScheduleLaunch("", runAt, validLaunchRequest())

		assert.True(t, IsValidationError(err))
	})

	t.Run("horário de execução é obrigatório", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		_, err := service.ScheduleLaunch("Black Friday", time.Time{}, validLaunchRequest())

		assert.True(t, IsValidationError(err))
	})
}

func TestService_RunScheduledLaunch(t *testing.T) {
	t.Run("lançamento bem-sucedido marca o agendamento como completed", func(t *testing.T) {
		service, mockIntegrator, mockBuildRepo, mockLaunchRepo := newTestService(t)

		launch := &domain.ScheduledLaunch{
			ID:      "lnc_001",
			Status:  domain.LaunchStatusPending,
			Request: validLaunchRequest(),
		}

		mockIntegrator.EXPECT().
			BuildCampaign(gomock.Any(), gomock.Any()).
			Return(&domain.CampaignBuildResult{CampaignID: "cmp_001"}, nil)

		mockBuildRepo.EXPECT().
			CreateBuild(gomock.Any()).
			DoAndReturn(func(build *domain.CampaignBuild) (*domain.CampaignBuild, error) {
				return build, nil
			})

		mockLaunchRepo.EXPECT().
			UpdateLaunchStatus("lnc_001", domain.LaunchStatusCompleted, gomock.Not(gomock.Nil()), nil).
			Return(nil)

		assert.NoError(t, service.RunScheduledLaunch(launch))
	})

	t.Run("rejeição da plataforma marca o agendamento como failed", func(t *testing.T) {
		service, mockIntegrator, mockBuildRepo, mockLaunchRepo := newTestService(t)

		launch := &domain.ScheduledLaunch{
			ID:      "lnc_002",
			Status:  domain.LaunchStatusPending,
			Request: validLaunchRequest(),
		}

		mockIntegrator.EXPECT().
			BuildCampaign(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("(#190) token invalid"))

		mockBuildRepo.EXPECT().
			CreateBuild(gomock.Any()).
			DoAndReturn(func(build *domain.CampaignBuild) (*domain.CampaignBuild, error) {
				return build, nil
			})

		mockLaunchRepo.EXPECT().
			UpdateLaunchStatus("lnc_002", domain.LaunchStatusFailed, nil, gomock.Not(gomock.Nil())).
			Return(nil)

		err := service.RunScheduledLaunch(launch)

		assert.ErrorIs(t, err, ErrPlatformRejection)
	})

	t.Run("agendamento nulo", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		err := service.RunScheduledLaunch(nil)

		assert.ErrorIs(t, err, ErrLaunchNotFound)
	})
}

func TestService_ListBuilds(t *testing.T) {
	service, _, mockBuildRepo, _ := newTestService(t)

	builds := []*domain.CampaignBuild{{ID: "bld_001"}}

	mockBuildRepo.EXPECT().ListBuilds(10).Return(builds, nil)

	result, err := service.ListBuilds(10)

	assert.NoError(t, err)
	assert.Equal(t, builds, result)
}

func TestService_ListScheduledLaunches_ErroDeBanco(t *testing.T) {
	service, _, _, mockLaunchRepo := newTestService(t)

	mockLaunchRepo.EXPECT().ListLaunches(50).Return(nil, errors.New("connection refused"))

	result, err := service.ListScheduledLaunches(50)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrDatabaseOperation)
}
