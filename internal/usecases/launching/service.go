package launching

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/meta"
	"github.com/vfg2006/campaign-launcher-api/infrastructure/repository"
	"github.com/vfg2006/campaign-launcher-api/internal/domain"
	"github.com/vfg2006/campaign-launcher-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-launcher-api/pkg/utils"
)

// LaunchResult agrega o registro de histórico e o resultado remoto de um build
type LaunchResult struct {
	BuildID string                      `json:"build_id"`
	Result  *domain.CampaignBuildResult `json:"result"`
}

type Launcher interface {
	LaunchCampaign(req *domain.LaunchCampaignRequest) (*LaunchResult, error)
	ListBuilds(limit int) ([]*domain.CampaignBuild, error)
	ScheduleLaunch(name string, runAt time.Time, req *domain.LaunchCampaignRequest) (*domain.ScheduledLaunch, error)
	ListScheduledLaunches(limit int) ([]*domain.ScheduledLaunch, error)
	RunScheduledLaunch(launch *domain.ScheduledLaunch) error
}

type Service struct {
	integrator meta.Integrator
	buildRepo  repository.CampaignBuildRepository
	launchRepo repository.ScheduledLaunchRepository
}

func NewService(
	integrator meta.Integrator,
	buildRepo repository.CampaignBuildRepository,
	launchRepo repository.ScheduledLaunchRepository,
) Launcher {
	return &Service{
		integrator: integrator,
		buildRepo:  buildRepo,
		launchRepo: launchRepo,
	}
}

// LaunchCampaign valida a solicitação, executa o pipeline de build na
// plataforma e registra o resultado no histórico. Uma falha do pipeline
// também gera registro, com status de falha.
func (s *Service) LaunchCampaign(req *domain.LaunchCampaignRequest) (*LaunchResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// O produto chega sem as variantes de URL derivadas; reconstruir aqui
	product := domain.NewProduct(*req.Product)

	buildID := utils.GenerateID()

	// O histórico usa o mesmo nome carimbado que o pipeline envia à
	// plataforma, inclusive quando o build falha antes de ter um resultado
	stampedName := req.Campaign.Name + "_" + utils.DateStamp(time.Now())

	result, err := s.integrator.BuildCampaign(product, req.Campaign)
	if err != nil {
		errMsg := err.Error()
		s.saveBuild(&domain.CampaignBuild{
			ID:     buildID,
			Name:   stampedName,
			Status: domain.BuildStatusFailed,
			Error:  &errMsg,
		})

		return nil, NewLaunchError(ErrPlatformRejection, apiErrors.ErrPlatformRejection, errMsg)
	}

	s.saveBuild(&domain.CampaignBuild{
		ID:             buildID,
		CampaignID:     &result.CampaignID,
		Name:           result.CampaignName,
		Status:         domain.BuildStatusCompleted,
		AdSetCount:     len(result.AdSetIDs),
		AdCount:        len(result.AdIDs),
		ImagesUploaded: result.ImagesUploaded,
		VideosUploaded: result.VideosUploaded,
		UploadFailures: result.UploadFailures,
	})

	return &LaunchResult{
		BuildID: buildID,
		Result:  result,
	}, nil
}

func (s *Service) ListBuilds(limit int) ([]*domain.CampaignBuild, error) {
	builds, err := s.buildRepo.ListBuilds(limit)
	if err != nil {
		return nil, NewLaunchError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return builds, nil
}

func (s *Service) ScheduleLaunch(name string, runAt time.Time, req *domain.LaunchCampaignRequest) (*domain.ScheduledLaunch, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, NewLaunchError(ErrInvalidParameters, apiErrors.ErrInvalidLaunchParameters, "nome do agendamento é obrigatório")
	}

	if runAt.IsZero() {
		return nil, NewLaunchError(ErrInvalidParameters, apiErrors.ErrInvalidLaunchParameters, "horário de execução é obrigatório")
	}

	launch := &domain.ScheduledLaunch{
		ID:      utils.GenerateID(),
		Name:    name,
		RunAt:   runAt,
		Request: req,
		Status:  domain.LaunchStatusPending,
	}

	launch, err := s.launchRepo.CreateLaunch(launch)
	if err != nil {
		return nil, NewLaunchError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"launch_id": launch.ID,
		"run_at":    launch.RunAt.Format(time.RFC3339),
	}).Info("launch: campaign launch scheduled")

	return launch, nil
}

func (s *Service) ListScheduledLaunches(limit int) ([]*domain.ScheduledLaunch, error) {
	launches, err := s.launchRepo.ListLaunches(limit)
	if err != nil {
		return nil, NewLaunchError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return launches, nil
}

// RunScheduledLaunch executa um lançamento agendado e atualiza seu estado.
// O registro fica como failed quando o build é rejeitado pela plataforma.
func (s *Service) RunScheduledLaunch(launch *domain.ScheduledLaunch) error {
	if launch == nil {
		return NewLaunchError(ErrLaunchNotFound, apiErrors.ErrLaunchNotFound, "")
	}

	result, err := s.LaunchCampaign(launch.Request)
	if err != nil {
		errMsg := err.Error()
		if updateErr := s.launchRepo.UpdateLaunchStatus(launch.ID, domain.LaunchStatusFailed, nil, &errMsg); updateErr != nil {
			logrus.WithFields(logrus.Fields{
				"launch_id": launch.ID,
				"error":     updateErr.Error(),
			}).Error("launch: failed to mark scheduled launch as failed")
		}
		return err
	}

	if err := s.launchRepo.UpdateLaunchStatus(launch.ID, domain.LaunchStatusCompleted, &result.BuildID, nil); err != nil {
		logrus.WithFields(logrus.Fields{
			"launch_id": launch.ID,
			"build_id":  result.BuildID,
			"error":     err.Error(),
		}).Error("launch: failed to mark scheduled launch as completed")
	}

	return nil
}

// saveBuild persiste o histórico do build. O build remoto já aconteceu neste
// ponto, então uma falha de persistência é apenas logada.
func (s *Service) saveBuild(build *domain.CampaignBuild) {
	if _, err := s.buildRepo.CreateBuild(build); err != nil {
		logrus.WithFields(logrus.Fields{
			"build_id": build.ID,
			"error":    err.Error(),
		}).Error("launch: failed to persist build history")
	}
}

func validateRequest(req *domain.LaunchCampaignRequest) error {
	if req == nil || req.Product == nil || req.Campaign == nil {
		return NewLaunchError(ErrInvalidParameters, apiErrors.ErrInvalidLaunchParameters, "produto e campanha são obrigatórios")
	}

	if req.Product.BaseURL == "" {
		return NewLaunchError(ErrInvalidParameters, apiErrors.ErrInvalidLaunchParameters, "base_url do produto é obrigatória")
	}

	if req.Campaign.Name == "" {
		return NewLaunchError(ErrInvalidParameters, apiErrors.ErrInvalidLaunchParameters, "nome da campanha é obrigatório")
	}

	if req.Campaign.Objective == "" {
		return NewLaunchError(ErrInvalidParameters, apiErrors.ErrInvalidLaunchParameters, "objetivo da campanha é obrigatório")
	}

	if req.Campaign.DailyBudget <= 0 {
		return NewLaunchError(ErrInvalidParameters, apiErrors.ErrInvalidLaunchParameters, "orçamento diário deve ser positivo")
	}

	for _, adSet := range req.Campaign.AdSets {
		if adSet.Name == "" {
			return NewLaunchError(ErrInvalidParameters, apiErrors.ErrInvalidLaunchParameters, "nome do conjunto de anúncios é obrigatório")
		}

		ageRange := adSet.Targeting.AgeRange
		if ageRange.Min > ageRange.Max {
			return NewLaunchError(
				ErrInvalidParameters,
				apiErrors.ErrInvalidLaunchParameters,
				fmt.Sprintf("faixa etária inválida no conjunto %q: %d > %d", adSet.Name, ageRange.Min, ageRange.Max),
			)
		}
	}

	return nil
}
