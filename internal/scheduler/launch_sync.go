package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-launcher-api/infrastructure/repository"
	"github.com/vfg2006/campaign-launcher-api/internal/config"
	"github.com/vfg2006/campaign-launcher-api/internal/domain"
	"github.com/vfg2006/campaign-launcher-api/internal/usecases/launching"
)

// LaunchSyncConfig representa a configuração do agendador de lançamentos
type LaunchSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	SyncEnabled         bool
}

// LaunchSyncService executa os lançamentos agendados cujo horário já passou
type LaunchSyncService struct {
	scheduler           *gocron.Scheduler
	config              LaunchSyncConfig
	launchRepo          repository.ScheduledLaunchRepository
	launcher            launching.Launcher
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewLaunchSyncService cria uma nova instância do serviço de execução de lançamentos
func NewLaunchSyncService(
	launchRepo repository.ScheduledLaunchRepository,
	launcher launching.Launcher,
	appConfig *config.Config,
) *LaunchSyncService {
	launchConfig := LaunchSyncConfig{
		CronSchedule:        appConfig.LaunchSync.CronSchedule,
		RequestDelaySeconds: appConfig.LaunchSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.LaunchSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         launchConfig.CronSchedule,
		"request_delay_seconds": launchConfig.RequestDelaySeconds,
		"sync_enabled":          launchConfig.SyncEnabled,
	}).Info("Configuração do agendador de lançamentos carregada")

	return &LaunchSyncService{
		scheduler:   scheduler,
		config:      launchConfig,
		launchRepo:  launchRepo,
		launcher:    launcher,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *LaunchSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Execução de lançamentos agendados desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de lançamentos de campanha")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runDueLaunches()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar execução de lançamentos: %w", err)
	}

	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de lançamentos de campanha")
		s.scheduler.Stop()
	}()

	return nil
}

// runDueLaunches executa todos os lançamentos pendentes cujo horário já passou
func (s *LaunchSyncService) runDueLaunches() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Execução de lançamentos já em andamento, ignorando")
		return
	}
	startTime := time.Now()
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	dueLaunches, err := s.launchRepo.ListDueLaunches(startTime, 0)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lançamentos pendentes")
		return
	}

	if len(dueLaunches) == 0 {
		return
	}

	logrus.WithField("launches", len(dueLaunches)).Info("Executando lançamentos agendados vencidos")

	for _, launch := range dueLaunches {
		s.runLaunch(launch)

		// Aguardar antes do próximo lançamento para evitar sobrecarga na API
		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"launches": len(dueLaunches),
	}).Info("Execução de lançamentos agendados concluída")
}

func (s *LaunchSyncService) runLaunch(launch *domain.ScheduledLaunch) {
	logrus.WithFields(logrus.Fields{
		"launch_id": launch.ID,
		"name":      launch.Name,
		"run_at":    launch.RunAt.Format(time.RFC3339),
	}).Info("Executando lançamento agendado")

	if err := s.launcher.RunScheduledLaunch(launch); err != nil {
		logrus.WithFields(logrus.Fields{
			"launch_id": launch.ID,
			"error":     err.Error(),
		}).Error("Erro ao executar lançamento agendado")
		return
	}

	logrus.WithField("launch_id", launch.ID).Info("Lançamento agendado executado com sucesso")
}

// TriggerManualSync inicia manualmente a execução dos lançamentos vencidos
func (s *LaunchSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Execução de lançamentos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando execução manual de lançamentos agendados")
	go s.runDueLaunches()
}

// GetStatus retorna o status atual do agendador
func (s *LaunchSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
