package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-launcher-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-launcher-api/internal/domain"
	launchingmocks "github.com/vfg2006/campaign-launcher-api/internal/usecases/launching/mocks"
	"go.uber.org/mock/gomock"
)

func newTestLaunchSyncService(t *testing.T) (*LaunchSyncService, *mocks.MockScheduledLaunchRepository, *launchingmocks.MockLauncher) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockLaunchRepo := mocks.NewMockScheduledLaunchRepository(ctrl)
	mockLauncher := launchingmocks.NewMockLauncher(ctrl)

	service := &LaunchSyncService{
		config: LaunchSyncConfig{
			CronSchedule:        "*/5 * * * *",
			RequestDelaySeconds: 0,
			SyncEnabled:         true,
		},
		launchRepo: mockLaunchRepo,
		launcher:   mockLauncher,
	}

	return service, mockLaunchRepo, mockLauncher
}

func TestLaunchSyncService_runDueLaunches(t *testing.T) {
	t.Run("executa cada lançamento vencido na ordem retornada", func(t *testing.T) {
		service, mockLaunchRepo, mockLauncher := newTestLaunchSyncService(t)

		first := &domain.ScheduledLaunch{ID: "lnc_001", Name: "Black Friday", Status: domain.LaunchStatusPending}
		second := &domain.ScheduledLaunch{ID: "lnc_002", Name: "Natal", Status: domain.LaunchStatusPending}

		mockLaunchRepo.EXPECT().
			ListDueLaunches(gomock.Any(), 0).
			Return([]*domain.ScheduledLaunch{first, second}, nil)

		gomock.InOrder(
			mockLauncher.EXPECT().RunScheduledLaunch(first).Return(nil),
			mockLauncher.EXPECT().RunScheduledLaunch(second).Return(nil),
		)

		service.runDueLaunches()

		assert.False(t, service.lastSyncStartedAt.IsZero())
		assert.False(t, service.lastSyncCompletedAt.IsZero())
	})

	t.Run("falha em um lançamento não interrompe os demais", func(t *testing.T) {
		service, mockLaunchRepo, mockLauncher := newTestLaunchSyncService(t)

		first := &domain.ScheduledLaunch{ID: "lnc_003", Status: domain.LaunchStatusPending}
		second := &domain.ScheduledLaunch{ID: "lnc_004", Status: domain.LaunchStatusPending}

		mockLaunchRepo.EXPECT().
			ListDueLaunches(gomock.Any(), 0).
			Return([]*domain.ScheduledLaunch{first, second}, nil)

		gomock.InOrder(
			mockLauncher.EXPECT().RunScheduledLaunch(first).Return(errors.New("(#100) Invalid parameter")),
			mockLauncher.EXPECT().RunScheduledLaunch(second).Return(nil),
		)

		service.runDueLaunches()
	})

	t.Run("nenhum lançamento vencido não chama o launcher", func(t *testing.T) {
		service, mockLaunchRepo, _ := newTestLaunchSyncService(t)

		mockLaunchRepo.EXPECT().
			ListDueLaunches(gomock.Any(), 0).
			Return([]*domain.ScheduledLaunch{}, nil)

		service.runDueLaunches()
	})

	t.Run("erro ao listar lançamentos encerra a execução", func(t *testing.T) {
		service, mockLaunchRepo, _ := newTestLaunchSyncService(t)

		mockLaunchRepo.EXPECT().
			ListDueLaunches(gomock.Any(), 0).
			Return(nil, errors.New("connection refused"))

		service.runDueLaunches()

		assert.False(t, service.syncRunning)
	})

	t.Run("execução concorrente é ignorada", func(t *testing.T) {
		service, _, _ := newTestLaunchSyncService(t)

		service.syncRunning = true
		service.runDueLaunches()
		assert.True(t, service.syncRunning)
	})
}

func TestLaunchSyncService_GetStatus(t *testing.T) {
	t.Run("expõe a configuração e os horários da última execução", func(t *testing.T) {
		service, _, _ := newTestLaunchSyncService(t)

		startedAt := time.Date(2025, 3, 7, 10, 0, 0, 0, time.UTC)
		service.lastSyncStartedAt = startedAt

		status := service.GetStatus()

		assert.Equal(t, true, status["sync_enabled"])
		assert.Equal(t, "*/5 * * * *", status["sync_cron"])
		assert.Equal(t, 0, status["sync_request_delay_s"])
		assert.Equal(t, startedAt, status["last_sync_started_at"])
	})

	t.Run("leitura do status durante uma execução", func(t *testing.T) {
		service, mockLaunchRepo, _ := newTestLaunchSyncService(t)

		mockLaunchRepo.EXPECT().
			ListDueLaunches(gomock.Any(), 0).
			Return([]*domain.ScheduledLaunch{}, nil).
			AnyTimes()

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				service.runDueLaunches()
			}()
			go func() {
				defer wg.Done()
				service.GetStatus()
			}()
		}
		wg.Wait()

		status := service.GetStatus()
		assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
	})
}
