package scheduler

import (
	"context"

	"github.com/vfg2006/campaign-health-api/internal/config"
	"github.com/vfg2006/campaign-health-api/internal/domain"
	"github.com/vfg2006/campaign-health-api/internal/usecases/syncing"
)

// DailySyncService gerencia o agendamento da sincronização diária de snapshots
type DailySyncService struct {
	*batchJob
	syncer syncing.Syncer
}

func NewDailySyncService(syncer syncing.Syncer, appConfig *config.Config) *DailySyncService {
	s := &DailySyncService{syncer: syncer}
	s.batchJob = newBatchJob(JobConfig{
		Name:         "sync",
		CronSchedule: appConfig.Sync.CronSchedule,
		Enabled:      appConfig.Sync.Enabled,
	}, appConfig.App.Location(), s.syncAll)

	return s
}

func (s *DailySyncService) syncAll(ctx context.Context) ([]domain.AccountRunResult, error) {
	return s.syncer.SyncAll(ctx)
}

// SyncAccount sincroniza uma conta fora do lote, usado pela CLI
func (s *DailySyncService) SyncAccount(ctx context.Context, accountID string) (*domain.SyncReport, error) {
	return s.syncer.SyncAccount(ctx, accountID)
}
