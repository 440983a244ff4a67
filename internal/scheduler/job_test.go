package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-health-api/internal/config"
	"github.com/vfg2006/campaign-health-api/internal/domain"
	analyzingmocks "github.com/vfg2006/campaign-health-api/internal/usecases/analyzing/mocks"
	syncingmocks "github.com/vfg2006/campaign-health-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

func TestBatchJob_RunNowRejectsOverlap(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	job := newBatchJob(JobConfig{Name: "sync"}, time.UTC, func(ctx context.Context) ([]domain.AccountRunResult, error) {
		close(started)
		<-release
		return []domain.AccountRunResult{
			{AccountID: "acc-1", Status: domain.RunStatusSuccess},
			{AccountID: "acc-2", Status: domain.RunStatusError, Error: "boom"},
		}, nil
	})

	done := make(chan error, 1)
	go func() {
		_, err := job.RunNow(context.Background())
		done <- err
	}()

	<-started
	assert.True(t, job.IsRunning())

	results, err := job.RunNow(context.Background())
	assert.Nil(t, results)
	assert.ErrorIs(t, err, domain.ErrJobRunning)

	close(release)
	require.NoError(t, <-done)

	assert.False(t, job.IsRunning())

	status := job.GetStatus()
	assert.Equal(t, false, status["running"])
	assert.Equal(t, 2, status["last_accounts"])
	assert.Equal(t, 1, status["last_failures"])
	assert.NotContains(t, status, "last_error")
}

func TestBatchJob_RunNowReleasesGuardOnError(t *testing.T) {
	calls := 0
	job := newBatchJob(JobConfig{Name: "analysis"}, time.UTC, func(ctx context.Context) ([]domain.AccountRunResult, error) {
		calls++
		return nil, domain.ErrPersistence
	})

	_, err := job.RunNow(context.Background())
	assert.ErrorIs(t, err, domain.ErrPersistence)

	_, err = job.RunNow(context.Background())
	assert.ErrorIs(t, err, domain.ErrPersistence)

	assert.Equal(t, 2, calls)
	assert.Equal(t, domain.ErrPersistence.Error(), job.GetStatus()["last_error"])
}

func TestBatchJob_Start(t *testing.T) {
	tests := []struct {
		name      string
		config    JobConfig
		expectErr bool
	}{
		{
			name:   "desabilitado não agenda",
			config: JobConfig{Name: "sync", CronSchedule: "expressão inválida", Enabled: false},
		},
		{
			name:      "expressão inválida",
			config:    JobConfig{Name: "sync", CronSchedule: "a b c", Enabled: true},
			expectErr: true,
		},
		{
			name:   "agenda com cron válido",
			config: JobConfig{Name: "sync", CronSchedule: "0 3 * * *", Enabled: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			job := newBatchJob(tt.config, time.UTC, func(context.Context) ([]domain.AccountRunResult, error) {
				return nil, errors.New("não deveria executar")
			})

			err := job.Start(ctx)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDailySyncService_RunNowDelegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncer := syncingmocks.NewMockSyncer(ctrl)

	cfg := &config.Config{}
	cfg.Sync.CronSchedule = "0 3 * * *"

	syncer.EXPECT().SyncAll(gomock.Any()).Return([]domain.AccountRunResult{{AccountID: "acc-1", Status: domain.RunStatusSuccess}}, nil)

	service := NewDailySyncService(syncer, cfg)
	results, err := service.RunNow(context.Background())

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "0 3 * * *", service.GetStatus()["cron"])
}

func TestDailyAnalysisService_RunNowDelegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyzer := analyzingmocks.NewMockAnalyzer(ctrl)

	analyzer.EXPECT().RunDailyAnalysis(gomock.Any()).Return(nil, nil)

	service := NewDailyAnalysisService(analyzer, &config.Config{})
	results, err := service.RunNow(context.Background())

	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, 0, service.GetStatus()["last_failures"])
}
