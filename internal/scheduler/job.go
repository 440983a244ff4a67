package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/campaign-health-api/internal/domain"
	"github.com/vfg2006/campaign-health-api/pkg/log"
	"github.com/vfg2006/campaign-health-api/pkg/utils"
)

// BatchFunc processa todas as contas ativas e devolve o resultado por conta
type BatchFunc func(ctx context.Context) ([]domain.AccountRunResult, error)

// JobConfig representa a configuração de um lote diário
type JobConfig struct {
	Name         string
	CronSchedule string
	Enabled      bool
}

// batchJob agenda um lote diário e impede execuções sobrepostas,
// sejam elas do agendador, do endpoint de cron ou da CLI
type batchJob struct {
	scheduler *gocron.Scheduler
	config    JobConfig
	run       BatchFunc

	mu              sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastAccounts    int
	lastFailures    int
	lastError       string
}

func newBatchJob(config JobConfig, location *time.Location, run BatchFunc) *batchJob {
	log.ForContext(context.Background()).WithFields(log.Fields{
		"job":     config.Name,
		"cron":    config.CronSchedule,
		"enabled": config.Enabled,
	}).Info("Configuração do agendador carregada")

	return &batchJob{
		scheduler: gocron.NewScheduler(location),
		config:    config,
		run:       run,
	}
}

// Start agenda o lote e para o agendador quando o contexto for cancelado
func (j *batchJob) Start(ctx context.Context) error {
	logger := log.ForContext(ctx).WithField("job", j.config.Name)

	if !j.config.Enabled {
		logger.Info("Agendador desabilitado por configuração")
		return nil
	}

	_, err := j.scheduler.Cron(j.config.CronSchedule).Do(func() {
		if _, err := j.RunNow(ctx); err != nil {
			logger.WithError(err).Warn("Execução agendada não concluída")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar %s: %w", j.config.Name, err)
	}

	j.scheduler.StartAsync()
	logger.WithField("cron", j.config.CronSchedule).Info("Agendador iniciado")

	go func() {
		<-ctx.Done()
		logger.Info("Parando agendador")
		j.scheduler.Stop()
	}()

	return nil
}

// RunNow executa o lote de forma síncrona. Devolve domain.ErrJobRunning se já houver uma execução.
func (j *batchJob) RunNow(ctx context.Context) ([]domain.AccountRunResult, error) {
	j.mu.Lock()
	if j.running {
		j.mu.Unlock()
		return nil, domain.ErrJobRunning
	}
	j.running = true
	j.lastStartedAt = time.Now()
	j.mu.Unlock()

	runID := utils.GenerateRunID()
	ctx = log.WithRunID(ctx, runID)
	logger := log.ForContext(ctx).WithField("job", j.config.Name)
	logger.Info("Iniciando execução")

	results, err := j.run(ctx)

	j.mu.Lock()
	defer j.mu.Unlock()

	j.running = false
	j.lastCompletedAt = time.Now()
	j.lastAccounts = len(results)
	j.lastFailures = countFailures(results)
	j.lastError = ""
	if err != nil {
		j.lastError = err.Error()
	}

	logger.WithFields(log.Fields{
		"accounts":    j.lastAccounts,
		"failures":    j.lastFailures,
		"duration_ms": j.lastCompletedAt.Sub(j.lastStartedAt).Milliseconds(),
	}).Info("Execução concluída")

	return results, err
}

func (j *batchJob) IsRunning() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.running
}

// GetStatus retorna o status atual do agendador
func (j *batchJob) GetStatus() map[string]any {
	j.mu.Lock()
	defer j.mu.Unlock()

	status := map[string]any{
		"enabled":           j.config.Enabled,
		"cron":              j.config.CronSchedule,
		"running":           j.running,
		"last_started_at":   j.lastStartedAt,
		"last_completed_at": j.lastCompletedAt,
		"last_accounts":     j.lastAccounts,
		"last_failures":     j.lastFailures,
	}
	if j.lastError != "" {
		status["last_error"] = j.lastError
	}

	if _, next := j.scheduler.NextRun(); !next.IsZero() {
		status["next_run_at"] = next
	}

	return status
}

func countFailures(results []domain.AccountRunResult) int {
	failures := 0
	for _, r := range results {
		if r.Status == domain.RunStatusError {
			failures++
		}
	}
	return failures
}
