package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/vfg2006/campaign-health-api/internal/domain"
	"github.com/vfg2006/campaign-health-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-health-api/pkg/log"
)

// BatchRunner é um lote diário que pode ser disparado manualmente
type BatchRunner interface {
	RunNow(ctx context.Context) ([]domain.AccountRunResult, error)
	GetStatus() map[string]any
}

// CronJobServices contém os lotes que podem ser disparados pelo agendador externo
type CronJobServices struct {
	Sync     BatchRunner
	Analysis BatchRunner
}

// RunBatch executa o lote de forma síncrona e devolve o resultado por conta
func RunBatch(name string, runner BatchRunner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("job", name)

		if runner == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Rotina não disponível", nil)
			return
		}

		logger.Info("cron: manual trigger")

		results, err := runner.RunNow(r.Context())
		if err != nil {
			if errors.Is(err, domain.ErrJobRunning) {
				logger.Warn("cron: job already running")
			} else {
				logger.WithError(err).Error("cron: batch failed")
			}
			apiErrors.WriteDomainError(w, err)
			return
		}

		if results == nil {
			results = []domain.AccountRunResult{}
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"success": true,
			"results": results,
		})
	})
}

// GetCronStatus retorna o status dos agendadores
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.Sync != nil {
			status["sync"] = services.Sync.GetStatus()
		}
		if services.Analysis != nil {
			status["analysis"] = services.Analysis.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}
