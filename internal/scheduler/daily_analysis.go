package scheduler

import (
	"context"

	"github.com/vfg2006/campaign-health-api/internal/config"
	"github.com/vfg2006/campaign-health-api/internal/domain"
	"github.com/vfg2006/campaign-health-api/internal/usecases/analyzing"
)

// DailyAnalysisService gerencia o agendamento da análise diária
type DailyAnalysisService struct {
	*batchJob
	analyzer analyzing.Analyzer
}

func NewDailyAnalysisService(analyzer analyzing.Analyzer, appConfig *config.Config) *DailyAnalysisService {
	s := &DailyAnalysisService{analyzer: analyzer}
	s.batchJob = newBatchJob(JobConfig{
		Name:         "analysis",
		CronSchedule: appConfig.Analysis.CronSchedule,
		Enabled:      appConfig.Analysis.Enabled,
	}, appConfig.App.Location(), s.runAnalysis)

	return s
}

func (s *DailyAnalysisService) runAnalysis(ctx context.Context) ([]domain.AccountRunResult, error) {
	return s.analyzer.RunDailyAnalysis(ctx)
}
