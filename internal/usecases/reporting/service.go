package reporting

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/vfg2006/campaign-health-api/infrastructure/cache"
	"github.com/vfg2006/campaign-health-api/infrastructure/repository"
	"github.com/vfg2006/campaign-health-api/internal/config"
	"github.com/vfg2006/campaign-health-api/internal/domain"
	"github.com/vfg2006/campaign-health-api/pkg/log"
	"github.com/vfg2006/campaign-health-api/pkg/utils"
)

const topIssuesLimit = 5

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks
type Reporter interface {
	Dashboard(ctx context.Context, accountExternalID string) (*domain.DashboardSummary, error)
	ListCampaigns(ctx context.Context, accountExternalID string, status *domain.Severity) ([]domain.CampaignOverview, error)
	CampaignDetail(ctx context.Context, accountExternalID, campaignID string) (*domain.CampaignDetail, error)
}

type Service struct {
	cfg          *config.Config
	accountRepo  repository.AccountRepository
	snapshotRepo repository.SnapshotRepository
	analysisRepo repository.AnalysisRepository
	cache        cache.Cache
	now          func() time.Time
}

func NewService(
	cfg *config.Config,
	accountRepo repository.AccountRepository,
	snapshotRepo repository.SnapshotRepository,
	analysisRepo repository.AnalysisRepository,
	cache cache.Cache,
) *Service {
	return &Service{
		cfg:          cfg,
		accountRepo:  accountRepo,
		snapshotRepo: snapshotRepo,
		analysisRepo: analysisRepo,
		cache:        cache,
		now:          time.Now,
	}
}

func (s *Service) targetDay() time.Time {
	return utils.Yesterday(s.now(), s.cfg.App.Location())
}

func (s *Service) resolveAccount(ctx context.Context, accountExternalID string) (*domain.AdAccount, error) {
	accountExternalID = strings.TrimSpace(accountExternalID)
	if accountExternalID == "" {
		return nil, domain.NewOperationError(domain.ErrValidation, "reporting.account", "", nil)
	}

	account, err := s.accountRepo.GetAccountByExternalID(ctx, accountExternalID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.NewOperationError(domain.ErrNotFound, "reporting.account", accountExternalID, nil)
	}

	return account, nil
}

// Dashboard resume o status das campanhas analisadas desde o início do dia alvo
func (s *Service) Dashboard(ctx context.Context, accountExternalID string) (*domain.DashboardSummary, error) {
	account, err := s.resolveAccount(ctx, accountExternalID)
	if err != nil {
		return nil, err
	}

	day := s.targetDay()
	key := cache.Key("dashboard", account.ID, day.Format(time.DateOnly))
	logger := log.ForContext(ctx).WithField("account_id", account.ID)

	var cached domain.DashboardSummary
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		logger.WithError(err).Warn("reporting: cache read failed")
	}
	if hit {
		return &cached, nil
	}

	analyses, err := s.analysisRepo.Since(ctx, account.ID, day)
	if err != nil {
		return nil, err
	}

	summary := summarize(latestCampaignAnalyses(analyses))
	summary.AccountID = account.ID
	summary.TargetDay = day

	if err := s.cache.Set(ctx, key, summary, s.cfg.Cache.TTL); err != nil {
		logger.WithError(err).Warn("reporting: cache write failed")
	}

	return summary, nil
}

// latestCampaignAnalyses mantém só a análise mais nova de cada campanha.
// A lista de entrada já vem ordenada da mais nova para a mais antiga.
func latestCampaignAnalyses(analyses []*domain.Analysis) []*domain.Analysis {
	seen := make(map[string]struct{})
	latest := make([]*domain.Analysis, 0, len(analyses))

	for _, a := range analyses {
		if a.EntityType != domain.EntityTypeCampaign {
			continue
		}
		if _, ok := seen[a.EntityID]; ok {
			continue
		}
		seen[a.EntityID] = struct{}{}
		latest = append(latest, a)
	}

	return latest
}

func summarize(analyses []*domain.Analysis) *domain.DashboardSummary {
	summary := &domain.DashboardSummary{
		TopIssues:      make([]domain.IssueCount, 0),
		TotalCampaigns: len(analyses),
	}

	counts := make(map[domain.IssueType]int)
	for _, a := range analyses {
		switch a.Status {
		case domain.SeverityCritical:
			summary.StatusSummary.Critical++
		case domain.SeverityWarning:
			summary.StatusSummary.Warning++
		default:
			summary.StatusSummary.OK++
		}

		for _, issue := range a.Issues {
			counts[issue.Type]++
		}
	}

	for issueType, count := range counts {
		summary.TopIssues = append(summary.TopIssues, domain.IssueCount{Type: issueType, Count: count})
	}

	sort.Slice(summary.TopIssues, func(i, j int) bool {
		if summary.TopIssues[i].Count != summary.TopIssues[j].Count {
			return summary.TopIssues[i].Count > summary.TopIssues[j].Count
		}
		return summary.TopIssues[i].Type < summary.TopIssues[j].Type
	})

	if len(summary.TopIssues) > topIssuesLimit {
		summary.TopIssues = summary.TopIssues[:topIssuesLimit]
	}

	return summary
}

// ListCampaigns devolve as campanhas do dia alvo com a última análise de cada uma.
// Com filtro de status, campanhas sem análise ficam de fora.
func (s *Service) ListCampaigns(ctx context.Context, accountExternalID string, status *domain.Severity) ([]domain.CampaignOverview, error) {
	account, err := s.resolveAccount(ctx, accountExternalID)
	if err != nil {
		return nil, err
	}

	snapshots, err := s.snapshotRepo.QueryByDay(ctx, account.ID, domain.EntityTypeCampaign, s.targetDay())
	if err != nil {
		return nil, err
	}

	overviews := make([]domain.CampaignOverview, 0, len(snapshots))
	for i := range snapshots {
		analysis, err := s.analysisRepo.LatestFor(ctx, account.ID, domain.EntityTypeCampaign, snapshots[i].EntityID)
		if err != nil {
			return nil, err
		}

		if status != nil && (analysis == nil || analysis.Status != *status) {
			continue
		}

		overviews = append(overviews, domain.CampaignOverview{
			Campaign: &snapshots[i],
			Analysis: analysis,
		})
	}

	return overviews, nil
}

func (s *Service) CampaignDetail(ctx context.Context, accountExternalID, campaignID string) (*domain.CampaignDetail, error) {
	account, err := s.resolveAccount(ctx, accountExternalID)
	if err != nil {
		return nil, err
	}

	campaignID = strings.TrimSpace(campaignID)
	if campaignID == "" {
		return nil, domain.NewOperationError(domain.ErrValidation, "reporting.campaign", "", nil)
	}

	analysis, err := s.analysisRepo.LatestFor(ctx, account.ID, domain.EntityTypeCampaign, campaignID)
	if err != nil {
		return nil, err
	}
	if analysis == nil {
		return nil, domain.NewOperationError(domain.ErrNotFound, "reporting.campaign", campaignID, nil)
	}

	from, to := utils.TrailingWindow(s.targetDay(), s.cfg.Analysis.WindowDays)
	history, err := s.snapshotRepo.QueryRange(ctx, domain.EntityTypeCampaign, campaignID, from, to)
	if err != nil {
		return nil, err
	}

	points := make([]domain.MetricPoint, 0, len(history))
	for _, snapshot := range history {
		points = append(points, domain.MetricPoint{
			Date:        snapshot.SnapshotDate.Format(time.DateOnly),
			Spend:       snapshot.Spend,
			Conversions: snapshot.Conversions,
			CPA:         snapshot.CPA,
		})
	}

	campaign := &domain.Snapshot{
		AccountID:  account.ID,
		EntityType: domain.EntityTypeCampaign,
		EntityID:   campaignID,
	}
	if len(history) > 0 {
		campaign = &history[len(history)-1]
	}

	return &domain.CampaignDetail{
		Campaign:       campaign,
		Analysis:       analysis,
		MetricsHistory: points,
	}, nil
}
