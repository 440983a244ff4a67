package analyzing

import (
	"context"
	"time"

	"github.com/vfg2006/campaign-health-api/infrastructure/cache"
	"github.com/vfg2006/campaign-health-api/infrastructure/integrator/explainer"
	"github.com/vfg2006/campaign-health-api/infrastructure/repository"
	"github.com/vfg2006/campaign-health-api/internal/config"
	"github.com/vfg2006/campaign-health-api/internal/domain"
	"github.com/vfg2006/campaign-health-api/internal/rules"
	"github.com/vfg2006/campaign-health-api/pkg/log"
	"github.com/vfg2006/campaign-health-api/pkg/tracing"
	"github.com/vfg2006/campaign-health-api/pkg/utils"
	"go.opentelemetry.io/otel/attribute"
)

// playbookContext resume para o provedor de IA como o gestor deve agir
const playbookContext = "Campanhas com gasto menor que 2x o CPA ainda estão em aprendizado e não devem ser alteradas. " +
	"Com menos de 3 dias de histórico não há dados para decidir. " +
	"CPA subindo por 3 dias seguidos indica fadiga do criativo: teste um novo gancho antes de mexer no orçamento."

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks
type Analyzer interface {
	RunDailyAnalysis(ctx context.Context) ([]domain.AccountRunResult, error)
	AnalyzeAccount(ctx context.Context, account *domain.AdAccount) (*domain.AccountAnalysis, error)
}

type Service struct {
	cfg          *config.Config
	accountRepo  repository.AccountRepository
	snapshotRepo repository.SnapshotRepository
	creativeRepo repository.CreativeRepository
	analysisRepo repository.AnalysisRepository
	explainer    explainer.Explainer
	cache        cache.Cache
	now          func() time.Time
}

func NewService(
	cfg *config.Config,
	accountRepo repository.AccountRepository,
	snapshotRepo repository.SnapshotRepository,
	creativeRepo repository.CreativeRepository,
	analysisRepo repository.AnalysisRepository,
	explainer explainer.Explainer,
	cache cache.Cache,
) *Service {
	return &Service{
		cfg:          cfg,
		accountRepo:  accountRepo,
		snapshotRepo: snapshotRepo,
		creativeRepo: creativeRepo,
		analysisRepo: analysisRepo,
		explainer:    explainer,
		cache:        cache,
		now:          time.Now,
	}
}

// RunDailyAnalysis analisa todas as contas ativas. A falha de uma conta não interrompe as demais.
func (s *Service) RunDailyAnalysis(ctx context.Context) ([]domain.AccountRunResult, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, []domain.AdAccountStatus{domain.AdAccountStatusActive})
	if err != nil {
		return nil, err
	}

	results := make([]domain.AccountRunResult, 0, len(accounts))

	for _, account := range accounts {
		if ctx.Err() != nil {
			break
		}

		result := domain.AccountRunResult{
			AccountID:  account.ID,
			ExternalID: account.ExternalID,
			Status:     domain.RunStatusSuccess,
		}

		analysis, err := s.AnalyzeAccount(ctx, account)
		if err != nil {
			result.Status = domain.RunStatusError
			result.Error = err.Error()
		}
		result.Analysis = analysis

		results = append(results, result)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"job":      "analysis",
		"accounts": len(results),
	}).Info("Análise diária finalizada")

	return results, nil
}

// AnalyzeAccount roda o motor de regras sobre os snapshots do dia alvo da conta
func (s *Service) AnalyzeAccount(ctx context.Context, account *domain.AdAccount) (result *domain.AccountAnalysis, err error) {
	ctx, span := tracing.StartSpan(ctx, "analysis.account", attribute.String("account_id", account.ID))
	defer func() { tracing.EndSpan(span, err) }()

	day := utils.Yesterday(s.now(), s.cfg.App.Location())
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"account_id": account.ID,
		"day":        day.Format(time.DateOnly),
	})

	campaigns, err := s.snapshotRepo.QueryByDay(ctx, account.ID, domain.EntityTypeCampaign, day)
	if err != nil {
		return nil, err
	}

	result = &domain.AccountAnalysis{
		TargetDay: day,
		Campaigns: make([]domain.EntityAnalysisResult, 0, len(campaigns)),
		Creatives: make([]domain.EntityAnalysisResult, 0),
	}

	for _, campaign := range campaigns {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		result.Campaigns = append(result.Campaigns, s.analyzeCampaign(ctx, account, campaign, day))
	}

	ads, err := s.snapshotRepo.QueryByDay(ctx, account.ID, domain.EntityTypeAd, day)
	if err != nil {
		logger.WithError(err).Warn("analysis: failed to load ad snapshots, skipping creatives")
	} else {
		result.Creatives = s.analyzeCreatives(ctx, account, ads)
	}

	if err := s.cache.InvalidateAccount(ctx, account.ID); err != nil {
		logger.WithError(err).Warn("analysis: failed to invalidate cache")
	}

	logger.WithFields(log.Fields{
		"campaigns": len(result.Campaigns),
		"creatives": len(result.Creatives),
	}).Info("analysis: account finished")

	return result, nil
}

func (s *Service) analyzeCampaign(ctx context.Context, account *domain.AdAccount, current domain.Snapshot, day time.Time) domain.EntityAnalysisResult {
	entry := domain.EntityAnalysisResult{EntityID: current.EntityID}
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"account_id":  account.ID,
		"campaign_id": current.EntityID,
	})

	from, to := utils.TrailingWindow(day, s.cfg.Analysis.WindowDays)
	history, err := s.snapshotRepo.QueryRange(ctx, domain.EntityTypeCampaign, current.EntityID, from, to)
	if err != nil {
		logger.WithError(err).Error("analysis: failed to load history")
		entry.Error = err.Error()
		return entry
	}

	outcome := rules.AnalyzeCampaign(current, history)

	explanation, err := s.explainer.Explain(ctx, explainer.ExplainRequest{
		Campaign:        current,
		Issues:          outcome.Issues,
		Recommendations: outcome.Recommendations,
		Context:         playbookContext,
	})
	if err != nil {
		logger.WithError(err).Warn("analysis: explanation unavailable")
		explanation = nil
	}

	analysis := &domain.Analysis{
		AccountID:       account.ID,
		EntityType:      domain.EntityTypeCampaign,
		EntityID:        current.EntityID,
		Status:          outcome.Status,
		Issues:          outcome.Issues,
		Recommendations: outcome.Recommendations,
		Explanation:     explanation,
		AnalyzedAt:      s.now().UTC(),
		RuleSetVersion:  rules.Version,
	}

	if err := s.analysisRepo.Append(ctx, analysis); err != nil {
		logger.WithError(err).Error("analysis: failed to store analysis")
		entry.Error = err.Error()
		return entry
	}

	entry.Status = outcome.Status
	entry.IssuesCount = len(outcome.Issues)
	return entry
}

// analyzeCreatives analisa cada criativo uma vez, usando o anúncio de maior gasto que o veicula
func (s *Service) analyzeCreatives(ctx context.Context, account *domain.AdAccount, ads []domain.Snapshot) []domain.EntityAnalysisResult {
	results := make([]domain.EntityAnalysisResult, 0)
	seen := make(map[string]struct{})

	for _, ad := range ads {
		// sem video_views ou impressões o stop rate é desconhecido; não vira zero
		if ad.CreativeID == nil || ad.StopRate() == nil {
			continue
		}
		if _, ok := seen[*ad.CreativeID]; ok {
			continue
		}
		seen[*ad.CreativeID] = struct{}{}

		if ctx.Err() != nil {
			break
		}

		results = append(results, s.analyzeCreative(ctx, account, *ad.CreativeID, ad))
	}

	return results
}

func (s *Service) analyzeCreative(ctx context.Context, account *domain.AdAccount, creativeID string, ad domain.Snapshot) domain.EntityAnalysisResult {
	entry := domain.EntityAnalysisResult{EntityID: creativeID}
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"account_id":  account.ID,
		"creative_id": creativeID,
	})

	creative, err := s.creativeRepo.GetCreative(ctx, creativeID)
	if err != nil {
		logger.WithError(err).Error("analysis: failed to load creative")
		entry.Error = err.Error()
		return entry
	}

	signals := rules.CreativeSignals{StopRate: ad.StopRate()}
	if creative != nil {
		if creative.MetaNative == nil && creative.FormatType == nil {
			s.classifyCreative(ctx, logger, creative)
		}
		signals.MetaNative = creative.MetaNative
		signals.FormatType = creative.FormatType
	}

	outcome := rules.AnalyzeCreative(signals)

	analysis := &domain.Analysis{
		AccountID:       account.ID,
		EntityType:      domain.EntityTypeCreative,
		EntityID:        creativeID,
		Status:          outcome.Status,
		Issues:          outcome.Issues,
		Recommendations: outcome.Recommendations,
		AnalyzedAt:      s.now().UTC(),
		RuleSetVersion:  rules.Version,
	}

	if err := s.analysisRepo.Append(ctx, analysis); err != nil {
		logger.WithError(err).Error("analysis: failed to store creative analysis")
		entry.Error = err.Error()
		return entry
	}

	entry.Status = outcome.Status
	entry.IssuesCount = len(outcome.Issues)
	return entry
}

// classifyCreative preenche os sinais de um criativo ainda não marcado.
// Falha do classificador ou da gravação só gera log: a análise segue sem os sinais.
func (s *Service) classifyCreative(ctx context.Context, logger log.Logger, creative *domain.Creative) {
	classification, err := s.explainer.ClassifyCreative(ctx, explainer.ClassifyRequest{Creative: *creative})
	if err != nil {
		logger.WithError(err).Warn("analysis: failed to classify creative")
		return
	}
	if classification.Empty() {
		return
	}

	creative.MetaNative = classification.MetaNative
	creative.FormatType = classification.FormatType

	if err := s.creativeRepo.UpdateSignals(ctx, creative.CreativeID, classification); err != nil {
		logger.WithError(err).Warn("analysis: failed to store creative classification")
	}
}
