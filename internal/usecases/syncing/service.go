package syncing

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/campaign-health-api/infrastructure/repository"
	"github.com/vfg2006/campaign-health-api/internal/config"
	"github.com/vfg2006/campaign-health-api/internal/domain"
	"github.com/vfg2006/campaign-health-api/pkg/log"
	"github.com/vfg2006/campaign-health-api/pkg/tracing"
	"github.com/vfg2006/campaign-health-api/pkg/utils"
	"go.opentelemetry.io/otel/attribute"
)

type Service struct {
	cfg          *config.Config
	accountRepo  repository.AccountRepository
	snapshotRepo repository.SnapshotRepository
	creativeRepo repository.CreativeRepository
	sources      MetricSourceFactory
	now          func() time.Time
}

func NewService(
	cfg *config.Config,
	accountRepo repository.AccountRepository,
	snapshotRepo repository.SnapshotRepository,
	creativeRepo repository.CreativeRepository,
	sources MetricSourceFactory,
) *Service {
	return &Service{
		cfg:          cfg,
		accountRepo:  accountRepo,
		snapshotRepo: snapshotRepo,
		creativeRepo: creativeRepo,
		sources:      sources,
		now:          time.Now,
	}
}

// SyncAll sincroniza todas as contas ativas em sequência. A falha de uma conta
// vira um resultado com status error e não interrompe as demais.
func (s *Service) SyncAll(ctx context.Context) ([]domain.AccountRunResult, error) {
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

		report, err := s.SyncAccount(ctx, account.ID)
		if err != nil {
			result.Status = domain.RunStatusError
			result.Error = err.Error()
		}
		result.Sync = report

		results = append(results, result)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"job":      "sync",
		"accounts": len(results),
	}).Info("Sincronização das contas finalizada")

	return results, nil
}

// SyncAccount grava os snapshots do dia anterior de todas as campanhas, conjuntos e anúncios da conta
func (s *Service) SyncAccount(ctx context.Context, accountID string) (report *domain.SyncReport, err error) {
	ctx, span := tracing.StartSpan(ctx, "sync.account", attribute.String("account_id", accountID))
	defer func() { tracing.EndSpan(span, err) }()

	account, err := s.accountRepo.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if !account.IsActive() {
		return nil, domain.NewOperationError(domain.ErrAccountUnavailable, "sync.account", accountID, nil)
	}

	if !account.HasToken() {
		return nil, domain.NewOperationError(domain.ErrUnauthorized, "sync.account", accountID, nil)
	}

	runID := log.GetCorrelationID(ctx)
	if runID == "" {
		runID = utils.GenerateRunID()
		ctx = log.WithRunID(ctx, runID)
	}

	day := utils.Yesterday(s.now(), s.cfg.App.Location())
	report = domain.NewSyncReport(runID, account.ID, day)
	source := s.sources(account.AccessToken)

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"account_id": account.ID,
		"day":        day.Format(time.DateOnly),
	})

	valid, err := withTimeout(ctx, s.callTimeout(), source.ValidateToken)
	if err != nil {
		return nil, domain.NewOperationError(sourceErrorKind(err), "sync.validate_token", account.ExternalID, err)
	}
	if !valid {
		return nil, domain.NewOperationError(domain.ErrUnauthorized, "sync.validate_token", account.ExternalID, nil)
	}

	campaigns, err := withTimeout(ctx, s.callTimeout(), func(ctx context.Context) ([]domain.EntityRecord, error) {
		return source.ListCampaigns(ctx, account.ExternalID)
	})
	if err != nil {
		return nil, domain.NewOperationError(sourceErrorKind(err), "sync.list_campaigns", account.ExternalID, err)
	}

	logger.WithField("campaigns", len(campaigns)).Info("sync: starting account")

	sem := make(chan struct{}, s.maxConcurrentJobs())
	var wg sync.WaitGroup

	for _, campaign := range campaigns {
		if ctx.Err() != nil {
			break
		}

		sem <- struct{}{}
		wg.Add(1)

		go func(campaign domain.EntityRecord) {
			defer wg.Done()
			defer func() { <-sem }()

			s.syncCampaign(ctx, source, account, campaign, day, report)
		}(campaign)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return report, err
	}

	logger.WithFields(log.Fields{
		"campaigns_written": report.Campaigns.Written,
		"adsets_written":    report.Adsets.Written,
		"ads_written":       report.Ads.Written,
		"failures":          len(report.Errors),
	}).Info("sync: account finished")

	return report, nil
}

func (s *Service) syncCampaign(ctx context.Context, source MetricSource, account *domain.AdAccount, campaign domain.EntityRecord, day time.Time, report *domain.SyncReport) {
	s.syncEntity(ctx, source, account, domain.EntityTypeCampaign, campaign, nil, day, report)

	adsets, err := withTimeout(ctx, s.callTimeout(), func(ctx context.Context) ([]domain.EntityRecord, error) {
		return source.ListAdsets(ctx, campaign.ID)
	})
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"account_id":  account.ID,
			"campaign_id": campaign.ID,
		}).WithError(err).Error("sync: failed to list adsets")
		report.RecordFailure(domain.EntityTypeCampaign, campaign.ID, err)
		return
	}

	for _, adset := range adsets {
		if ctx.Err() != nil {
			return
		}

		s.syncEntity(ctx, source, account, domain.EntityTypeAdset, adset, &campaign.ID, day, report)

		ads, err := withTimeout(ctx, s.callTimeout(), func(ctx context.Context) ([]domain.EntityRecord, error) {
			return source.ListAds(ctx, adset.ID)
		})
		if err != nil {
			log.ForContext(ctx).WithFields(log.Fields{
				"account_id": account.ID,
				"adset_id":   adset.ID,
			}).WithError(err).Error("sync: failed to list ads")
			report.RecordFailure(domain.EntityTypeAdset, adset.ID, err)
			continue
		}

		for _, ad := range ads {
			s.syncEntity(ctx, source, account, domain.EntityTypeAd, ad, &adset.ID, day, report)

			if ad.CreativeID != nil {
				s.syncCreative(ctx, source, account, *ad.CreativeID, report)
			}
		}
	}
}

// syncEntity grava o snapshot do dia. Sem métrica no dia a entidade é pulada.
func (s *Service) syncEntity(
	ctx context.Context,
	source MetricSource,
	account *domain.AdAccount,
	entityType domain.EntityType,
	record domain.EntityRecord,
	parentID *string,
	day time.Time,
	report *domain.SyncReport,
) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"account_id":  account.ID,
		"entity_type": entityType,
		"entity_id":   record.ID,
	})

	insight, err := withTimeout(ctx, s.callTimeout(), func(ctx context.Context) (*domain.InsightRecord, error) {
		return source.GetInsight(ctx, record.ID, day)
	})
	if err != nil {
		logger.WithError(err).Error("sync: failed to get insight")
		report.MarkFailed(entityType, record.ID, domain.NewOperationError(sourceErrorKind(err), "sync.insight", record.ID, err))
		return
	}

	if insight == nil {
		report.MarkSkipped(entityType)
		return
	}

	snapshot := BuildSnapshot(account.ID, entityType, record, parentID, insight, day)

	if _, err := s.snapshotRepo.UpsertSnapshot(ctx, snapshot); err != nil {
		logger.WithError(err).Error("sync: failed to upsert snapshot")
		report.MarkFailed(entityType, record.ID, err)
		return
	}

	report.MarkWritten(entityType)
}

// syncCreative atualiza o conteúdo do criativo. Falhas só são contadas.
func (s *Service) syncCreative(ctx context.Context, source MetricSource, account *domain.AdAccount, creativeID string, report *domain.SyncReport) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"account_id":  account.ID,
		"creative_id": creativeID,
	})

	detail, err := withTimeout(ctx, s.callTimeout(), func(ctx context.Context) (*domain.CreativeDetail, error) {
		return source.GetCreativeDetail(ctx, creativeID)
	})
	if err != nil {
		logger.WithError(err).Warn("sync: failed to get creative detail")
		report.MarkCreative(err)
		return
	}

	creative := &domain.Creative{
		CreativeID:   creativeID,
		AccountID:    account.ID,
		Name:         detail.Name,
		Title:        detail.Title,
		Body:         detail.Body,
		ImageURL:     detail.ImageURL,
		VideoID:      detail.VideoID,
		ThumbnailURL: detail.ThumbnailURL,
		CallToAction: detail.CallToAction,
		LinkURL:      detail.LinkURL,
	}

	_, err = s.creativeRepo.UpsertCreative(ctx, creative)
	if err != nil {
		logger.WithError(err).Warn("sync: failed to upsert creative")
	}
	report.MarkCreative(err)
}

// BuildSnapshot combina a entidade listada com a métrica do dia
func BuildSnapshot(
	accountID string,
	entityType domain.EntityType,
	record domain.EntityRecord,
	parentID *string,
	insight *domain.InsightRecord,
	day time.Time,
) *domain.Snapshot {
	conversions := insight.Conversions

	snapshot := &domain.Snapshot{
		AccountID:      accountID,
		EntityType:     entityType,
		EntityID:       record.ID,
		ParentID:       parentID,
		Name:           record.Name,
		Status:         record.Status,
		Objective:      record.Objective,
		DailyBudget:    record.DailyBudget,
		LifetimeBudget: record.LifetimeBudget,
		Spend:          insight.Spend,
		Impressions:    insight.Impressions,
		Clicks:         insight.Clicks,
		Conversions:    &conversions,
		CPA:            domain.CalculateCPA(insight.Spend, conversions),
		CTR:            insight.CTR,
		CPM:            insight.CPM,
		SnapshotDate:   day,
	}

	if entityType == domain.EntityTypeAd {
		snapshot.VideoViews = insight.VideoViews
		snapshot.CreativeID = record.CreativeID
	}

	return snapshot
}

func (s *Service) callTimeout() time.Duration {
	if s.cfg.Meta.RequestTimeout <= 0 {
		return 30 * time.Second
	}
	return s.cfg.Meta.RequestTimeout
}

func (s *Service) maxConcurrentJobs() int {
	if s.cfg.Sync.MaxConcurrentJobs < 1 {
		return 1
	}
	return s.cfg.Sync.MaxConcurrentJobs
}

// withTimeout limita cada chamada à plataforma de anúncios
func withTimeout[T any](ctx context.Context, timeout time.Duration, fn func(context.Context) (T, error)) (T, error) {
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return fn(callCtx)
}
