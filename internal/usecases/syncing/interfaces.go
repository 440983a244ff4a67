package syncing

import (
	"context"
	"time"

	"github.com/vfg2006/campaign-health-api/internal/domain"
)

// MetricSource é a plataforma de anúncios já ligada ao token de uma conta
//
//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks
type MetricSource interface {
	ValidateToken(ctx context.Context) (bool, error)
	ListCampaigns(ctx context.Context, accountExternalID string) ([]domain.EntityRecord, error)
	ListAdsets(ctx context.Context, campaignID string) ([]domain.EntityRecord, error)
	ListAds(ctx context.Context, adsetID string) ([]domain.EntityRecord, error)
	GetInsight(ctx context.Context, entityID string, day time.Time) (*domain.InsightRecord, error)
	GetCreativeDetail(ctx context.Context, creativeID string) (*domain.CreativeDetail, error)
}

// MetricSourceFactory cria uma MetricSource para o token de uma conta
type MetricSourceFactory func(accessToken string) MetricSource

// Syncer é usado pelo agendador, pelo handler de cron e pela CLI
type Syncer interface {
	SyncAccount(ctx context.Context, accountID string) (*domain.SyncReport, error)
	SyncAll(ctx context.Context) ([]domain.AccountRunResult, error)
}
