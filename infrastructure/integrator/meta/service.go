package meta

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-health-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-health-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/campaign-health-api/internal/config"
	"github.com/vfg2006/campaign-health-api/internal/domain"
)

// MetaIntegrator traduz a Graph API para os registros do domínio.
// Cada conta tem seu próprio token; use ForToken para obter um integrador ligado a ele.
type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
	token  string
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MetaIntegrator) ForToken(token string) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    s.cfg,
		Client: s.Client,
		token:  token,
	}
}

func (s *MetaIntegrator) ValidateToken(ctx context.Context) (bool, error) {
	return s.Client.CheckTokenValidity(ctx, s.token)
}

func (s *MetaIntegrator) ListCampaigns(ctx context.Context, accountExternalID string) ([]domain.EntityRecord, error) {
	campaigns, err := s.Client.GetCampaignsByAccountID(ctx, s.token, accountExternalID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountExternalID,
			"error":      err.Error(),
		}).Error("meta: failed to list campaigns")
		return nil, err
	}

	records := make([]domain.EntityRecord, 0, len(campaigns))
	for _, c := range campaigns {
		records = append(records, domain.EntityRecord{
			ID:             c.ID,
			Name:           c.Name,
			Status:         c.Status,
			Objective:      parseString(c.Objective),
			DailyBudget:    parseBudget(c.DailyBudget),
			LifetimeBudget: parseBudget(c.LifetimeBudget),
		})
	}

	return records, nil
}

func (s *MetaIntegrator) ListAdsets(ctx context.Context, campaignID string) ([]domain.EntityRecord, error) {
	adsets, err := s.Client.GetAdsetsByCampaignID(ctx, s.token, campaignID)
	if err != nil {
		return nil, err
	}

	records := make([]domain.EntityRecord, 0, len(adsets))
	for _, a := range adsets {
		records = append(records, domain.EntityRecord{
			ID:             a.ID,
			Name:           a.Name,
			Status:         a.Status,
			DailyBudget:    parseBudget(a.DailyBudget),
			LifetimeBudget: parseBudget(a.LifetimeBudget),
		})
	}

	return records, nil
}

func (s *MetaIntegrator) ListAds(ctx context.Context, adsetID string) ([]domain.EntityRecord, error) {
	ads, err := s.Client.GetAdsByAdsetID(ctx, s.token, adsetID)
	if err != nil {
		return nil, err
	}

	records := make([]domain.EntityRecord, 0, len(ads))
	for _, a := range ads {
		record := domain.EntityRecord{
			ID:     a.ID,
			Name:   a.Name,
			Status: a.Status,
		}
		if a.Creative != nil {
			record.CreativeID = parseString(a.Creative.ID)
		}
		records = append(records, record)
	}

	return records, nil
}

// GetInsight devolve nil quando a entidade não teve entrega no dia
func (s *MetaIntegrator) GetInsight(ctx context.Context, entityID string, day time.Time) (*domain.InsightRecord, error) {
	insight, err := s.Client.GetInsightsByID(ctx, s.token, entityID, day)
	if err != nil {
		return nil, err
	}

	if insight == nil {
		logrus.WithFields(logrus.Fields{
			"entity_id": entityID,
			"day":       day.Format(time.DateOnly),
		}).Debug("meta: no insight for day")
		return nil, nil
	}

	return FactoryInsightRecord(insight), nil
}

func (s *MetaIntegrator) GetCreativeDetail(ctx context.Context, creativeID string) (*domain.CreativeDetail, error) {
	creative, err := s.Client.GetCreativeByID(ctx, s.token, creativeID)
	if err != nil {
		return nil, err
	}

	return &domain.CreativeDetail{
		Name:         parseString(creative.Name),
		Title:        parseString(creative.Title),
		Body:         parseString(creative.Body),
		ImageURL:     parseString(creative.ImageURL),
		VideoID:      parseString(creative.VideoID),
		ThumbnailURL: parseString(creative.ThumbnailURL),
		CallToAction: parseString(creative.CallToActionType),
		LinkURL:      parseString(creative.LinkURL),
	}, nil
}

func FactoryInsightRecord(insight *metadomain.Insight) *domain.InsightRecord {
	return &domain.InsightRecord{
		Spend:       parseDecimal(insight.Spend),
		Impressions: parseInt(insight.Impressions),
		Clicks:      parseInt(insight.Clicks),
		Conversions: ExtractConversions(insight.Actions),
		VideoViews:  ExtractVideoViews(insight.Actions),
		CPC:         parseFloat(insight.CPC),
		CPM:         parseFloat(insight.CPM),
		CTR:         parseFloat(insight.CTR),
		Frequency:   parseFloat(insight.Frequency),
	}
}
