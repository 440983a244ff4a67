package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type EntityType string

const (
	EntityTypeCampaign EntityType = "campaign"
	EntityTypeAdset    EntityType = "adset"
	EntityTypeAd       EntityType = "ad"
	EntityTypeCreative EntityType = "creative"
)

func (t EntityType) IsValid() bool {
	switch t {
	case EntityTypeCampaign, EntityTypeAdset, EntityTypeAd, EntityTypeCreative:
		return true
	}
	return false
}

// Snapshot é o estado de uma entidade (campanha, conjunto ou anúncio) em um dia.
// Existe no máximo um snapshot por (tipo, entidade, dia).
type Snapshot struct {
	ID             int64            `json:"-"`
	AccountID      string           `json:"account_id"`
	EntityType     EntityType       `json:"entity_type"`
	EntityID       string           `json:"entity_id"`
	ParentID       *string          `json:"parent_id,omitempty"`
	Name           string           `json:"name"`
	Status         string           `json:"status"`
	Objective      *string          `json:"objective,omitempty"`
	DailyBudget    *decimal.Decimal `json:"daily_budget,omitempty"`
	LifetimeBudget *decimal.Decimal `json:"lifetime_budget,omitempty"`
	Spend          *decimal.Decimal `json:"spend"`
	Impressions    *int64           `json:"impressions"`
	Clicks         *int64           `json:"clicks"`
	Conversions    *int64           `json:"conversions"`
	CPA            *decimal.Decimal `json:"cpa"`
	CTR            *float64         `json:"ctr,omitempty"`
	CPM            *float64         `json:"cpm,omitempty"`
	VideoViews     *int64           `json:"video_views,omitempty"`
	CreativeID     *string          `json:"creative_id,omitempty"`
	SnapshotDate   time.Time        `json:"snapshot_date"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// SpendValue devolve o gasto ou zero quando ausente
func (s *Snapshot) SpendValue() decimal.Decimal {
	if s.Spend == nil {
		return decimal.Zero
	}
	return *s.Spend
}

func (s *Snapshot) CPAValue() decimal.Decimal {
	if s.CPA == nil {
		return decimal.Zero
	}
	return *s.CPA
}

func (s *Snapshot) ConversionsValue() int64 {
	if s.Conversions == nil {
		return 0
	}
	return *s.Conversions
}

// StopRate é a fração de impressões que viraram visualizações de 3 segundos.
// Só existe para anúncios com vídeo e impressões.
func (s *Snapshot) StopRate() *float64 {
	if s.VideoViews == nil || s.Impressions == nil || *s.Impressions <= 0 {
		return nil
	}
	rate := float64(*s.VideoViews) / float64(*s.Impressions)
	return &rate
}

// CalculateCPA devolve spend/conversions com duas casas decimais.
// Sem conversões ou sem gasto o CPA é ausente, nunca zero.
func CalculateCPA(spend *decimal.Decimal, conversions int64) *decimal.Decimal {
	if spend == nil || conversions <= 0 {
		return nil
	}

	cpa := spend.Div(decimal.NewFromInt(conversions)).Round(2)
	return &cpa
}

// UpsertResult informa se a escrita criou ou sobrescreveu a linha
type UpsertResult string

const (
	UpsertInserted UpsertResult = "inserted"
	UpsertUpdated  UpsertResult = "updated"
)

// EntityRecord é uma entidade listada pela plataforma de anúncios, já normalizada
type EntityRecord struct {
	ID             string
	Name           string
	Status         string
	Objective      *string
	DailyBudget    *decimal.Decimal
	LifetimeBudget *decimal.Decimal
	CreativeID     *string
}

// InsightRecord é a métrica diária de uma entidade.
// Campos ausentes ou inválidos na origem ficam nil.
type InsightRecord struct {
	Spend       *decimal.Decimal
	Impressions *int64
	Clicks      *int64
	Conversions int64
	VideoViews  *int64
	CPC         *float64
	CPM         *float64
	CTR         *float64
	Frequency   *float64
}
