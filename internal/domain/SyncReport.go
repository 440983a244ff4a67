package domain

import (
	"sync"
	"time"
)

type RunStatus string

const (
	RunStatusSuccess RunStatus = "success"
	RunStatusError   RunStatus = "error"
)

type EntityCounters struct {
	Written int `json:"written"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

type CreativeCounters struct {
	Written int `json:"written"`
	Failed  int `json:"failed"`
}

type EntityFailure struct {
	EntityType EntityType `json:"entity_type"`
	EntityID   string     `json:"entity_id"`
	Message    string     `json:"message"`
}

// SyncReport resume a sincronização de uma conta para o dia alvo.
// Os workers de campanha atualizam o relatório em paralelo, por isso os métodos usam o mutex.
type SyncReport struct {
	RunID     string           `json:"run_id"`
	AccountID string           `json:"account_id"`
	TargetDay time.Time        `json:"target_day"`
	Campaigns EntityCounters   `json:"campaigns"`
	Adsets    EntityCounters   `json:"adsets"`
	Ads       EntityCounters   `json:"ads"`
	Creatives CreativeCounters `json:"creatives"`
	Errors    []EntityFailure  `json:"errors"`

	mu sync.Mutex
}

func NewSyncReport(runID, accountID string, targetDay time.Time) *SyncReport {
	return &SyncReport{
		RunID:     runID,
		AccountID: accountID,
		TargetDay: targetDay,
		Errors:    make([]EntityFailure, 0),
	}
}

func (r *SyncReport) counters(entityType EntityType) *EntityCounters {
	switch entityType {
	case EntityTypeCampaign:
		return &r.Campaigns
	case EntityTypeAdset:
		return &r.Adsets
	default:
		return &r.Ads
	}
}

func (r *SyncReport) MarkWritten(entityType EntityType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters(entityType).Written++
}

func (r *SyncReport) MarkSkipped(entityType EntityType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters(entityType).Skipped++
}

func (r *SyncReport) MarkFailed(entityType EntityType, entityID string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters(entityType).Failed++
	r.Errors = append(r.Errors, EntityFailure{EntityType: entityType, EntityID: entityID, Message: err.Error()})
}

// RecordFailure registra um erro sem contar a entidade como falha (ex.: listagem de filhos)
func (r *SyncReport) RecordFailure(entityType EntityType, entityID string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Errors = append(r.Errors, EntityFailure{EntityType: entityType, EntityID: entityID, Message: err.Error()})
}

func (r *SyncReport) MarkCreative(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.Creatives.Failed++
		return
	}
	r.Creatives.Written++
}

type EntityAnalysisResult struct {
	EntityID    string   `json:"entity_id"`
	Status      Severity `json:"status,omitempty"`
	IssuesCount int      `json:"issues_count"`
	Error       string   `json:"error,omitempty"`
}

type AccountAnalysis struct {
	TargetDay time.Time              `json:"target_day"`
	Campaigns []EntityAnalysisResult `json:"campaigns"`
	Creatives []EntityAnalysisResult `json:"creatives"`
}

// AccountRunResult é o item por conta devolvido pelos lotes de sincronização e análise
type AccountRunResult struct {
	AccountID  string           `json:"account_id"`
	ExternalID string           `json:"external_id"`
	Status     RunStatus        `json:"status"`
	Error      string           `json:"error,omitempty"`
	Sync       *SyncReport      `json:"sync,omitempty"`
	Analysis   *AccountAnalysis `json:"analysis,omitempty"`
}
