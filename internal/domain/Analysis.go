package domain

import (
	"time"
)

type Severity string

const (
	SeverityOK       Severity = "ok"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Rank ordena as severidades: ok < warning < critical
func (s Severity) Rank() int {
	switch s {
	case SeverityWarning:
		return 1
	case SeverityCritical:
		return 2
	default:
		return 0
	}
}

func ParseSeverity(value string) (Severity, bool) {
	switch Severity(value) {
	case SeverityOK, SeverityWarning, SeverityCritical:
		return Severity(value), true
	}
	return "", false
}

type IssueType string

const (
	IssueLearningPhase    IssueType = "learning_phase"
	IssueInsufficientData IssueType = "insufficient_data"
	IssueCPAIncreasing    IssueType = "cpa_increasing"
	IssueLowStopRate      IssueType = "low_stop_rate"
	IssueNotMetaNative    IssueType = "not_meta_native"
)

type ActionType string

const (
	ActionWait           ActionType = "wait"
	ActionStop           ActionType = "stop"
	ActionDuplicate      ActionType = "duplicate"
	ActionChangeCreative ActionType = "change_creative"
	ActionIncreaseBudget ActionType = "increase_budget"
)

type Issue struct {
	Type        IssueType `json:"type"`
	Severity    Severity  `json:"severity"`
	Description string    `json:"description"`
	MetricValue *float64  `json:"metric_value,omitempty"`
}

type Recommendation struct {
	Action     ActionType     `json:"action"`
	Reason     string         `json:"reason"`
	Priority   int            `json:"priority"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

type Explanation struct {
	Text       string   `json:"text"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// Analysis é o resultado imutável de uma execução do motor de regras para uma entidade
type Analysis struct {
	ID              string           `json:"id"`
	AccountID       string           `json:"account_id"`
	EntityType      EntityType       `json:"entity_type"`
	EntityID        string           `json:"entity_id"`
	Status          Severity         `json:"status"`
	Issues          []Issue          `json:"issues"`
	Recommendations []Recommendation `json:"recommendations"`
	Explanation     *Explanation     `json:"llm_explanation,omitempty"`
	AnalyzedAt      time.Time        `json:"analyzed_at"`
	RuleSetVersion  string           `json:"rule_set_version"`
}

// StatusFromIssues: critical se houver issue crítica, warning se houver warning, ok caso contrário
func StatusFromIssues(issues []Issue) Severity {
	status := SeverityOK
	for _, issue := range issues {
		if issue.Severity.Rank() > status.Rank() {
			status = issue.Severity
		}
	}
	return status
}
