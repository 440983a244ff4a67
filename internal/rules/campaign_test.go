package rules

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-health-api/internal/domain"
)

var baseDay = time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

func dec(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func i64(v int64) *int64 {
	return &v
}

func snapshot(day int, spend, cpa string, conversions int64) domain.Snapshot {
	s := domain.Snapshot{
		EntityType:   domain.EntityTypeCampaign,
		EntityID:     "cmp-1",
		SnapshotDate: baseDay.AddDate(0, 0, day),
		Conversions:  i64(conversions),
	}
	if spend != "" {
		s.Spend = dec(spend)
	}
	if cpa != "" {
		s.CPA = dec(cpa)
	}
	return s
}

func historyWithCPAs(cpas ...string) []domain.Snapshot {
	history := make([]domain.Snapshot, 0, len(cpas))
	for i, cpa := range cpas {
		history = append(history, snapshot(i, "100", cpa, 5))
	}
	return history
}

func issueTypes(issues []domain.Issue) []domain.IssueType {
	types := make([]domain.IssueType, 0, len(issues))
	for _, issue := range issues {
		types = append(types, issue.Type)
	}
	return types
}

func findIssue(issues []domain.Issue, issueType domain.IssueType) *domain.Issue {
	for i := range issues {
		if issues[i].Type == issueType {
			return &issues[i]
		}
	}
	return nil
}

func TestAnalyzeCampaign(t *testing.T) {
	tests := []struct {
		name     string
		current  domain.Snapshot
		history  []domain.Snapshot
		validate func(t *testing.T, result Result)
	}{
		{
			name:    "Fase de aprendizado - gasto 50 menor que 2x CPA de 30",
			current: snapshot(3, "50", "30", 2),
			history: historyWithCPAs("30", "30", "30"),
			validate: func(t *testing.T, result Result) {
				assert.Equal(t, []domain.IssueType{domain.IssueLearningPhase}, issueTypes(result.Issues))
				assert.Equal(t, domain.SeverityWarning, result.Issues[0].Severity)
				require.NotNil(t, result.Issues[0].MetricValue)
				assert.Equal(t, 50.0, *result.Issues[0].MetricValue)

				require.Len(t, result.Recommendations, 1)
				assert.Equal(t, domain.ActionWait, result.Recommendations[0].Action)
				assert.Equal(t, 5, result.Recommendations[0].Priority)
				assert.Equal(t, domain.SeverityWarning, result.Status)
			},
		},
		{
			name:    "Gasto igual a 2x CPA sai da fase de aprendizado",
			current: snapshot(3, "60", "30", 2),
			history: historyWithCPAs("30", "30", "30"),
			validate: func(t *testing.T, result Result) {
				assert.Empty(t, result.Issues)
				assert.Equal(t, domain.SeverityOK, result.Status)
			},
		},
		{
			name:    "Gasto ausente não é tratado como fase de aprendizado",
			current: snapshot(3, "", "30", 2),
			history: historyWithCPAs("30", "30", "30"),
			validate: func(t *testing.T, result Result) {
				assert.Nil(t, findIssue(result.Issues, domain.IssueLearningPhase))
			},
		},
		{
			name:    "Histórico com 2 dias gera dados insuficientes",
			current: snapshot(2, "500", "10", 50),
			history: historyWithCPAs("10", "10"),
			validate: func(t *testing.T, result Result) {
				assert.Equal(t, []domain.IssueType{domain.IssueInsufficientData}, issueTypes(result.Issues))
				require.Len(t, result.Recommendations, 1)
				assert.Equal(t, domain.ActionWait, result.Recommendations[0].Action)
				assert.Equal(t, 5, result.Recommendations[0].Priority)
				assert.Equal(t, domain.SeverityWarning, result.Status)
			},
		},
		{
			name:    "Histórico vazio gera dados insuficientes mesmo sem métricas",
			current: domain.Snapshot{EntityID: "cmp-1"},
			history: nil,
			validate: func(t *testing.T, result Result) {
				assert.Equal(t, []domain.IssueType{domain.IssueInsufficientData}, issueTypes(result.Issues))
			},
		},
		{
			name:    "CPA subindo 10, 12, 15 dispara regra crítica",
			current: snapshot(2, "75", "15", 5),
			history: historyWithCPAs("10", "12", "15"),
			validate: func(t *testing.T, result Result) {
				assert.Equal(t, []domain.IssueType{domain.IssueCPAIncreasing}, issueTypes(result.Issues))
				assert.Equal(t, domain.SeverityCritical, result.Issues[0].Severity)
				require.Len(t, result.Recommendations, 1)
				assert.Equal(t, domain.ActionChangeCreative, result.Recommendations[0].Action)
				assert.Equal(t, 1, result.Recommendations[0].Priority)
				assert.Equal(t, map[string]any{"test_new_hook": true}, result.Recommendations[0].Parameters)
				assert.Equal(t, domain.SeverityCritical, result.Status)
			},
		},
		{
			name:    "CPA caindo 15, 12, 10 não dispara a regra",
			current: snapshot(2, "75", "15", 5),
			history: historyWithCPAs("15", "12", "10"),
			validate: func(t *testing.T, result Result) {
				assert.Nil(t, findIssue(result.Issues, domain.IssueCPAIncreasing))
				assert.Equal(t, domain.SeverityOK, result.Status)
			},
		},
		{
			name:    "CPA estável não é tendência de alta",
			current: snapshot(2, "75", "12", 5),
			history: historyWithCPAs("10", "12", "12"),
			validate: func(t *testing.T, result Result) {
				assert.Nil(t, findIssue(result.Issues, domain.IssueCPAIncreasing))
			},
		},
		{
			name:    "Só os últimos 3 pontos contam para a tendência",
			current: snapshot(4, "150", "15", 10),
			history: historyWithCPAs("30", "20", "10", "12", "15"),
			validate: func(t *testing.T, result Result) {
				assert.NotNil(t, findIssue(result.Issues, domain.IssueCPAIncreasing))
			},
		},
		{
			name:    "Ponto sem CPA na janela invalida a tendência",
			current: snapshot(2, "75", "15", 5),
			history: []domain.Snapshot{
				snapshot(0, "100", "10", 5),
				snapshot(1, "0", "", 0),
				snapshot(2, "75", "15", 5),
			},
			validate: func(t *testing.T, result Result) {
				assert.Nil(t, findIssue(result.Issues, domain.IssueCPAIncreasing))
			},
		},
		{
			name:    "Sem conversões no dia atual a tendência não é avaliada",
			current: snapshot(2, "75", "15", 0),
			history: historyWithCPAs("10", "12", "15"),
			validate: func(t *testing.T, result Result) {
				assert.Nil(t, findIssue(result.Issues, domain.IssueCPAIncreasing))
			},
		},
		{
			name:    "Regras disparam juntas na ordem de avaliação",
			current: snapshot(2, "20", "15", 1),
			history: historyWithCPAs("12", "15"),
			validate: func(t *testing.T, result Result) {
				assert.Equal(t, []domain.IssueType{domain.IssueLearningPhase, domain.IssueInsufficientData}, issueTypes(result.Issues))
				assert.Len(t, result.Recommendations, 2)
				assert.Equal(t, domain.SeverityWarning, result.Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AnalyzeCampaign(tt.current, tt.history)
			tt.validate(t, result)
		})
	}
}

func TestAnalyzeCampaign_IsPure(t *testing.T) {
	current := snapshot(2, "75", "15", 5)
	history := historyWithCPAs("10", "12", "15")
	before := make([]domain.Snapshot, len(history))
	copy(before, history)

	expected := AnalyzeCampaign(current, history)

	var wg sync.WaitGroup
	results := make([]Result, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = AnalyzeCampaign(current, history)
		}(i)
	}
	wg.Wait()

	for _, result := range results {
		assert.Equal(t, expected, result)
	}
	assert.Equal(t, before, history)
}
