package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-health-api/internal/domain"
)

func f64(v float64) *float64 {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}

func str(v string) *string {
	return &v
}

func TestAnalyzeCreative(t *testing.T) {
	tests := []struct {
		name     string
		signals  CreativeSignals
		validate func(t *testing.T, result Result)
	}{
		{
			name:    "Stop rate de 25% dispara regra crítica com troca só do hook",
			signals: CreativeSignals{StopRate: f64(0.25)},
			validate: func(t *testing.T, result Result) {
				require.Len(t, result.Issues, 1)
				assert.Equal(t, domain.IssueLowStopRate, result.Issues[0].Type)
				assert.Equal(t, domain.SeverityCritical, result.Issues[0].Severity)
				require.Len(t, result.Recommendations, 1)
				assert.Equal(t, domain.ActionChangeCreative, result.Recommendations[0].Action)
				assert.Equal(t, 1, result.Recommendations[0].Priority)
				assert.Equal(t, map[string]any{"change_hook_only": true}, result.Recommendations[0].Parameters)
				assert.Equal(t, domain.SeverityCritical, result.Status)
			},
		},
		{
			name:    "Stop rate de 35% não dispara",
			signals: CreativeSignals{StopRate: f64(0.35)},
			validate: func(t *testing.T, result Result) {
				assert.Empty(t, result.Issues)
				assert.Empty(t, result.Recommendations)
				assert.Equal(t, domain.SeverityOK, result.Status)
			},
		},
		{
			name:    "Stop rate ausente conta como zero",
			signals: CreativeSignals{},
			validate: func(t *testing.T, result Result) {
				require.Len(t, result.Issues, 1)
				assert.Equal(t, domain.IssueLowStopRate, result.Issues[0].Type)
				assert.Equal(t, 0.0, *result.Issues[0].MetricValue)
			},
		},
		{
			name:    "Criativo não nativo gera warning sem recomendação",
			signals: CreativeSignals{StopRate: f64(0.5), MetaNative: boolPtr(false)},
			validate: func(t *testing.T, result Result) {
				require.Len(t, result.Issues, 1)
				assert.Equal(t, domain.IssueNotMetaNative, result.Issues[0].Type)
				assert.Empty(t, result.Recommendations)
				assert.Equal(t, domain.SeverityWarning, result.Status)
			},
		},
		{
			name:    "Formato fora do preferido sugere UGC sem criar issue",
			signals: CreativeSignals{StopRate: f64(0.5), MetaNative: boolPtr(true), FormatType: str("static_image")},
			validate: func(t *testing.T, result Result) {
				assert.Empty(t, result.Issues)
				require.Len(t, result.Recommendations, 1)
				assert.Equal(t, 3, result.Recommendations[0].Priority)
				assert.Equal(t, map[string]any{"suggested_format": "ugc"}, result.Recommendations[0].Parameters)
				assert.Equal(t, domain.SeverityOK, result.Status)
			},
		},
		{
			name:    "Formatos preferidos não geram recomendação",
			signals: CreativeSignals{StopRate: f64(0.5), FormatType: str("expert_talking")},
			validate: func(t *testing.T, result Result) {
				assert.Empty(t, result.Recommendations)
			},
		},
		{
			name:    "Todas as regras juntas",
			signals: CreativeSignals{StopRate: f64(0.1), MetaNative: boolPtr(false), FormatType: str("carousel")},
			validate: func(t *testing.T, result Result) {
				assert.Equal(t, []domain.IssueType{domain.IssueLowStopRate, domain.IssueNotMetaNative}, issueTypes(result.Issues))
				assert.Len(t, result.Recommendations, 2)
				assert.Equal(t, domain.SeverityCritical, result.Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, AnalyzeCreative(tt.signals))
		})
	}
}
