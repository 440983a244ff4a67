package rules

import (
	"fmt"

	"github.com/vfg2006/campaign-health-api/internal/domain"
)

// CreativeSignals são os sinais de qualidade de um criativo. Todos opcionais.
type CreativeSignals struct {
	StopRate   *float64
	MetaNative *bool
	FormatType *string
}

// AnalyzeCreative aplica as regras 4.x ao criativo. Stop rate ausente conta como zero.
func AnalyzeCreative(signals CreativeSignals) Result {
	result := newResult()

	stopRate := 0.0
	if signals.StopRate != nil {
		stopRate = *signals.StopRate
	}

	// Regra 4.5.1
	if stopRate < minStopRate {
		result.addIssue(domain.Issue{
			Type:        domain.IssueLowStopRate,
			Severity:    domain.SeverityCritical,
			Description: fmt.Sprintf("Stop rate de %.1f%% abaixo de 30%%. O problema está no hook.", stopRate*100),
			MetricValue: floatPtr(stopRate),
		})
		result.addRecommendation(domain.Recommendation{
			Action:     domain.ActionChangeCreative,
			Reason:     "Regra 4.5.1: altere SOMENTE os primeiros 1-3 segundos",
			Priority:   1,
			Parameters: map[string]any{"change_hook_only": true},
		})
	}

	// Regra 4.3
	if signals.MetaNative != nil && !*signals.MetaNative {
		result.addIssue(domain.Issue{
			Type:        domain.IssueNotMetaNative,
			Severity:    domain.SeverityWarning,
			Description: "Criativo parece anúncio, não conteúdo orgânico",
		})
	}

	// Regra 4.6.1: formato UGC tem prioridade
	if signals.FormatType != nil && *signals.FormatType != "" {
		if _, ok := preferredFormats[*signals.FormatType]; !ok {
			result.addRecommendation(domain.Recommendation{
				Action:     domain.ActionChangeCreative,
				Reason:     "Regra 4.3: vídeos UGC/gravados pelo próprio criador performam melhor",
				Priority:   3,
				Parameters: map[string]any{"suggested_format": "ugc"},
			})
		}
	}

	// Qualquer issue de criativo não crítica resulta em warning
	switch {
	case domain.StatusFromIssues(result.Issues) == domain.SeverityCritical:
		result.Status = domain.SeverityCritical
	case len(result.Issues) > 0:
		result.Status = domain.SeverityWarning
	default:
		result.Status = domain.SeverityOK
	}

	return result
}
