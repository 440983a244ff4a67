package rules

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/campaign-health-api/internal/domain"
)

var two = decimal.NewFromInt(2)

// AnalyzeCampaign avalia o snapshot atual de uma campanha junto com o histórico
// (ordenado por data crescente). Todas as regras são avaliadas, na ordem:
// fase de aprendizado, histórico insuficiente e tendência de CPA.
func AnalyzeCampaign(current domain.Snapshot, history []domain.Snapshot) Result {
	result := newResult()

	spend := current.SpendValue()
	cpa := current.CPAValue()
	conversions := current.ConversionsValue()

	// Regra 2.3: não otimizar antes de gastar 2x o CPA
	if spend.IsPositive() && cpa.IsPositive() && spend.LessThan(cpa.Mul(two)) {
		result.addIssue(domain.Issue{
			Type:        domain.IssueLearningPhase,
			Severity:    domain.SeverityWarning,
			Description: "Campanha em fase de aprendizado. Dados insuficientes para otimizar.",
			MetricValue: floatPtr(spend.InexactFloat64()),
		})
		result.addRecommendation(domain.Recommendation{
			Action:   domain.ActionWait,
			Reason:   "Regra 2.3: é preciso gastar no mínimo 2x o CPA antes de otimizar",
			Priority: 5,
		})
	}

	// Regra 7: janela mínima de 72 horas
	if len(history) < minHistoryDays {
		result.addIssue(domain.Issue{
			Type:        domain.IssueInsufficientData,
			Severity:    domain.SeverityWarning,
			Description: fmt.Sprintf("Campanha com %d dia(s) de dados. Mínimo de 72h para conclusões.", len(history)),
		})
		result.addRecommendation(domain.Recommendation{
			Action:   domain.ActionWait,
			Reason:   "Regra 7: mínimo de 72 horas para análise",
			Priority: 5,
		})
	}

	if cpa.IsPositive() && conversions > 0 && isCPAIncreasing(history, cpaTrendDays) {
		result.addIssue(domain.Issue{
			Type:        domain.IssueCPAIncreasing,
			Severity:    domain.SeverityCritical,
			Description: fmt.Sprintf("CPA subindo há %d dias seguidos. Atual: %s", cpaTrendDays, cpa.StringFixed(2)),
			MetricValue: floatPtr(cpa.InexactFloat64()),
		})
		result.addRecommendation(domain.Recommendation{
			Action:     domain.ActionChangeCreative,
			Reason:     "Criativo saturando (CPA subindo). Regra 4.4: troque o hook (primeiros 1-3 segundos)",
			Priority:   1,
			Parameters: map[string]any{"test_new_hook": true},
		})
	}

	result.Status = domain.StatusFromIssues(result.Issues)
	return result
}

// isCPAIncreasing verifica se os últimos `days` pontos do histórico têm CPA estritamente crescente.
// Qualquer ponto sem CPA positivo invalida a tendência.
func isCPAIncreasing(history []domain.Snapshot, days int) bool {
	if len(history) < days {
		return false
	}

	recent := history[len(history)-days:]
	for i := range recent {
		if recent[i].CPA == nil || !recent[i].CPA.IsPositive() {
			return false
		}
		if i > 0 && !recent[i].CPA.GreaterThan(*recent[i-1].CPA) {
			return false
		}
	}

	return true
}
