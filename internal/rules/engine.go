// Package rules implementa o motor de regras do playbook de Meta Ads.
// As funções são puras: não fazem I/O, não consultam o relógio e não alteram as entradas.
package rules

import (
	"github.com/vfg2006/campaign-health-api/internal/domain"
)

// Version identifica o conjunto de regras gravado em cada análise
const Version = "rules_engine_v1"

const (
	// minHistoryDays é o mínimo de dias (~72h) antes de tirar conclusões
	minHistoryDays = 3
	// cpaTrendDays é a quantidade de pontos usada para detectar CPA crescente
	cpaTrendDays = 3
	// minStopRate abaixo disso o hook do criativo é considerado fraco
	minStopRate = 0.30
)

var preferredFormats = map[string]struct{}{
	"ugc":            {},
	"expert_talking": {},
}

// Result é a saída de uma avaliação do motor
type Result struct {
	Status          domain.Severity
	Issues          []domain.Issue
	Recommendations []domain.Recommendation
}

func newResult() Result {
	return Result{
		Status:          domain.SeverityOK,
		Issues:          make([]domain.Issue, 0),
		Recommendations: make([]domain.Recommendation, 0),
	}
}

func (r *Result) addIssue(issue domain.Issue) {
	r.Issues = append(r.Issues, issue)
}

func (r *Result) addRecommendation(rec domain.Recommendation) {
	r.Recommendations = append(r.Recommendations, rec)
}

func floatPtr(v float64) *float64 {
	return &v
}
