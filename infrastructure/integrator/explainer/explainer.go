// Package explainer gera a explicação em linguagem natural de uma análise de campanha.
// A explicação é opcional: o resultado do motor de regras vale sem ela.
package explainer

import (
	"context"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/campaign-health-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	ProviderNone      = "none"
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
)

// FallbackText é devolvido quando nenhum provedor de IA está configurado
const FallbackText = "Análise por IA não configurada. Use as recomendações do motor de regras."

const systemPrompt = "Você é um especialista em tráfego pago no Meta Ads. " +
	"Explique para um gestor de tráfego, em português e em no máximo 4 frases, " +
	"por que a campanha recebeu os alertas e o que fazer. " +
	`Responda apenas com JSON no formato {"explanation": "...", "confidence": 0.0}.`

type ExplainRequest struct {
	Campaign        domain.Snapshot
	Issues          []domain.Issue
	Recommendations []domain.Recommendation
	Context         string
}

//go:generate mockgen -source=explainer.go -destination=mocks/mock_explainer.go -package=mocks
type Explainer interface {
	Explain(ctx context.Context, req ExplainRequest) (*domain.Explanation, error)
	// ClassifyCreative devolve nil, nil quando não há classificador configurado
	ClassifyCreative(ctx context.Context, req ClassifyRequest) (*domain.CreativeClassification, error)
}

type promptCampaign struct {
	Name        string  `json:"name"`
	Status      string  `json:"status"`
	Objective   *string `json:"objective,omitempty"`
	Spend       string  `json:"spend"`
	Conversions int64   `json:"conversions"`
	CPA         *string `json:"cpa"`
	Date        string  `json:"date"`
}

// BuildPrompt monta a mensagem do usuário com os dados da campanha, issues e recomendações
func BuildPrompt(req ExplainRequest) (string, error) {
	campaign := promptCampaign{
		Name:        req.Campaign.Name,
		Status:      req.Campaign.Status,
		Objective:   req.Campaign.Objective,
		Spend:       req.Campaign.SpendValue().StringFixed(2),
		Conversions: req.Campaign.ConversionsValue(),
		Date:        req.Campaign.SnapshotDate.Format("2006-01-02"),
	}
	if req.Campaign.CPA != nil {
		cpa := req.Campaign.CPA.StringFixed(2)
		campaign.CPA = &cpa
	}

	payload, err := json.MarshalIndent(map[string]any{
		"campaign":        campaign,
		"issues":          req.Issues,
		"recommendations": req.Recommendations,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("erro ao montar prompt: %w", err)
	}

	var b strings.Builder
	if req.Context != "" {
		b.WriteString("Contexto do playbook:\n")
		b.WriteString(req.Context)
		b.WriteString("\n\n")
	}
	b.WriteString("Dados da análise:\n")
	b.Write(payload)

	return b.String(), nil
}

type explanationPayload struct {
	Explanation string   `json:"explanation"`
	Confidence  *float64 `json:"confidence"`
}

// ParseExplanation aceita o JSON pedido no prompt; qualquer outro texto vira a explicação sem confiança
func ParseExplanation(raw string) *domain.Explanation {
	text := stripFence(raw)

	var payload explanationPayload
	if err := json.Unmarshal([]byte(text), &payload); err == nil && payload.Explanation != "" {
		return &domain.Explanation{
			Text:       payload.Explanation,
			Confidence: clampConfidence(payload.Confidence),
		}
	}

	return &domain.Explanation{Text: strings.TrimSpace(raw)}
}

func clampConfidence(c *float64) *float64 {
	if c == nil {
		return nil
	}
	value := *c
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	return &value
}

func providerError(provider string, err error) error {
	return domain.NewOperationError(domain.ErrExternalService, "explainer."+provider, "", err)
}
