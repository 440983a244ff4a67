package explainer

import (
	"context"
	"errors"
	"fmt"

	"github.com/vfg2006/campaign-health-api/internal/domain"
	"google.golang.org/genai"
)

type GeminiExplainer struct {
	client    *genai.Client
	model     string
	maxTokens int
}

func NewGeminiExplainer(ctx context.Context, apiKey, model string, maxTokens int) (*GeminiExplainer, error) {
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY é obrigatória para o provedor gemini")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente gemini: %w", err)
	}

	return &GeminiExplainer{
		client:    client,
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

func (e *GeminiExplainer) Explain(ctx context.Context, req ExplainRequest) (*domain.Explanation, error) {
	prompt, err := BuildPrompt(req)
	if err != nil {
		return nil, err
	}

	text, err := e.complete(ctx, systemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	return ParseExplanation(text), nil
}

func (e *GeminiExplainer) ClassifyCreative(ctx context.Context, req ClassifyRequest) (*domain.CreativeClassification, error) {
	prompt, err := BuildClassifyPrompt(req)
	if err != nil {
		return nil, err
	}

	text, err := e.complete(ctx, classifySystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	return ParseClassification(ProviderGemini, text)
}

func (e *GeminiExplainer) complete(ctx context.Context, system, prompt string) (string, error) {
	result, err := e.client.Models.GenerateContent(ctx, e.model, genai.Text(prompt), &genai.GenerateContentConfig{
		MaxOutputTokens: int32(e.maxTokens),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		},
	})
	if err != nil {
		return "", providerError(ProviderGemini, err)
	}

	text := result.Text()
	if text == "" {
		return "", providerError(ProviderGemini, errors.New("resposta vazia"))
	}

	return text, nil
}
