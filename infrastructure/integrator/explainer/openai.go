package explainer

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
	"github.com/vfg2006/campaign-health-api/internal/domain"
)

// OpenAIExplainer também atende APIs compatíveis com a OpenAI via baseURL
type OpenAIExplainer struct {
	client    *openai.Client
	model     string
	maxTokens int
}

func NewOpenAIExplainer(apiKey, model, baseURL string, maxTokens int) (*OpenAIExplainer, error) {
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY é obrigatória para o provedor openai")
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &OpenAIExplainer{
		client:    openai.NewClientWithConfig(cfg),
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

func (e *OpenAIExplainer) Explain(ctx context.Context, req ExplainRequest) (*domain.Explanation, error) {
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

func (e *OpenAIExplainer) ClassifyCreative(ctx context.Context, req ClassifyRequest) (*domain.CreativeClassification, error) {
	prompt, err := BuildClassifyPrompt(req)
	if err != nil {
		return nil, err
	}

	text, err := e.complete(ctx, classifySystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	return ParseClassification(ProviderOpenAI, text)
}

func (e *OpenAIExplainer) complete(ctx context.Context, system, prompt string) (string, error) {
	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxCompletionTokens: e.maxTokens,
	})
	if err != nil {
		return "", providerError(ProviderOpenAI, err)
	}

	if len(resp.Choices) == 0 {
		return "", providerError(ProviderOpenAI, errors.New("resposta sem choices"))
	}

	return resp.Choices[0].Message.Content, nil
}
