package explainer

import (
	"context"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/vfg2006/campaign-health-api/internal/domain"
)

type AnthropicExplainer struct {
	client    *anthropic.Client
	model     string
	maxTokens int
}

func NewAnthropicExplainer(apiKey, model string, maxTokens int, opts ...option.RequestOption) (*AnthropicExplainer, error) {
	if apiKey == "" {
		return nil, errors.New("ANTHROPIC_API_KEY é obrigatória para o provedor anthropic")
	}

	client := anthropic.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)

	return &AnthropicExplainer{
		client:    &client,
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

func (e *AnthropicExplainer) Explain(ctx context.Context, req ExplainRequest) (*domain.Explanation, error) {
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

func (e *AnthropicExplainer) ClassifyCreative(ctx context.Context, req ClassifyRequest) (*domain.CreativeClassification, error) {
	prompt, err := BuildClassifyPrompt(req)
	if err != nil {
		return nil, err
	}

	text, err := e.complete(ctx, classifySystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	return ParseClassification(ProviderAnthropic, text)
}

func (e *AnthropicExplainer) complete(ctx context.Context, system, prompt string) (string, error) {
	msg, err := e.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(e.model),
		MaxTokens: int64(e.maxTokens),
		System:    []anthropic.TextBlockParam{{Text: system}},
		Messages: []anthropic.MessageParam{
			{
				Role:    anthropic.MessageParamRoleUser,
				Content: []anthropic.ContentBlockParamUnion{anthropic.NewTextBlock(prompt)},
			},
		},
	})
	if err != nil {
		return "", providerError(ProviderAnthropic, err)
	}

	for _, block := range msg.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}

	return "", providerError(ProviderAnthropic, errors.New("resposta sem conteúdo de texto"))
}
