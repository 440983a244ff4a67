package explainer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-health-api/internal/config"
	"github.com/vfg2006/campaign-health-api/internal/domain"
)

// NewExplainer escolhe o provedor pelo AI_PROVIDER. Provedor desconhecido ou sem chave é erro de inicialização.
func NewExplainer(ctx context.Context, cfg config.AI) (Explainer, error) {
	var (
		base Explainer
		err  error
	)

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", ProviderNone:
		logrus.Info("Explicação por IA desabilitada")
		return Disabled{}, nil
	case ProviderAnthropic:
		base, err = NewAnthropicExplainer(cfg.AnthropicAPIKey, cfg.AnthropicModel, maxTokens)
	case ProviderOpenAI:
		base, err = NewOpenAIExplainer(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL, maxTokens)
	case ProviderGemini:
		base, err = NewGeminiExplainer(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, maxTokens)
	default:
		return nil, fmt.Errorf("provedor de IA desconhecido: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao inicializar provedor %s: %w", cfg.Provider, err)
	}

	logrus.WithField("provider", cfg.Provider).Info("Explicação por IA habilitada")

	return WithTimeout(base, cfg.Timeout), nil
}

type timeoutExplainer struct {
	next    Explainer
	timeout time.Duration
}

// WithTimeout limita cada chamada ao provedor
func WithTimeout(next Explainer, timeout time.Duration) Explainer {
	if timeout <= 0 {
		return next
	}
	return &timeoutExplainer{next: next, timeout: timeout}
}

func (t *timeoutExplainer) Explain(ctx context.Context, req ExplainRequest) (*domain.Explanation, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	return t.next.Explain(ctx, req)
}

func (t *timeoutExplainer) ClassifyCreative(ctx context.Context, req ClassifyRequest) (*domain.CreativeClassification, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	return t.next.ClassifyCreative(ctx, req)
}
