package explainer

import (
	"context"

	"github.com/vfg2006/campaign-health-api/internal/domain"
)

// Disabled não faz I/O e nunca falha
type Disabled struct{}

func (Disabled) Explain(context.Context, ExplainRequest) (*domain.Explanation, error) {
	return &domain.Explanation{Text: FallbackText}, nil
}

func (Disabled) ClassifyCreative(context.Context, ClassifyRequest) (*domain.CreativeClassification, error) {
	return nil, nil
}
