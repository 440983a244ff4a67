package explainer

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/vfg2006/campaign-health-api/internal/domain"
)

// FormatUnknown é aceito na resposta mas não é gravado
const FormatUnknown = "unknown"

const classifySystemPrompt = "Você é um especialista em criativos para Meta Ads. " +
	"Classifique o formato do criativo e diga se ele parece nativo da plataforma " +
	"(conteúdo que parece post orgânico, não anúncio). " +
	`Responda apenas com JSON no formato {"format_type": "ugc|expert_talking|dialog|static|unknown", ` +
	`"meta_native": true|false|null, "description": "..."}.`

const classificationSchemaURL = "schema://creative_classification.json"

const classificationSchema = `{
	"type": "object",
	"required": ["format_type", "meta_native"],
	"properties": {
		"format_type": {"enum": ["ugc", "expert_talking", "dialog", "static", "unknown"]},
		"meta_native": {"type": ["boolean", "null"]},
		"description": {"type": "string"}
	}
}`

type ClassifyRequest struct {
	Creative domain.Creative
}

var compiledClassificationSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	var doc any
	if err := json.Unmarshal([]byte(classificationSchema), &doc); err != nil {
		return nil, fmt.Errorf("schema de classificação inválido: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(classificationSchemaURL, doc); err != nil {
		return nil, err
	}

	return c.Compile(classificationSchemaURL)
})

type promptCreative struct {
	Name         *string `json:"name,omitempty"`
	Title        *string `json:"title,omitempty"`
	Body         *string `json:"body,omitempty"`
	CallToAction *string `json:"call_to_action,omitempty"`
	ImageURL     *string `json:"image_url,omitempty"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`
	HasVideo     bool    `json:"has_video"`
}

// BuildClassifyPrompt descreve o criativo só com texto: copy, CTA e URLs das imagens
func BuildClassifyPrompt(req ClassifyRequest) (string, error) {
	c := req.Creative
	payload, err := json.MarshalIndent(promptCreative{
		Name:         c.Name,
		Title:        c.Title,
		Body:         c.Body,
		CallToAction: c.CallToAction,
		ImageURL:     c.ImageURL,
		ThumbnailURL: c.ThumbnailURL,
		HasVideo:     c.VideoID != nil && *c.VideoID != "",
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("erro ao montar prompt: %w", err)
	}

	return "Criativo:\n" + string(payload), nil
}

// ParseClassification valida a resposta contra o schema. Resposta fora do formato é erro do provedor.
func ParseClassification(provider, raw string) (*domain.CreativeClassification, error) {
	text := stripFence(raw)
	if text == "" {
		return nil, providerError(provider, errors.New("resposta vazia"))
	}

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, providerError(provider, fmt.Errorf("classificação não é JSON: %w", err))
	}

	schema, err := compiledClassificationSchema()
	if err != nil {
		return nil, providerError(provider, err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, providerError(provider, fmt.Errorf("classificação fora do schema: %w", err))
	}

	var result domain.CreativeClassification
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, providerError(provider, err)
	}
	if result.FormatType != nil && *result.FormatType == FormatUnknown {
		result.FormatType = nil
	}

	return &result, nil
}

func stripFence(raw string) string {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
