package explainer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-health-api/internal/domain"
)

func sampleCreative() ClassifyRequest {
	body := "Eu testei por 30 dias e olha o resultado"
	cta := "LEARN_MORE"
	video := "v-1"

	return ClassifyRequest{Creative: domain.Creative{
		CreativeID:   "cr-1",
		Body:         &body,
		CallToAction: &cta,
		VideoID:      &video,
	}}
}

func TestBuildClassifyPrompt(t *testing.T) {
	prompt, err := BuildClassifyPrompt(sampleCreative())

	require.NoError(t, err)
	assert.Contains(t, prompt, "Eu testei por 30 dias")
	assert.Contains(t, prompt, "LEARN_MORE")
	assert.Contains(t, prompt, `"has_video": true`)
	assert.NotContains(t, prompt, "image_url")
}

func TestParseClassification(t *testing.T) {
	tests := []struct {
		name           string
		raw            string
		expectErr      bool
		expectedFormat *string
		expectedNative *bool
	}{
		{
			name:           "json no formato pedido",
			raw:            `{"format_type":"ugc","meta_native":true,"description":"pessoa falando para a câmera"}`,
			expectedFormat: strPtr("ugc"),
			expectedNative: boolPtr(true),
		},
		{
			name:           "json dentro de bloco de código",
			raw:            "```json\n{\"format_type\":\"static\",\"meta_native\":false}\n```",
			expectedFormat: strPtr("static"),
			expectedNative: boolPtr(false),
		},
		{
			name: "formato desconhecido e nativo nulo não marcam nada",
			raw:  `{"format_type":"unknown","meta_native":null}`,
		},
		{
			name:      "formato fora da lista",
			raw:       `{"format_type":"carousel","meta_native":true}`,
			expectErr: true,
		},
		{
			name:      "meta_native ausente",
			raw:       `{"format_type":"ugc"}`,
			expectErr: true,
		},
		{
			name:      "meta_native como texto",
			raw:       `{"format_type":"ugc","meta_native":"sim"}`,
			expectErr: true,
		},
		{
			name:      "texto livre",
			raw:       "Parece um vídeo UGC.",
			expectErr: true,
		},
		{
			name:      "resposta vazia",
			raw:       "   ",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classification, err := ParseClassification(ProviderOpenAI, tt.raw)

			if tt.expectErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrExternalService))
				assert.Nil(t, classification)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedFormat, classification.FormatType)
			assert.Equal(t, tt.expectedNative, classification.MetaNative)
		})
	}
}

func TestDisabled_ClassifyCreative(t *testing.T) {
	classification, err := Disabled{}.ClassifyCreative(context.Background(), sampleCreative())

	require.NoError(t, err)
	assert.Nil(t, classification)
	assert.True(t, classification.Empty())
}

func TestAnthropicExplainer_ClassifyCreative(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if system, ok := body["system"].([]any); assert.True(t, ok) && assert.Len(t, system, 1) {
			block, _ := system[0].(map[string]any)
			text, _ := block["text"].(string)
			assert.True(t, strings.Contains(text, "format_type"))
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":   "msg_test",
			"type": "message",
			"role": "assistant",
			"content": []map[string]any{
				{"type": "text", "text": `{"format_type":"expert_talking","meta_native":true}`},
			},
			"model":       "claude-test",
			"stop_reason": "end_turn",
			"usage":       map[string]any{"input_tokens": 10, "output_tokens": 10},
		})
	}))
	t.Cleanup(server.Close)

	explainer, err := NewAnthropicExplainer("k", "claude-test", 256, option.WithBaseURL(server.URL))
	require.NoError(t, err)

	classification, err := explainer.ClassifyCreative(context.Background(), sampleCreative())

	require.NoError(t, err)
	assert.Equal(t, strPtr("expert_talking"), classification.FormatType)
	assert.Equal(t, boolPtr(true), classification.MetaNative)
}

func TestOpenAIExplainer_ClassifyCreative(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		expectErr bool
	}{
		{name: "resposta válida", content: `{"format_type":"dialog","meta_native":false}`},
		{name: "resposta fora do schema", content: `{"format":"dialog"}`, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(map[string]any{
					"id":    "chatcmpl-test",
					"model": "gpt-test",
					"choices": []map[string]any{
						{
							"index":         0,
							"message":       map[string]any{"role": "assistant", "content": tt.content},
							"finish_reason": "stop",
						},
					},
				})
			}))
			t.Cleanup(server.Close)

			explainer, err := NewOpenAIExplainer("k", "gpt-test", server.URL+"/v1", 256)
			require.NoError(t, err)

			classification, err := explainer.ClassifyCreative(context.Background(), sampleCreative())

			if tt.expectErr {
				assert.True(t, errors.Is(err, domain.ErrExternalService))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strPtr("dialog"), classification.FormatType)
			assert.Equal(t, boolPtr(false), classification.MetaNative)
		})
	}
}

func strPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}
