package explainer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go/option"
	openai "github.com/sashabaranov/go-openai"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-health-api/internal/config"
	"github.com/vfg2006/campaign-health-api/internal/domain"
)

func sampleRequest() ExplainRequest {
	spend := decimal.NewFromInt(300)
	cpa := decimal.NewFromInt(60)
	conversions := int64(5)

	return ExplainRequest{
		Campaign: domain.Snapshot{
			EntityID:     "c1",
			Name:         "Leads Março",
			Status:       "ACTIVE",
			Spend:        &spend,
			CPA:          &cpa,
			Conversions:  &conversions,
			SnapshotDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		Issues: []domain.Issue{
			{Type: domain.IssueCPAIncreasing, Severity: domain.SeverityCritical, Description: "CPA subindo"},
		},
		Recommendations: []domain.Recommendation{
			{Action: domain.ActionChangeCreative, Priority: 1, Parameters: map[string]any{"test_new_hook": true}},
		},
		Context: "Trocar o gancho antes de mexer no orçamento.",
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt, err := BuildPrompt(sampleRequest())

	require.NoError(t, err)
	assert.Contains(t, prompt, "Contexto do playbook")
	assert.Contains(t, prompt, "Leads Março")
	assert.Contains(t, prompt, `"cpa": "60.00"`)
	assert.Contains(t, prompt, "cpa_increasing")
	assert.Contains(t, prompt, "test_new_hook")
}

func TestParseExplanation(t *testing.T) {
	tests := []struct {
		name               string
		raw                string
		expectedText       string
		expectedConfidence *float64
	}{
		{
			name:               "json no formato pedido",
			raw:                `{"explanation":"O CPA subiu três dias seguidos.","confidence":0.8}`,
			expectedText:       "O CPA subiu três dias seguidos.",
			expectedConfidence: floatPtr(0.8),
		},
		{
			name:               "json dentro de bloco de código",
			raw:                "```json\n{\"explanation\":\"Troque o criativo.\",\"confidence\":1.4}\n```",
			expectedText:       "Troque o criativo.",
			expectedConfidence: floatPtr(1),
		},
		{
			name:         "texto livre vira a explicação",
			raw:          "  A campanha está em aprendizado.  ",
			expectedText: "A campanha está em aprendizado.",
		},
		{
			name:         "json sem explicação é tratado como texto",
			raw:          `{"confidence":0.5}`,
			expectedText: `{"confidence":0.5}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			explanation := ParseExplanation(tt.raw)

			assert.Equal(t, tt.expectedText, explanation.Text)
			if tt.expectedConfidence == nil {
				assert.Nil(t, explanation.Confidence)
				return
			}
			require.NotNil(t, explanation.Confidence)
			assert.InDelta(t, *tt.expectedConfidence, *explanation.Confidence, 0.0001)
		})
	}
}

func TestDisabled(t *testing.T) {
	explanation, err := Disabled{}.Explain(context.Background(), sampleRequest())

	require.NoError(t, err)
	assert.Equal(t, FallbackText, explanation.Text)
	assert.Nil(t, explanation.Confidence)
}

func TestNewExplainer(t *testing.T) {
	tests := []struct {
		name       string
		cfg        config.AI
		expectErr  bool
		expectNoop bool
	}{
		{name: "sem provedor", cfg: config.AI{Provider: "none"}, expectNoop: true},
		{name: "provedor vazio", cfg: config.AI{}, expectNoop: true},
		{name: "provedor desconhecido", cfg: config.AI{Provider: "cohere"}, expectErr: true},
		{name: "anthropic sem chave", cfg: config.AI{Provider: "anthropic"}, expectErr: true},
		{name: "openai sem chave", cfg: config.AI{Provider: "openai"}, expectErr: true},
		{name: "gemini sem chave", cfg: config.AI{Provider: "gemini"}, expectErr: true},
		{name: "anthropic com chave", cfg: config.AI{Provider: "anthropic", AnthropicAPIKey: "k", AnthropicModel: "m"}},
		{name: "openai com chave", cfg: config.AI{Provider: "OpenAI", OpenAIAPIKey: "k", OpenAIModel: "m", Timeout: time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			explainer, err := NewExplainer(context.Background(), tt.cfg)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, explainer)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, explainer)
			_, isDisabled := explainer.(Disabled)
			assert.Equal(t, tt.expectNoop, isDisabled)
		})
	}
}

func TestAnthropicExplainer(t *testing.T) {
	t.Run("resposta json", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"id":   "msg_test",
				"type": "message",
				"role": "assistant",
				"content": []map[string]any{
					{"type": "text", "text": `{"explanation":"Teste um novo gancho.","confidence":0.7}`},
				},
				"model":       "claude-test",
				"stop_reason": "end_turn",
				"usage":       map[string]any{"input_tokens": 10, "output_tokens": 10},
			})
		}))
		t.Cleanup(server.Close)

		explainer, err := NewAnthropicExplainer("k", "claude-test", 256, option.WithBaseURL(server.URL))
		require.NoError(t, err)

		explanation, err := explainer.Explain(context.Background(), sampleRequest())

		require.NoError(t, err)
		assert.Equal(t, "Teste um novo gancho.", explanation.Text)
		require.NotNil(t, explanation.Confidence)
		assert.InDelta(t, 0.7, *explanation.Confidence, 0.0001)
	})

	t.Run("erro do provedor vira serviço externo", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{
				"type":  "error",
				"error": map[string]any{"type": "invalid_request_error", "message": "bad"},
			})
		}))
		t.Cleanup(server.Close)

		explainer, err := NewAnthropicExplainer("k", "claude-test", 256, option.WithBaseURL(server.URL), option.WithMaxRetries(0))
		require.NoError(t, err)

		_, err = explainer.Explain(context.Background(), sampleRequest())

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrExternalService))
	})
}

func TestOpenAIExplainer(t *testing.T) {
	t.Run("resposta em texto livre", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "gpt-test", body["model"])
			if messages, ok := body["messages"].([]any); assert.True(t, ok) && assert.Len(t, messages, 2) {
				first, _ := messages[0].(map[string]any)
				assert.Equal(t, openai.ChatMessageRoleSystem, first["role"])
			}

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"id":      "chatcmpl-test",
				"object":  "chat.completion",
				"created": 1234567890,
				"model":   "gpt-test",
				"choices": []map[string]any{
					{
						"index":         0,
						"message":       map[string]any{"role": "assistant", "content": "Pause a campanha."},
						"finish_reason": "stop",
					},
				},
			})
		}))
		t.Cleanup(server.Close)

		explainer, err := NewOpenAIExplainer("k", "gpt-test", server.URL+"/v1", 256)
		require.NoError(t, err)

		explanation, err := explainer.Explain(context.Background(), sampleRequest())

		require.NoError(t, err)
		assert.Equal(t, "Pause a campanha.", explanation.Text)
		assert.Nil(t, explanation.Confidence)
	})

	t.Run("sem choices é erro", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{"id": "x", "choices": []any{}})
		}))
		t.Cleanup(server.Close)

		explainer, err := NewOpenAIExplainer("k", "gpt-test", server.URL+"/v1", 256)
		require.NoError(t, err)

		_, err = explainer.Explain(context.Background(), sampleRequest())

		assert.True(t, errors.Is(err, domain.ErrExternalService))
	})
}

func floatPtr(f float64) *float64 {
	return &f
}
