package metaclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-health-api/internal/config"
	"github.com/vfg2006/campaign-health-api/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *MetaClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Meta.URL = server.URL
	cfg.Meta.RequestTimeout = 2 * time.Second
	cfg.Meta.PageLimit = 2

	return NewClient(cfg).(*MetaClient)
}

func TestGetCampaignsByAccountID_FollowsPaging(t *testing.T) {
	var serverURL string
	calls := 0

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "token-123", r.URL.Query().Get("access_token"))

		if r.URL.Query().Get("after") == "" {
			assert.Equal(t, "/act_42/campaigns", r.URL.Path)
			assert.Equal(t, "2", r.URL.Query().Get("limit"))
			fmt.Fprintf(w, `{"data":[{"id":"c1","name":"Campanha 1","status":"ACTIVE"}],"paging":{"next":"%s/act_42/campaigns?after=abc&access_token=token-123"}}`, serverURL)
			return
		}

		fmt.Fprint(w, `{"data":[{"id":"c2","name":"Campanha 2","status":"PAUSED","daily_budget":"5000"}],"paging":{}}`)
	})
	serverURL = client.Cfg.Meta.URL

	campaigns, err := client.GetCampaignsByAccountID(context.Background(), "token-123", "42")

	require.NoError(t, err)
	require.Len(t, campaigns, 2)
	assert.Equal(t, "c1", campaigns[0].ID)
	assert.Equal(t, "c2", campaigns[1].ID)
	assert.Equal(t, "5000", campaigns[1].DailyBudget)
	assert.Equal(t, 2, calls)
}

func TestGetInsightsByID(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		body        string
		status      int
		expectNil   bool
		expectErr   error
		expectSpend string
	}{
		{
			name:        "retorna a linha do dia",
			body:        `{"data":[{"spend":"120.50","impressions":"1000","actions":[{"action_type":"lead","value":"3"}]}]}`,
			status:      http.StatusOK,
			expectSpend: "120.50",
		},
		{
			name:      "data vazio significa sem entrega",
			body:      `{"data":[]}`,
			status:    http.StatusOK,
			expectNil: true,
		},
		{
			name:      "token expirado vira não autorizado",
			body:      `{"error":{"message":"Error validating access token","type":"OAuthException","code":190,"fbtrace_id":"x"}}`,
			status:    http.StatusBadRequest,
			expectErr: domain.ErrUnauthorized,
		},
		{
			name:      "erro genérico vira serviço externo",
			body:      `{"error":{"message":"Unsupported get request","type":"GraphMethodException","code":100}}`,
			status:    http.StatusBadRequest,
			expectErr: domain.ErrExternalService,
		},
		{
			name:      "corpo não JSON vira serviço externo",
			body:      `<html>bad gateway</html>`,
			status:    http.StatusBadGateway,
			expectErr: domain.ErrExternalService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/ad-1/insights", r.URL.Path)
				assert.Equal(t, `{"since":"2024-03-10","until":"2024-03-10"}`, r.URL.Query().Get("time_range"))
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			})

			insight, err := client.GetInsightsByID(context.Background(), "secret-access-token-123", "ad-1", day)

			if tt.expectErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectErr))
				assert.NotContains(t, err.Error(), "secret-access-token-123")
				return
			}

			require.NoError(t, err)
			if tt.expectNil {
				assert.Nil(t, insight)
				return
			}
			require.NotNil(t, insight)
			assert.Equal(t, tt.expectSpend, insight.Spend)
		})
	}
}

func TestGet_TransportErrorDoesNotLeakToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.Meta.URL = "http://127.0.0.1:1"
	cfg.Meta.RequestTimeout = time.Second
	client := NewClient(cfg)

	_, err := client.GetCreativeByID(context.Background(), "super-secret-token", "cr-1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrExternalService))
	assert.False(t, strings.Contains(err.Error(), "super-secret-token"))
}

func TestCheckTokenValidity(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		expected  bool
		expectErr bool
	}{
		{
			name:     "token válido",
			status:   http.StatusOK,
			body:     `{"id":"1","name":"Operador"}`,
			expected: true,
		},
		{
			name:     "token expirado",
			status:   http.StatusUnauthorized,
			body:     `{"error":{"message":"Session has expired","type":"OAuthException","code":190,"error_subcode":463}}`,
			expected: false,
		},
		{
			name:      "falha do servidor",
			status:    http.StatusInternalServerError,
			body:      `{"error":{"message":"Temporary","type":"OAuthException","code":2}}`,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/me", r.URL.Path)
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			})

			valid, err := client.CheckTokenValidity(context.Background(), "tok")

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, valid)
		})
	}
}

func TestCheckTokenValidity_EmptyToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("não deveria chamar a API")
	})

	valid, err := client.CheckTokenValidity(context.Background(), "")

	assert.NoError(t, err)
	assert.False(t, valid)
}
