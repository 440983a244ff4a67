package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-health-api/internal/domain"
	"github.com/vfg2006/campaign-health-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/campaign-health-api/internal/usecases/authenticating/mocks"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestCronSecret(t *testing.T) {
	tests := []struct {
		name         string
		secret       string
		header       string
		expectStatus int
		expectCalled bool
	}{
		{
			name:         "segredo correto",
			secret:       "s3cr3t",
			header:       "Bearer s3cr3t",
			expectStatus: http.StatusOK,
			expectCalled: true,
		},
		{
			name:         "segredo errado",
			secret:       "s3cr3t",
			header:       "Bearer outro",
			expectStatus: http.StatusUnauthorized,
		},
		{
			name:         "sem cabeçalho",
			secret:       "s3cr3t",
			expectStatus: http.StatusUnauthorized,
		},
		{
			name:         "sem prefixo Bearer",
			secret:       "s3cr3t",
			header:       "s3cr3t",
			expectStatus: http.StatusUnauthorized,
		},
		{
			name:         "segredo vazio rejeita tudo",
			secret:       "",
			header:       "Bearer ",
			expectStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := CronSecret(tt.secret)(okHandler(&called))

			req := httptest.NewRequest(http.MethodPost, "/v1/cron/sync-data", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectStatus, rec.Code)
			assert.Equal(t, tt.expectCalled, called)
			if tt.secret != "" {
				assert.NotContains(t, rec.Body.String(), tt.secret)
			}
		})
	}
}

func TestSessionAuth(t *testing.T) {
	t.Run("token válido guarda as claims", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)
		auth.EXPECT().ValidateToken("abc").Return(&domain.Claims{OperatorID: "op-1"}, nil)

		var got *domain.Claims
		handler := SessionAuth(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, _ = ClaimsFromContext(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		req.Header.Set("Authorization", "Bearer abc")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		require.NotNil(t, got)
		assert.Equal(t, "op-1", got.OperatorID)
	})

	t.Run("sem token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)

		called := false
		rec := httptest.NewRecorder()
		SessionAuth(auth)(okHandler(&called)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
	})

	t.Run("token expirado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)
		auth.EXPECT().ValidateToken("velho").Return(nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, "AUTH_007", ""))

		called := false
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		req.Header.Set("Authorization", "Bearer velho")
		rec := httptest.NewRecorder()
		SessionAuth(auth)(okHandler(&called)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "AUTH_007")
		assert.False(t, called)
	})
}

func TestCors(t *testing.T) {
	called := false
	handler := Cors([]string{"http://localhost:3000", " "})(okHandler(&called))

	t.Run("origem liberada", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight não chega ao handler", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodOptions, "/v1/dashboard", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, called)
	})
}

func TestLoggingMiddleware_SetsCorrelationHeader(t *testing.T) {
	called := false
	rec := httptest.NewRecorder()

	LoggingMiddleware()(okHandler(&called)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.True(t, called)
	assert.NotEmpty(t, rec.Header().Get(CorrelationIDHeader))
}

func TestTraceID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	assert.Empty(t, traceID(req))

	spanContext := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10},
		SpanID:  trace.SpanID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
	})
	req = req.WithContext(trace.ContextWithSpanContext(req.Context(), spanContext))

	assert.Equal(t, "0102030405060708090a0b0c0d0e0f10", traceID(req))
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}

func TestTracing_PassesThrough(t *testing.T) {
	called := false
	rec := httptest.NewRecorder()

	Tracing()(okHandler(&called)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}
