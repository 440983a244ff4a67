package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/campaign-health-api/internal/domain"
	"github.com/vfg2006/campaign-health-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-health-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-health-api/pkg/log"
)

type contextKey string

const (
	ContextKeyClaims contextKey = "claims"
)

// bearerToken extrai o token do cabeçalho Authorization. Devolve "" se ausente ou fora do formato Bearer.
func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return ""
	}
	return strings.TrimSpace(token)
}

// SessionAuth exige um token de sessão válido e guarda as claims no contexto
func SessionAuth(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := bearerToken(r)
			if tokenString == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Bearer token é obrigatório", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				logger := log.ForContext(r.Context()).WithError(err)
				if authenticating.IsTokenError(err) {
					logger.Warn("Token de sessão rejeitado")
				} else {
					logger.Error("Falha ao validar token de sessão")
				}

				code := apiErrors.ErrInvalidToken
				var authErr *authenticating.AuthError
				if errors.As(err, &authErr) && authErr.Code != "" {
					code = authErr.Code
				}
				if apiErrors.StatusFor(code) != http.StatusUnauthorized {
					code = apiErrors.ErrInvalidToken
				}
				apiErrors.WriteError(w, code, "Token inválido", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext devolve as claims gravadas pelo SessionAuth
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyClaims).(*domain.Claims)
	return claims, ok && claims != nil
}
