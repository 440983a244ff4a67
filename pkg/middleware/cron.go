package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/vfg2006/campaign-health-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-health-api/pkg/log"
)

// CronSecret protege os gatilhos de lote com o segredo compartilhado.
// Com o segredo vazio toda chamada é rejeitada.
func CronSecret(secret string) func(http.Handler) http.Handler {
	expected := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := []byte(bearerToken(r))

			if len(expected) == 0 || subtle.ConstantTimeCompare(provided, expected) != 1 {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"path":   r.URL.Path,
					"method": r.Method,
				}).Warn("Gatilho de cron rejeitado")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
