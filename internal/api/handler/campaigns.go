package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/campaign-health-api/internal/domain"
	"github.com/vfg2006/campaign-health-api/internal/usecases/reporting"
	"github.com/vfg2006/campaign-health-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-health-api/pkg/log"
	"github.com/vfg2006/campaign-health-api/pkg/middleware"
)

// readableAccount valida o parâmetro account_id e a restrição de contas da sessão.
// Devolve "" quando a resposta de erro já foi escrita.
func readableAccount(w http.ResponseWriter, r *http.Request) string {
	accountID := strings.TrimSpace(r.URL.Query().Get("account_id"))
	if accountID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "account_id é obrigatório", nil)
		return ""
	}

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok || !claims.CanRead(accountID) {
		log.ForContext(r.Context()).WithFields(log.Fields{
			"account_id":  accountID,
			"operator_id": operatorID(claims),
		}).Warn("reporting: account not allowed for session")
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Sem acesso a esta conta", nil)
		return ""
	}

	return accountID
}

func operatorID(claims *domain.Claims) string {
	if claims == nil {
		return ""
	}
	return claims.OperatorID
}

func GetDashboard(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := readableAccount(w, r)
		if accountID == "" {
			return
		}

		logger := log.ForContext(r.Context()).WithField("account_id", accountID)

		summary, err := service.Dashboard(r.Context(), accountID)
		if err != nil {
			logger.WithError(err).Error("reporting: failed to build dashboard")
			apiErrors.WriteDomainError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	})
}

func ListCampaigns(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := readableAccount(w, r)
		if accountID == "" {
			return
		}

		logger := log.ForContext(r.Context()).WithField("account_id", accountID)

		var status *domain.Severity
		if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
			parsed, ok := domain.ParseSeverity(raw)
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "status deve ser ok, warning ou critical", map[string]string{"status": raw})
				return
			}
			status = &parsed
		}

		campaigns, err := service.ListCampaigns(r.Context(), accountID, status)
		if err != nil {
			logger.WithError(err).Error("reporting: failed to list campaigns")
			apiErrors.WriteDomainError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"campaigns": campaigns,
			"total":     len(campaigns),
		})
	})
}

func GetCampaignDetail(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := readableAccount(w, r)
		if accountID == "" {
			return
		}

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger := log.ForContext(r.Context()).WithFields(log.Fields{
			"account_id":  accountID,
			"campaign_id": campaignID,
		})

		detail, err := service.CampaignDetail(r.Context(), accountID, campaignID)
		if err != nil {
			logger.WithError(err).Warn("reporting: failed to load campaign detail")
			apiErrors.WriteDomainError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, detail)
	})
}
