package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-health-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-health-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-health-api/internal/usecases/reporting"
	"github.com/vfg2006/campaign-health-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Reporting(service reporting.Reporter, authenticator authenticating.Authenticator) []router.Route {
	session := []func(http.Handler) http.Handler{middleware.SessionAuth(authenticator)}

	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: session,
		},
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCampaigns(service),
			Middlewares: session,
		},
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodGet,
			Handler:     GetCampaignDetail(service),
			Middlewares: session,
		},
	}
}

func CronJobs(services CronJobServices, cronSecret string) []router.Route {
	guard := []func(http.Handler) http.Handler{middleware.CronSecret(cronSecret)}

	routes := make([]router.Route, 0, 5)
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		routes = append(routes,
			router.Route{
				Path:        "/v1/cron/sync-data",
				Method:      method,
				Handler:     RunBatch("sync", services.Sync),
				Middlewares: guard,
			},
			router.Route{
				Path:        "/v1/cron/run-analysis",
				Method:      method,
				Handler:     RunBatch("analysis", services.Analysis),
				Middlewares: guard,
			},
		)
	}

	return append(routes, router.Route{
		Path:        "/v1/cron/status",
		Method:      http.MethodGet,
		Handler:     GetCronStatus(services),
		Middlewares: guard,
	})
}
