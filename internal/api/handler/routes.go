package handler

import (
	"net/http"

	"github.com/vfg2006/sales-tempo-api/internal/api/handler/router"
	"github.com/vfg2006/sales-tempo-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-tempo-api/pkg/middleware"
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

// Metrics expõe o handler do Prometheus
func Metrics(metricsHandler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metricsHandler,
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/summary/:period",
			Method:      http.MethodGet,
			Handler:     GetSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/compare",
			Method:      http.MethodGet,
			Handler:     GetComparison(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/series",
			Method:      http.MethodGet,
			Handler:     GetDailySeries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/offices",
			Method:      http.MethodGet,
			Handler:     GetOffices(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/offices/summary",
			Method:      http.MethodGet,
			Handler:     GetOfficeSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.HQOnly()},
		},
		{
			Path:        "/v1/diagnose",
			Method:      http.MethodGet,
			Handler:     GetDiagnostics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.HQOnly()},
		},
	}
}

func Tempo(service reporting.Reporter, history AlertHistory) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/tempo/alerts",
			Method:      http.MethodGet,
			Handler:     GetTempoAlerts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tempo/pacing",
			Method:      http.MethodGet,
			Handler:     GetPacing(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tempo/history",
			Method:      http.MethodGet,
			Handler:     GetTempoHistory(service, history),
			Middlewares: []func(http.Handler) http.Handler{middleware.HQOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.HQOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.HQOnly()},
		},
	}
}
