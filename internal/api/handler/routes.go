package handler

import (
	"net/http"

	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/infrastructure/repository"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/api/handler/router"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/usecases/monitoring"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/usecases/planning"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Plans(planner planning.Planner, monitor monitoring.Monitor) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/plans",
			Method:      http.MethodPost,
			Handler:     CreatePlan(planner),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/plans",
			Method:      http.MethodGet,
			Handler:     ListPlans(planner),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/plans/:id",
			Method:      http.MethodGet,
			Handler:     GetPlan(planner),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/plans/:id/refine",
			Method:      http.MethodPost,
			Handler:     RefinePlan(planner),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/plans/:id/approve",
			Method:      http.MethodPost,
			Handler:     ApprovePlan(planner),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/plans/:id/monitor",
			Method:      http.MethodPost,
			Handler:     MonitorPlan(monitor),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func Metrics(planner planning.Planner, metricRepo repository.MetricRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/metrics",
			Method:      http.MethodGet,
			Handler:     ListMetrics(metricRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/plans/:id/metrics",
			Method:      http.MethodGet,
			Handler:     GetPlanMetrics(planner, metricRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(agent MonitoringScheduler) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/" + CronJobTypeMonitoring + "/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(agent),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(agent),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}
