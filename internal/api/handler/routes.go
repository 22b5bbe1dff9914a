package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aideveloperindia/KDSMS-sub000/infrastructure/repository"
	"github.com/aideveloperindia/KDSMS-sub000/internal/api/handler/router"
	"github.com/aideveloperindia/KDSMS-sub000/internal/scheduler"
	"github.com/aideveloperindia/KDSMS-sub000/internal/usecases/aggregating"
	"github.com/aideveloperindia/KDSMS-sub000/internal/usecases/authenticating"
	"github.com/aideveloperindia/KDSMS-sub000/internal/usecases/remarking"
	"github.com/aideveloperindia/KDSMS-sub000/internal/usecases/selling"
	"github.com/aideveloperindia/KDSMS-sub000/pkg/middleware"
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

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Users(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagementOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagementOnly()},
		},
	}
}

func Sales(service selling.SaleService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales",
			Method:      http.MethodPost,
			Handler:     SubmitSale(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AgentOnly()},
		},
		{
			Path:        "/v1/sales",
			Method:      http.MethodGet,
			Handler:     QuerySales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Remarks(service remarking.RemarkService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales/:id/agent-remark",
			Method:      http.MethodPut,
			Handler:     AddAgentRemark(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AgentOnly()},
		},
		{
			Path:        "/v1/sales/:id/executive-remark",
			Method:      http.MethodPut,
			Handler:     AddExecutiveRemark(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ExecutiveOnly()},
		},
		{
			Path:        "/v1/remarks/daily",
			Method:      http.MethodPut,
			Handler:     UpsertDailyRemark(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ExecutiveOnly()},
		},
		{
			Path:        "/v1/remarks/daily",
			Method:      http.MethodGet,
			Handler:     ListDailyRemarks(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Reports(service aggregating.Aggregator, summaryRepo repository.ZoneSummaryRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/aggregate",
			Method:      http.MethodGet,
			Handler:     GetAggregateReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/summaries",
			Method:      http.MethodGet,
			Handler:     ListZoneSummaries(summaryRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.SupervisorsOnly()},
		},
	}
}

func CronJobs(service *scheduler.DailySummarySyncService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/summary/run",
			Method:      http.MethodPost,
			Handler:     RunSummarySync(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagementOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagementOnly()},
		},
	}
}
