package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
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

// Dashboard retorna as rotas da página do dashboard: payload completo,
// controle manual de refresh, linha de KPIs e opções de categoria
func Dashboard(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard/refresh",
			Method:  http.MethodPost,
			Handler: RefreshDashboard(service),
		},
		{
			Path:    "/v1/kpis",
			Method:  http.MethodGet,
			Handler: GetKpis(service),
		},
		{
			Path:    "/v1/categories",
			Method:  http.MethodGet,
			Handler: GetCategories(service),
		},
	}
}

// Charts retorna as rotas dos painéis de gráfico individuais
func Charts(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/charts/revenue-by-category",
			Method:  http.MethodGet,
			Handler: GetRevenueByCategory(service),
		},
		{
			Path:    "/v1/charts/sales-trend",
			Method:  http.MethodGet,
			Handler: GetSalesTrend(service),
		},
		{
			Path:    "/v1/charts/channel-performance",
			Method:  http.MethodGet,
			Handler: GetChannelPerformance(service),
		},
		{
			Path:    "/v1/charts/top-sales-reps",
			Method:  http.MethodGet,
			Handler: GetTopSalesReps(service),
		},
		{
			Path:    "/v1/charts/revenue-by-region",
			Method:  http.MethodGet,
			Handler: GetRevenueByRegion(service),
		},
		{
			Path:    "/v1/charts/category-trend",
			Method:  http.MethodGet,
			Handler: GetCategoryTrend(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
