package handler

import (
	"net/http"

	"github.com/vfg2006/retail-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/querying"
)

func Healthcheck(service querying.Querier) []router.Route {
	return []router.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(service),
		},
	}
}

// Metrics retorna as rotas de consulta de métricas do dashboard
func Metrics(service querying.Querier, topProductsDefaultLimit int) []router.Route {
	return []router.Route{
		{
			Path:    "/revenue-by-region",
			Method:  http.MethodGet,
			Handler: GetRevenueByRegion(service),
		},
		{
			Path:    "/top-products",
			Method:  http.MethodGet,
			Handler: GetTopProducts(service, topProductsDefaultLimit),
		},
		{
			Path:    "/category-performance",
			Method:  http.MethodGet,
			Handler: GetCategoryPerformance(service),
		},
		{
			Path:    "/customer-summary",
			Method:  http.MethodGet,
			Handler: GetCustomerSummary(service),
		},
		{
			Path:    "/age-groups",
			Method:  http.MethodGet,
			Handler: GetAgeGroups(service),
		},
		{
			Path:    "/inventory-risks",
			Method:  http.MethodGet,
			Handler: GetInventoryRisks(service),
		},
		{
			Path:    "/monthly-trends",
			Method:  http.MethodGet,
			Handler: GetMonthlyTrends(service),
		},
		{
			Path:    "/sales-by-region",
			Method:  http.MethodGet,
			Handler: GetSalesByRegion(service),
		},
	}
}

func Insights(service querying.Querier) []router.Route {
	return []router.Route{
		{
			Path:    "/business-insights",
			Method:  http.MethodGet,
			Handler: GetBusinessInsights(service),
		},
	}
}

func Cache(service querying.Querier) []router.Route {
	return []router.Route{
		{
			Path:    "/refresh-cache",
			Method:  http.MethodPost,
			Handler: RefreshCache(service),
		},
	}
}
