package handler

import (
	"net/http"

	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/querying"
	"github.com/vfg2006/retail-analytics-api/pkg/log"
	"github.com/vfg2006/retail-analytics-api/pkg/utils"
)

// parseFilters monta os filtros da consulta a partir da query string.
// Parâmetro inválido (data fora do formato ISO, limit não numérico) é
// ignorado com um aviso, nunca rejeitado.
func parseFilters(r *http.Request) *domain.MetricFilters {
	logger := log.ForContext(r.Context())
	query := r.URL.Query()

	filters := &domain.MetricFilters{
		Region:   query.Get("region"),
		Category: query.Get("category"),
		Limit:    utils.ParseLimit(query.Get("limit")),
	}

	if raw := query.Get("start_date"); raw != "" {
		if utils.IsISODate(raw) {
			filters.StartDate = raw
		} else {
			logger.WithField("start_date", raw).Warn("metrics: invalid start_date ignored")
		}
	}

	if raw := query.Get("end_date"); raw != "" {
		if utils.IsISODate(raw) {
			filters.EndDate = raw
		} else {
			logger.WithField("end_date", raw).Warn("metrics: invalid end_date ignored")
		}
	}

	return filters
}

func GetRevenueByRegion(service querying.Querier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		revenue, err := service.RevenueByRegion(parseFilters(r))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("metrics: revenue by region unavailable")
			WriteFailure(w, err.Error())
			return
		}

		WriteSuccess(w, revenue)
	})
}

// GetTopProducts aplica o limit padrão quando o parâmetro está ausente ou
// foi ignorado por inválido
func GetTopProducts(service querying.Querier, defaultLimit int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters := parseFilters(r)
		if filters.Limit == 0 {
			filters.Limit = defaultLimit
		}

		products, err := service.TopProducts(filters)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("metrics: top products unavailable")
			WriteFailure(w, err.Error())
			return
		}

		WriteSuccess(w, products)
	})
}

func GetCategoryPerformance(service querying.Querier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		performance, err := service.CategoryPerformance(parseFilters(r))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("metrics: category performance unavailable")
			WriteFailure(w, err.Error())
			return
		}

		WriteSuccess(w, performance)
	})
}

func GetCustomerSummary(service querying.Querier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.CustomerSummary(parseFilters(r))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("metrics: customer summary unavailable")
			WriteFailure(w, err.Error())
			return
		}

		WriteSuccess(w, summary)
	})
}

func GetAgeGroups(service querying.Querier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		groups, err := service.AgeGroups(parseFilters(r))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("metrics: age groups unavailable")
			WriteFailure(w, err.Error())
			return
		}

		WriteSuccess(w, groups)
	})
}

func GetInventoryRisks(service querying.Querier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		risks, err := service.InventoryRisks()
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("metrics: inventory risks unavailable")
			WriteFailure(w, err.Error())
			return
		}

		WriteSuccess(w, risks)
	})
}

func GetMonthlyTrends(service querying.Querier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		trends, err := service.MonthlyTrends(parseFilters(r))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("metrics: monthly trends unavailable")
			WriteFailure(w, err.Error())
			return
		}

		WriteSuccess(w, trends)
	})
}

func GetSalesByRegion(service querying.Querier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chart, err := service.SalesByRegion(parseFilters(r))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("metrics: sales by region unavailable")
			WriteFailure(w, err.Error())
			return
		}

		WriteSuccess(w, chart)
	})
}
