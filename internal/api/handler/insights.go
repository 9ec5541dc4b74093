package handler

import (
	"net/http"

	"github.com/vfg2006/retail-analytics-api/internal/usecases/querying"
	"github.com/vfg2006/retail-analytics-api/pkg/log"
	"github.com/vfg2006/retail-analytics-api/pkg/utils"
)

// GetBusinessInsights retorna os insights do snapshot. Aceita filtro por
// substring de categoria (case-insensitive) e corte por limit; categoria sem
// correspondência resulta em lista vazia, não em falha.
func GetBusinessInsights(service querying.Querier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get("category")
		limit := utils.ParseLimit(r.URL.Query().Get("limit"))

		insights, err := service.BusinessInsights(category, limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("insights: business insights unavailable")
			WriteFailure(w, err.Error())
			return
		}

		WriteSuccess(w, insights)
	})
}
