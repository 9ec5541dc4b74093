package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/retail-analytics-api/internal/usecases/querying"
)

// Endpoints expostos pela API, na ordem da documentação do dashboard.
// A lista aparece no /health e na resposta de rota desconhecida.
var endpoints = []string{
	"GET /health",
	"GET /revenue-by-region",
	"GET /top-products",
	"GET /category-performance",
	"GET /customer-summary",
	"GET /age-groups",
	"GET /inventory-risks",
	"GET /monthly-trends",
	"GET /business-insights",
	"GET /sales-by-region",
	"POST /refresh-cache",
}

// HealthResponse descreve o estado do serviço e do snapshot corrente
type HealthResponse struct {
	Status     string         `json:"status"`
	Generation string         `json:"generation,omitempty"`
	LoadedAt   string         `json:"loaded_at,omitempty"`
	CacheSize  map[string]int `json:"cache_size"`
	Endpoints  []string       `json:"endpoints"`
}

// HealthcheckHandler responde o estado do serviço. O serviço está "healthy"
// mesmo antes da primeira carga; o snapshot ausente aparece como cache vazio.
func HealthcheckHandler(service querying.Querier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		health := HealthResponse{
			Status:    "healthy",
			CacheSize: map[string]int{},
			Endpoints: endpoints,
		}

		if snapshot := service.Snapshot(); snapshot != nil {
			health.Generation = snapshot.Generation
			health.LoadedAt = snapshot.LoadedAt.Format(time.RFC3339)
			health.CacheSize = map[string]int{
				"customers": len(snapshot.Records.Customers),
				"products":  len(snapshot.Records.Products),
				"sales":     len(snapshot.Records.Sales),
				"inventory": len(snapshot.Records.Inventory),
			}
		}

		WriteSuccess(w, health)
	})
}

// NotFoundHandler responde rota desconhecida com a lista de endpoints válidos
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusNotFound, Envelope{
			Success: false,
			Message: "Endpoint not found",
			Data: map[string]interface{}{
				"available_endpoints": endpoints,
			},
		})
	})
}
