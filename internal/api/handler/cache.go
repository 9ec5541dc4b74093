package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/retail-analytics-api/internal/usecases/querying"
	"github.com/vfg2006/retail-analytics-api/pkg/log"
)

// RefreshCacheResponse confirma a publicação de um snapshot novo
type RefreshCacheResponse struct {
	Generation string `json:"generation"`
	LoadedAt   string `json:"loaded_at"`
	Customers  int    `json:"customers"`
	Products   int    `json:"products"`
	Sales      int    `json:"sales"`
	Inventory  int    `json:"inventory"`
}

// RefreshCache dispara uma recarga síncrona do snapshot. Leituras em andamento
// continuam no snapshot anterior até a troca atômica; falha de carga mantém o
// snapshot anterior e responde success=false.
func RefreshCache(service querying.Querier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("cache: manual refresh requested")

		snapshot, err := service.RefreshCache(r.Context())
		if err != nil {
			logger.WithError(err).Error("cache: refresh failed, previous snapshot kept")
			WriteFailure(w, err.Error())
			return
		}

		logger.WithField("generation", snapshot.Generation).Info("cache: refresh completed")

		WriteSuccess(w, RefreshCacheResponse{
			Generation: snapshot.Generation,
			LoadedAt:   snapshot.LoadedAt.Format(time.RFC3339),
			Customers:  len(snapshot.Records.Customers),
			Products:   len(snapshot.Records.Products),
			Sales:      len(snapshot.Records.Sales),
			Inventory:  len(snapshot.Records.Inventory),
		})
	})
}
