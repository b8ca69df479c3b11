// Package router configures HTTP routes for the scaler's HTTP server.
//
// The scaler exposes an auxiliary HTTP server (separate from the main gRPC
// service) that provides health checks, Prometheus metrics, and a debug view
// of the cached load snapshot.
//
// Routes configured:
//   - GET /healthz - Health check endpoint (returns 200 OK)
//   - GET /metrics - Prometheus metrics endpoint
//   - GET /snapshot - Current load snapshot as JSON (404 before first refresh)
package router

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fleetwise/loadscaler/pkg/httpx"
	"github.com/fleetwise/loadscaler/pkg/snapshot"
)

// SetupRoutes configures HTTP routes for the scaler
func SetupRoutes(logger *slog.Logger, store *snapshot.Store) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("/healthz", httpx.HealthHandler())

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/snapshot", func(w http.ResponseWriter, r *http.Request) {
		snap, ok := store.Read()
		if !ok {
			httpx.WriteErrorMessage(w, http.StatusNotFound, "no snapshot collected yet")
			return
		}
		if err := httpx.WriteJSON(w, http.StatusOK, snap); err != nil {
			logger.Error("failed to write snapshot response", "error", err)
		}
	})

	return mux
}
