package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sarthakenterprise/internal/config"
	"sarthakenterprise/internal/metrics"
	"sarthakenterprise/internal/services"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(cfg *config.Config, healthSvc *services.HealthService, contactSvc *services.ContactService) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(securityHeaders(cfg))
	r.Use(corsHeaders(cfg))
	r.Use(requestLogging)
	r.Use(metrics.PrometheusMiddleware)

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		result := healthSvc.Check()
		status := http.StatusOK
		if result.Status != "healthy" {
			status = http.StatusServiceUnavailable
		}
		respondJSON(w, status, result)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		NewContactHandler(contactSvc).RegisterRoutes(api)
		NewSiteHandler(cfg).RegisterRoutes(api)
	})

	return r
}
