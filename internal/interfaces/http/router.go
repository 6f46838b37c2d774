// Package http assembles the HTTP interface: route tree, middleware chain,
// and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/clauselens/clauselens/internal/infrastructure/monitoring/prometheus"
	"github.com/clauselens/clauselens/internal/interfaces/http/handlers"
)

// RouterConfig aggregates the handler and middleware dependencies required
// to construct the complete route tree. Nil entries are skipped.
type RouterConfig struct {
	AnalysisHandler *handlers.AnalysisHandler
	ClauseHandler   *handlers.ClauseHandler
	HealthHandler   *handlers.HealthHandler

	CORS      func(http.Handler) http.Handler
	Logging   func(http.Handler) http.Handler
	RateLimit func(http.Handler) http.Handler
	Metrics   func(http.Handler) http.Handler

	MetricsCollector prometheus.MetricsCollector
}

// NewRouter constructs the HTTP route tree: public probes, the metrics
// scrape endpoint, and the /api/v1 resource groups.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if cfg.CORS != nil {
		r.Use(cfg.CORS)
	}
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics)
	}
	if cfg.Logging != nil {
		r.Use(cfg.Logging)
	}
	if cfg.RateLimit != nil {
		r.Use(cfg.RateLimit)
	}

	if cfg.HealthHandler != nil {
		r.Get("/healthz", cfg.HealthHandler.Liveness)
		r.Get("/readyz", cfg.HealthHandler.Readiness)
	}
	if cfg.MetricsCollector != nil {
		r.Handle("/metrics", cfg.MetricsCollector.Handler())
	}

	r.Route("/api/v1", func(api chi.Router) {
		registerAnalysisRoutes(api, cfg.AnalysisHandler)
		registerClauseRoutes(api, cfg.ClauseHandler)
	})

	return r
}

// registerAnalysisRoutes mounts document analysis endpoints under /analyses.
func registerAnalysisRoutes(r chi.Router, h *handlers.AnalysisHandler) {
	if h == nil {
		return
	}
	r.Route("/analyses", func(ar chi.Router) {
		ar.Post("/", h.Create)
		ar.Get("/", h.List)

		ar.Route("/{analysisID}", func(item chi.Router) {
			item.Get("/", h.Get)
			item.Delete("/", h.Delete)
		})
	})
}

// registerClauseRoutes mounts single-clause endpoints under /clauses.
func registerClauseRoutes(r chi.Router, h *handlers.ClauseHandler) {
	if h == nil {
		return
	}
	r.Route("/clauses", func(cr chi.Router) {
		cr.Post("/assess", h.Assess)
		cr.Post("/ambiguity", h.Ambiguity)
		cr.Post("/rewrite", h.Rewrite)
	})
}
