package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"ad-fanout/internal/adapter/remote"
	"ad-fanout/internal/core/port"
)

const maxBodyBytes = 1 << 20

// Options tune the handler. Zero values fall back to defaults.
type Options struct {
	AllowedOrigins    []string
	DistributeTimeout time.Duration
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the distribution use case and a logger for structured logging.
// Routes are registered on a chi.Router for convenient method handling.
type Handler struct {
	svc               port.DistributionUseCase
	logger            *slog.Logger
	router            chi.Router
	distributeTimeout time.Duration
}

// NewHandler creates a handler with all routes configured under /api/v1.
func NewHandler(svc port.DistributionUseCase, logger *slog.Logger, opts Options) *Handler {
	if opts.DistributeTimeout <= 0 {
		opts.DistributeTimeout = 2 * time.Minute
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	h := &Handler{svc: svc, logger: remote.OrDiscard(logger), distributeTimeout: opts.DistributeTimeout}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/platforms", h.handlePlatforms)
		r.Post("/campaigns/distribute", h.handleDistribute)
		r.Post("/campaigns/{platform}/{campaignID}/status", h.handleStatus)
		r.Post("/campaigns/{platform}/{campaignID}/insights", h.handleInsights)
		r.Post("/reach/{platform}", h.handleReach)
		r.Get("/distributions/orphaned", h.handleOrphaned)
		r.Get("/distributions/{attemptID}", h.handleGetAttempt)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
