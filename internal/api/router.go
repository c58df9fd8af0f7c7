package api

import (
	"net/http"

	mw "github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/api/middleware"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/api/response"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/metrics"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// ResourceHandlers are the six routes every entity exposes, plus an optional
// slug lookup mounted only when set.
type ResourceHandlers struct {
	Validate http.HandlerFunc
	Create   http.HandlerFunc
	List     http.HandlerFunc
	Get      http.HandlerFunc
	Update   http.HandlerFunc
	Delete   http.HandlerFunc

	GetBySlug http.HandlerFunc
}

// Dependencies holds all handler and middleware dependencies for the router.
type Dependencies struct {
	RateLimit *mw.RateLimit
	Metrics   *metrics.Collectors

	HealthHandler http.HandlerFunc
	Jobs          ResourceHandlers
	AdmitCards    ResourceHandlers
}

// NewRouter builds the Chi router with middleware stack and all routes.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RealIP)
	r.Use(mw.RequestID)
	r.Use(mw.Logger)
	r.Use(mw.Metrics(deps.Metrics))
	r.Use(mw.Recovery)

	r.Get("/api/v1/health", orNotImplemented(deps.HealthHandler))
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	r.Group(func(r chi.Router) {
		if deps.RateLimit != nil {
			r.Use(deps.RateLimit.Limit)
		}

		r.Route("/api/v1/jobs", func(r chi.Router) {
			mountResource(r, deps.Jobs)
		})
		r.Route("/api/v1/admit-cards", func(r chi.Router) {
			mountResource(r, deps.AdmitCards)
		})
	})

	return r
}

func mountResource(r chi.Router, h ResourceHandlers) {
	r.Post("/validate", orNotImplemented(h.Validate))
	r.Post("/", orNotImplemented(h.Create))
	r.Get("/", orNotImplemented(h.List))
	if h.GetBySlug != nil {
		r.Get("/by-slug/{slug}", h.GetBySlug)
	}
	r.Get("/{id}", orNotImplemented(h.Get))
	r.Put("/{id}", orNotImplemented(h.Update))
	r.Delete("/{id}", orNotImplemented(h.Delete))
}

// orNotImplemented returns the handler if non-nil, or a 501 placeholder.
func orNotImplemented(h http.HandlerFunc) http.HandlerFunc {
	if h != nil {
		return h
	}
	return func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusNotImplemented, "NOT_IMPLEMENTED", "Endpoint not yet implemented", nil)
	}
}
