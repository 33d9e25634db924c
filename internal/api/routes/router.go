package routes

import (
	"net/http"

	"github.com/zatekoja/nearbycare/internal/api/handlers"
	"github.com/zatekoja/nearbycare/internal/api/middleware"
	"github.com/zatekoja/nearbycare/internal/domain/providers"
	"github.com/zatekoja/nearbycare/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	nearbyHandler *handlers.NearbyHandler

	rateLimiter providers.RateLimiter
	metrics     *observability.Metrics
}

// NewRouter creates a new router. rateLimiter may be nil to disable throttling.
func NewRouter(
	nearbyHandler *handlers.NearbyHandler,
	rateLimiter providers.RateLimiter,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:           http.NewServeMux(),
		nearbyHandler: nearbyHandler,
		rateLimiter:   rateLimiter,
		metrics:       metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Nearby care endpoints
	r.mux.HandleFunc("GET /api/nearby", r.nearbyHandler.FindNearby)
	r.mux.HandleFunc("GET /api/hospitals", r.nearbyHandler.FindNearby)

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.RateLimitMiddleware(r.rateLimiter, r.metrics)(handler)
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.RequestIDMiddleware(handler)

	// CORS wraps everything so rejected and preflight responses carry headers too
	handler = middleware.CORSMiddleware(handler)

	return handler
}
