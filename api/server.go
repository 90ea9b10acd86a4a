// ABOUTME: Huma API server configuration and setup
// ABOUTME: Wires chi, CORS, feature flags, request logging and rate limiting under OpenAPI docs

package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"news-aggregator-api/api/handlers"
	"news-aggregator-api/api/middleware"
	"news-aggregator-api/core/interfaces"
	"news-aggregator-api/pkg/featureflags"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger

	// Flags is attached to every request context; nil uses the defaults
	Flags featureflags.Manager

	// RateLimiter is applied while the rate limit flag is on; nil disables limiting
	RateLimiter *middleware.RateLimiter
}

// NewAPI creates and configures a new Huma API instance without middleware
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(APIConfig{})
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS first so preflight requests never hit the limiter
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "Retry-After"},
		MaxAge:         300,
	}))

	if cfg.Flags != nil {
		router.Use(middleware.FeatureFlagsMiddleware(cfg.Flags))
	}

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimiter != nil {
		router.Use(middleware.RateLimitMiddleware(cfg.RateLimiter))
	}

	config := huma.DefaultConfig(handlers.ServiceName, handlers.ServiceVersion)
	config.Info.Description = "Aggregates gaming news, release notes and videos into paginated card listings"

	// Response bodies keep the exact envelope shape clients expect, without a $schema link
	config.CreateHooks = nil

	api := humachi.New(router, config)

	// The OpenAPI spec is available at /openapi.json and the docs UI at /docs
	return api, router
}
