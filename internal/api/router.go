// Package api provides the HTTP API for EcoRoute.
package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/ecoroute/ecoroute/internal/airquality"
	"github.com/ecoroute/ecoroute/internal/api/handler"
	"github.com/ecoroute/ecoroute/internal/api/middleware"
	"github.com/ecoroute/ecoroute/internal/auth"
	"github.com/ecoroute/ecoroute/internal/geocoding"
	"github.com/ecoroute/ecoroute/internal/scoring"
	"github.com/ecoroute/ecoroute/internal/weather"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version     string
	BuildTime   string
	Logger      zerolog.Logger
	ServiceName string
	Metrics     *middleware.Metrics

	AuthService     *auth.Service
	Sessions        *auth.SessionService
	ScoringService  *scoring.Service
	AreaService     *airquality.Service
	WeatherService  *weather.Service
	GeocodeProvider geocoding.Provider

	// SecureCookies controls the Secure flag on session cookies.
	SecureCookies bool

	// Stream intervals, overridable in tests. Zero uses the defaults.
	AreaStreamInterval    time.Duration
	WeatherStreamInterval time.Duration
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Set default service name if not provided
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "ecoroute-api"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS)           // TLS enforcement (enabled via REQUIRE_TLS=true)
	r.Use(middleware.ContentTypeJSON)      // Default JSON content type, streams override
	r.Use(middleware.RequireJSON)          // JSON bodies on mutating requests

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime)
	authHandler := handler.NewAuthHandler(cfg.AuthService, cfg.SecureCookies)
	routeHandler := handler.NewRouteHandler(cfg.ScoringService)
	areasHandler := handler.NewAreasHandler(cfg.AreaService, cfg.AreaStreamInterval, cfg.Logger)
	weatherHandler := handler.NewWeatherHandler(cfg.WeatherService, cfg.WeatherStreamInterval, cfg.Logger)
	geocodeHandler := handler.NewGeocodeHandler(cfg.GeocodeProvider)

	// Create session middleware
	sessionMiddleware := middleware.Session(cfg.Sessions)

	// Create rate limit middleware for different endpoint categories
	authRateLimit := middleware.RateLimitByIP(middleware.AuthRateLimit)           // 10 req/min
	expensiveRateLimit := middleware.RateLimitByIP(middleware.ExpensiveRateLimit) // 30 req/min
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)   // 100 req/min

	r.Route("/api", func(r chi.Router) {
		// Ops endpoint (public)
		r.Get("/health", opsHandler.HealthCheck)

		// Auth endpoints - strict rate limiting
		r.Group(func(r chi.Router) {
			r.Use(authRateLimit) // 10 requests per minute per IP
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
		})

		// Profile requires an authenticated session
		r.With(sessionMiddleware, middleware.RateLimitByUser(middleware.StandardRateLimit)).
			Get("/profile", authHandler.Profile)

		// Route comparison - expensive compute, strict rate limiting
		r.With(expensiveRateLimit).Get("/route", routeHandler.CompareRoutes)

		// Data passthrough endpoints - standard rate limiting
		r.Group(func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/geocode", geocodeHandler.Geocode)
			r.Get("/areas-metrics", areasHandler.AreaMetrics)
			r.Get("/weather", weatherHandler.Weather)
		})

		// Streams are long-lived; no per-request rate limiting beyond
		// connection setup.
		r.Get("/aqi-stream", areasHandler.AQIStream)
		r.Get("/weather-stream", weatherHandler.WeatherStream)
	})

	return r
}
