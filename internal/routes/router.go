package routes

import (
	"context"
	"net/http"
	"time"

	"flightline/opsdeck/internal/api"
	"flightline/opsdeck/internal/config"
	"flightline/opsdeck/internal/db"
	"flightline/opsdeck/internal/jobs"
	"flightline/opsdeck/internal/logging"
	"flightline/opsdeck/internal/metrics"
	"flightline/opsdeck/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func RegisterRoutes(cfg *config.Config, upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// Initialize metrics registry
	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:8081"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-API-Key", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with metrics and logging middleware")
	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, upSince))

	// Initialize dependencies using DI pattern
	deps, err := api.InitDependencies(cfg, metricsReg)
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	// Initialize handlers with dependencies
	handlers := api.NewHandlers(deps)

	// Dashboard token exchange is the one unauthenticated surface besides
	// the health check; the token itself is the credential.
	r.Get("/dashboard", handlers.DashboardTokenLoginHandler())

	// Setup scheduled jobs
	statusJob := jobs.InitializeJobs(
		context.Background(),
		deps.Repo.Route,
		deps.Repo.Aircraft,
		metricsReg,
		time.Duration(cfg.Jobs.StatusRollIntervalMinutes)*time.Minute,
	)

	// Initialize jobs handler for manual triggering
	jobsHandler := api.NewJobsHandler(statusJob)

	// Register API routes
	RegisterAPIRoutes(r, deps, handlers, jobsHandler)

	return r
}
