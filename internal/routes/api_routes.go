package routes

import (
	"flightline/opsdeck/internal/api"
	"flightline/opsdeck/internal/middleware"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies, handlers *api.Handlers, jobsHandler *api.JobsHandler) {

	limiter := middleware.NewRateLimiter(rate.Limit(5), 10)

	// API v1 routes
	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(limiter.Handler)
		// global: all routes must be authenticated (API key or presigned token)
		v1.Use(middleware.AuthMiddleware(deps.Repo.User, deps.Repo.Keys, deps.Services.URLSigner))

		// Any authenticated user can read the fleet, the schedule and the
		// timeline.
		v1.Get("/fleet", api.ListFleetHandler(deps.Services.Fleet))
		v1.Get("/fleet/{aircraft_id}", api.GetAircraftHandler(deps.Services.Fleet))
		v1.Get("/routes", api.ListRoutesHandler(deps.Services.Schedule))
		v1.Get("/routes/{route_id}", api.GetRouteHandler(deps.Services.Schedule))
		v1.Get("/timeline", api.TimelineHandler(deps.Services.Timeline))

		v1.Post("/auth/generate-dashboard-link", handlers.GenerateDashboardLinkHandler())

		// Planner tier (planner + controller + admin): create and edit
		v1.Group(func(planner chi.Router) {
			planner.Use(middleware.IsPlannerMiddleware())

			planner.Post("/fleet", api.CreateAircraftHandler(deps.Services.Fleet))
			planner.Put("/fleet/{aircraft_id}", api.UpdateAircraftHandler(deps.Services.Fleet))
			planner.Post("/routes", api.CreateRouteHandler(deps.Services.Schedule))
			planner.Put("/routes/{route_id}", api.UpdateRouteHandler(deps.Services.Schedule))

			// Admin-only tier: deletes and job management
			planner.Group(func(admin chi.Router) {
				admin.Use(middleware.IsAdminMiddleware())

				admin.Delete("/fleet/{aircraft_id}", api.DeleteAircraftHandler(deps.Services.Fleet))
				admin.Delete("/routes/{route_id}", api.DeleteRouteHandler(deps.Services.Schedule))

				admin.Post("/admin/jobs/roll-status", jobsHandler.TriggerStatusRoll())
				admin.Get("/admin/jobs/status", jobsHandler.GetJobStatus())
			})
		})
	})
}
