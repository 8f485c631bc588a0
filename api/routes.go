package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the versioned API surface.
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/", handlers.healthHandler.root())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/health", handlers.healthHandler.health())

		// Profile endpoints
		r.Get("/profile", handlers.profileHandler.getProfile())
		r.Put("/profile", handlers.profileHandler.updateProfile())

		// Project endpoints
		r.Get("/projects", handlers.projectHandler.listProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		r.Post("/projects", handlers.projectHandler.createProject())
		r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

		// Search and skill endpoints
		r.Get("/search", handlers.searchHandler.search())
		r.Get("/skills/top", handlers.skillHandler.topSkills())
	})
}
