package api

import "github.com/rpupo63/portfolio-api-backend/models"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	healthHandler  healthHandler
	profileHandler profileHandler
	projectHandler projectHandler
	searchHandler  searchHandler
	skillHandler   skillHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error     string `json:"error" example:"Internal Server Error"`
	Status    string `json:"status" example:"error"`
	Field     string `json:"field,omitempty" example:"title"`
	Details   string `json:"details,omitempty" example:"Additional error details"`
	RequestID string `json:"request_id,omitempty" example:"portfolio-api/abc123-000001"`
}

// ProjectResponse is a project annotated with its effective skill list, the
// normalized de-duplicated names derived from whichever storage shape the
// project uses.
type ProjectResponse struct {
	models.Project
	EffectiveSkills []string `json:"effective_skills"`
}

// ProjectCollectionResponse represents a paginated project listing
type ProjectCollectionResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int               `json:"total"`
}
