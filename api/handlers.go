package api

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rpupo63/portfolio-api-backend/database"
	"github.com/rpupo63/portfolio-api-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, c map[string]string, startupTime time.Time) *routeHandlers {
	validate := validator.New()
	catalog := services.NewCatalog(db)

	return &routeHandlers{
		healthHandler:  newHealthHandler(startupTime),
		profileHandler: newProfileHandler(db.ProfileRepo(), c, validate),
		projectHandler: newProjectHandler(db.ProjectRepo(), catalog, validate),
		searchHandler:  newSearchHandler(catalog),
		skillHandler:   newSkillHandler(catalog),
	}
}
