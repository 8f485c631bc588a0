package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-api-backend/database"
	"github.com/rpupo63/portfolio-api-backend/errs"
	"github.com/rpupo63/portfolio-api-backend/models"
	"github.com/rpupo63/portfolio-api-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo database.ProjectRepo
	catalog     services.Catalog
	validate    *validator.Validate
}

func newProjectHandler(projectRepo database.ProjectRepo, catalog services.Catalog, validate *validator.Validate) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		catalog:     catalog,
		validate:    validate,
	}
}

// skillInput accepts either a bare name string or an object carrying an
// optional proficiency level.
type skillInput struct {
	Name        string  `json:"name"`
	Proficiency *string `json:"proficiency,omitempty"`
}

func (s *skillInput) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		s.Name = name
		s.Proficiency = nil
		return nil
	}

	type skillObject skillInput
	var obj skillObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*s = skillInput(obj)
	return nil
}

type createProjectRequest struct {
	Title       string         `json:"title" validate:"required,max=200"`
	Description string         `json:"description"`
	GithubURL   *string        `json:"github_url,omitempty" validate:"omitempty,url"`
	DemoURL     *string        `json:"demo_url,omitempty" validate:"omitempty,url"`
	ImageURL    *string        `json:"image_url,omitempty" validate:"omitempty,url"`
	Featured    bool           `json:"featured"`
	Status      *string        `json:"status,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Skills      []skillInput   `json:"skills,omitempty"`
	ProfileID   *uuid.UUID     `json:"profile_id,omitempty"`
}

type updateProjectRequest struct {
	Title       *string        `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string        `json:"description,omitempty"`
	GithubURL   *string        `json:"github_url,omitempty" validate:"omitempty,url"`
	DemoURL     *string        `json:"demo_url,omitempty" validate:"omitempty,url"`
	ImageURL    *string        `json:"image_url,omitempty" validate:"omitempty,url"`
	Featured    *bool          `json:"featured,omitempty"`
	Status      *string        `json:"status,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Skills      *[]skillInput  `json:"skills,omitempty"`
	ProfileID   *uuid.UUID     `json:"profile_id,omitempty"`
}

func projectResponse(project *models.Project) ProjectResponse {
	return ProjectResponse{
		Project:         *project,
		EffectiveSkills: services.EffectiveSkills(project),
	}
}

// listProjects retrieves projects with optional filters and pagination
// @Summary List projects
// @Description Lists projects with optional skill/status/featured filters and skip/limit pagination
// @Tags Projects
// @Produce json
// @Param skill query string false "Skill filter (case-insensitive substring)"
// @Param status query string false "Status filter" Enums(draft, active, completed, archived)
// @Param featured query bool false "Featured filter"
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Max rows to return"
// @Success 200 {object} ProjectCollectionResponse "Projects"
// @Failure 422 {object} ErrorResponse "Validation error"
// @Router /projects [get]
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()

		var query database.ProjectQuery
		if raw := params.Get("status"); raw != "" {
			status, err := models.ParseProjectStatus(raw)
			if err != nil {
				h.responder.WriteError(w, r, errs.NewInvalidStatusError(raw))
				return
			}
			query.Status = &status
		}
		if raw := params.Get("featured"); raw != "" {
			featured, err := strconv.ParseBool(raw)
			if err != nil {
				h.responder.WriteError(w, r, errs.NewValidationError("featured", "must be a boolean"))
				return
			}
			query.Featured = &featured
		}

		skip, err := nonNegativeIntParam(params.Get("skip"), 0)
		if err != nil {
			h.responder.WriteError(w, r, errs.NewValidationError("skip", "must be a non-negative integer"))
			return
		}
		limit, err := nonNegativeIntParam(params.Get("limit"), defaultListLimit)
		if err != nil {
			h.responder.WriteError(w, r, errs.NewValidationError("limit", "must be a non-negative integer"))
			return
		}
		if limit > maxListLimit {
			limit = maxListLimit
		}

		skillQuery := params.Get("skill")
		if skillQuery == "" {
			// Store-side pagination when no skill filter runs afterwards.
			query.Skip = skip
			query.Limit = limit
		}

		projects, err := h.projectRepo.FindAll(query)
		if err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("find", "projects", err))
			return
		}

		projects = services.FilterBySkill(projects, skillQuery, services.MatchSubstring)
		if skillQuery != "" {
			projects = paginate(projects, skip, limit)
		}

		response := ProjectCollectionResponse{
			Projects: make([]ProjectResponse, 0, len(projects)),
			Total:    len(projects),
		}
		for _, project := range projects {
			response.Projects = append(response.Projects, projectResponse(project))
		}

		h.responder.WriteJSON(w, response)
	}
}

// getProject retrieves a specific project by ID
// @Summary Get project
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} ProjectResponse "Project"
// @Failure 400 {object} ErrorResponse "Bad Request - invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - project not found"
// @Router /projects/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, r, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("find", "project", err))
			return
		}

		h.responder.WriteJSON(w, projectResponse(project))
	}
}

// createProject creates a new project with zero or more skills
// @Summary Create project
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body createProjectRequest true "Project data"
// @Success 201 {object} Envelope "Created project"
// @Failure 400 {object} ErrorResponse "Bad Request - malformed body"
// @Failure 422 {object} ErrorResponse "Validation error"
// @Router /projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, r, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.validate.Struct(req); err != nil {
			h.responder.WriteError(w, r, validationError(err))
			return
		}

		status := models.StatusActive
		if req.Status != nil {
			parsed, err := models.ParseProjectStatus(*req.Status)
			if err != nil {
				h.responder.WriteError(w, r, errs.NewInvalidStatusError(*req.Status))
				return
			}
			status = parsed
		}

		// Reject bad skill names before any row is written.
		for _, skill := range req.Skills {
			if _, err := services.NormalizeSkillName(skill.Name); err != nil {
				h.responder.WriteError(w, r, err)
				return
			}
		}

		project := &models.Project{
			Title:       req.Title,
			Description: req.Description,
			GithubURL:   req.GithubURL,
			DemoURL:     req.DemoURL,
			ImageURL:    req.ImageURL,
			Featured:    req.Featured,
			Status:      status,
			Metadata:    datatypes.JSONMap(req.Metadata),
			ProfileID:   req.ProfileID,
		}

		if err := h.projectRepo.Add(project); err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("create", "project", err))
			return
		}

		resolver := h.catalog.Resolver()
		for _, skill := range req.Skills {
			if err := resolver.AttachSkill(project, skill.Name, skill.Proficiency); err != nil {
				h.responder.WriteError(w, r, err)
				return
			}
		}

		created, err := h.projectRepo.FindByID(project.ID)
		if err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("find created", "project", err))
			return
		}

		h.responder.WriteEnvelope(w, http.StatusCreated, "project created successfully", projectResponse(created))
	}
}

// updateProject applies a partial update to a project
// @Summary Update project
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Param project body updateProjectRequest true "Fields to update"
// @Success 200 {object} Envelope "Updated project"
// @Failure 404 {object} ErrorResponse "Not Found - project not found"
// @Failure 422 {object} ErrorResponse "Validation error"
// @Router /projects/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, r, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("find", "project", err))
			return
		}

		var req updateProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, r, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.validate.Struct(req); err != nil {
			h.responder.WriteError(w, r, validationError(err))
			return
		}

		if req.Title != nil {
			project.Title = *req.Title
		}
		if req.Description != nil {
			project.Description = *req.Description
		}
		if req.GithubURL != nil {
			project.GithubURL = req.GithubURL
		}
		if req.DemoURL != nil {
			project.DemoURL = req.DemoURL
		}
		if req.ImageURL != nil {
			project.ImageURL = req.ImageURL
		}
		if req.Featured != nil {
			project.Featured = *req.Featured
		}
		if req.Status != nil {
			status, err := models.ParseProjectStatus(*req.Status)
			if err != nil {
				h.responder.WriteError(w, r, errs.NewInvalidStatusError(*req.Status))
				return
			}
			project.Status = status
		}
		if req.Metadata != nil {
			project.Metadata = datatypes.JSONMap(req.Metadata)
		}
		if req.ProfileID != nil {
			project.ProfileID = req.ProfileID
		}

		if req.Skills != nil {
			if err := h.reconcileSkills(project, *req.Skills); err != nil {
				h.responder.WriteError(w, r, err)
				return
			}
		}

		// Associations are managed by the resolver; a stale preloaded slice
		// must not be written back.
		project.Skills = nil

		if err := h.projectRepo.Update(project); err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("update", "project", err))
			return
		}

		updated, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("find updated", "project", err))
			return
		}

		h.responder.WriteEnvelope(w, http.StatusOK, "project updated successfully", projectResponse(updated))
	}
}

// reconcileSkills makes the project's associations match the desired list:
// missing skills are attached, absent ones detached. Skill rows themselves
// are never removed.
func (h projectHandler) reconcileSkills(project *models.Project, desired []skillInput) error {
	wanted := make(map[string]struct{}, len(desired))
	for _, skill := range desired {
		name, err := services.NormalizeSkillName(skill.Name)
		if err != nil {
			return err
		}
		wanted[name] = struct{}{}
	}

	resolver := h.catalog.Resolver()
	for _, name := range services.EffectiveSkills(project) {
		if _, keep := wanted[name]; !keep {
			if err := resolver.DetachSkill(project, name); err != nil {
				return err
			}
		}
	}
	for _, skill := range desired {
		if err := resolver.AttachSkill(project, skill.Name, skill.Proficiency); err != nil {
			return err
		}
	}
	return nil
}

// deleteProject deletes a project by ID
// @Summary Delete project
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} Envelope "Success message"
// @Failure 404 {object} ErrorResponse "Not Found - project not found"
// @Router /projects/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, r, errs.NewBadRequestError("invalid projectID"))
			return
		}

		if _, err := h.projectRepo.FindByID(projectID); err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("find", "project", err))
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteEnvelope(w, http.StatusOK, "project deleted successfully", nil)
	}
}

func nonNegativeIntParam(raw string, defaultValue int) (int, error) {
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, errs.ErrBadRequest
	}
	return value, nil
}

func paginate(projects []*models.Project, skip, limit int) []*models.Project {
	if skip >= len(projects) {
		return []*models.Project{}
	}
	projects = projects[skip:]
	if limit > 0 && limit < len(projects) {
		projects = projects[:limit]
	}
	return projects
}
