package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rpupo63/portfolio-api-backend/config"
	"github.com/rpupo63/portfolio-api-backend/database"
	"github.com/rpupo63/portfolio-api-backend/errs"
	"github.com/rpupo63/portfolio-api-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

type profileHandler struct {
	responder   Responder
	logger      zerolog.Logger
	profileRepo database.ProfileRepo
	validate    *validator.Validate

	// singleProfileMode is the single-tenant simplification: reads target
	// the first profile row and lazily create a default one when none
	// exists, instead of deriving an identity from auth.
	singleProfileMode bool
	defaultName       string
	defaultEmail      string
}

func newProfileHandler(profileRepo database.ProfileRepo, c map[string]string, validate *validator.Validate) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:         NewResponder(logger),
		logger:            logger,
		profileRepo:       profileRepo,
		validate:          validate,
		singleProfileMode: config.GetBool(c, "SINGLE_PROFILE_MODE", true),
		defaultName:       config.GetString(c, "DEFAULT_PROFILE_NAME", "Portfolio Owner"),
		defaultEmail:      config.GetString(c, "DEFAULT_PROFILE_EMAIL", "owner@example.com"),
	}
}

// updateProfileRequest is a partial update: only non-nil fields change.
type updateProfileRequest struct {
	Name              *string        `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Email             *string        `json:"email,omitempty" validate:"omitempty,email"`
	Title             *string        `json:"title,omitempty"`
	Location          *string        `json:"location,omitempty"`
	Bio               *string        `json:"bio,omitempty"`
	GithubURL         *string        `json:"github_url,omitempty" validate:"omitempty,url"`
	LinkedinURL       *string        `json:"linkedin_url,omitempty" validate:"omitempty,url"`
	TwitterURL        *string        `json:"twitter_url,omitempty" validate:"omitempty,url"`
	PortfolioURL      *string        `json:"portfolio_url,omitempty" validate:"omitempty,url"`
	ProfilePictureURL *string        `json:"profile_picture_url,omitempty" validate:"omitempty,url"`
	Metadata          map[string]any `json:"metadata,omitempty"`
}

// currentProfile resolves the profile reads and writes operate on. In single
// profile mode an absent row is created lazily with the configured defaults.
func (h profileHandler) currentProfile() (*models.Profile, error) {
	profile, err := h.profileRepo.First()
	if err == nil {
		return profile, nil
	}
	if !errs.IsRecordNotFound(err) {
		return nil, wrapDatabaseError("find", "profile", err)
	}
	if !h.singleProfileMode {
		return nil, errs.NewNotFound("profile")
	}

	created := &models.Profile{
		Name:  h.defaultName,
		Email: h.defaultEmail,
	}
	if err := h.profileRepo.Add(created); err != nil {
		// Another request created the default first; use that row.
		if errs.IsDuplicateKey(err) {
			return h.profileRepo.First()
		}
		return nil, wrapDatabaseError("create", "profile", err)
	}
	h.logger.Info().Str("email", created.Email).Msg("created default profile")
	return created, nil
}

// getProfile returns the sole profile, creating a default one when absent
// @Summary Get profile
// @Tags Profile
// @Produce json
// @Success 200 {object} models.Profile "Profile"
// @Failure 404 {object} ErrorResponse "Not Found - no profile and lazy creation disabled"
// @Router /profile [get]
func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.currentProfile()
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}
		h.responder.WriteJSON(w, profile)
	}
}

// updateProfile applies a partial update to the profile
// @Summary Update profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param profile body updateProfileRequest true "Fields to update"
// @Success 200 {object} Envelope "Updated profile"
// @Failure 409 {object} ErrorResponse "Conflict - email already in use"
// @Failure 422 {object} ErrorResponse "Validation error"
// @Router /profile [put]
func (h profileHandler) updateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode profile request body")
			h.responder.WriteError(w, r, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.validate.Struct(req); err != nil {
			h.responder.WriteError(w, r, validationError(err))
			return
		}

		profile, err := h.currentProfile()
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		if req.Name != nil {
			profile.Name = *req.Name
		}
		if req.Email != nil {
			profile.Email = *req.Email
		}
		if req.Title != nil {
			profile.Title = req.Title
		}
		if req.Location != nil {
			profile.Location = req.Location
		}
		if req.Bio != nil {
			profile.Bio = req.Bio
		}
		if req.GithubURL != nil {
			profile.GithubURL = req.GithubURL
		}
		if req.LinkedinURL != nil {
			profile.LinkedinURL = req.LinkedinURL
		}
		if req.TwitterURL != nil {
			profile.TwitterURL = req.TwitterURL
		}
		if req.PortfolioURL != nil {
			profile.PortfolioURL = req.PortfolioURL
		}
		if req.ProfilePictureURL != nil {
			profile.ProfilePictureURL = req.ProfilePictureURL
		}
		if req.Metadata != nil {
			profile.Metadata = datatypes.JSONMap(req.Metadata)
		}

		if err := h.profileRepo.Update(profile); err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("update", "profile", err))
			return
		}

		h.responder.WriteEnvelope(w, http.StatusOK, "profile updated successfully", profile)
	}
}
