package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-api-backend/errs"
	"github.com/rpupo63/portfolio-api-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultTopSkillsLimit = 5

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	catalog   services.Catalog
}

func newSkillHandler(catalog services.Catalog) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		catalog:   catalog,
	}
}

// topSkills returns skills ranked by project-association count
// @Summary Top skills
// @Tags Skills
// @Produce json
// @Param limit query int false "Max skills to return" default(5)
// @Success 200 {array} models.SkillWithCount "Ranked skills"
// @Failure 422 {object} ErrorResponse "Validation error"
// @Router /skills/top [get]
func (h skillHandler) topSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := nonNegativeIntParam(r.URL.Query().Get("limit"), defaultTopSkillsLimit)
		if err != nil {
			h.responder.WriteError(w, r, errs.NewValidationError("limit", "must be a non-negative integer"))
			return
		}

		ranked, err := h.catalog.TopSkills(limit)
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}
		h.responder.WriteJSON(w, ranked)
	}
}
