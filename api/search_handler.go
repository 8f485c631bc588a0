package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-api-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type searchHandler struct {
	responder Responder
	logger    zerolog.Logger
	catalog   services.Catalog
}

func newSearchHandler(catalog services.Catalog) searchHandler {
	logger := log.With().Str("handlerName", "searchHandler").Logger()

	return searchHandler{
		responder: NewResponder(logger),
		logger:    logger,
		catalog:   catalog,
	}
}

// search runs the aggregate free-text search over projects and skills
// @Summary Search projects and skills
// @Description Case-insensitive substring search across project titles, descriptions and skill names
// @Tags Search
// @Produce json
// @Param q query string true "Search query" minLength(1)
// @Success 200 {object} services.SearchResult "Matching projects and skills"
// @Failure 422 {object} ErrorResponse "Validation error - empty query"
// @Router /search [get]
func (h searchHandler) search() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := h.catalog.Search(r.URL.Query().Get("q"))
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}
		h.responder.WriteJSON(w, result)
	}
}
