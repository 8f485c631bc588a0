package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rpupo63/portfolio-api-backend/errs"
	"github.com/rs/zerolog"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

// Envelope is the response wrapper used on mutating endpoints. Simple reads
// return bare payloads.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteEnvelope writes a success envelope with the given status code.
func (r Responder) WriteEnvelope(w http.ResponseWriter, statusCode int, message string, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	r.WriteJSON(w, Envelope{Success: true, Message: message, Data: data})
}

// WriteError translates err into the API error shape. Expected errors carry
// their own status code; anything else is logged with the request correlation
// id and surfaced as a generic 500, internals never included.
func (r Responder) WriteError(w http.ResponseWriter, req *http.Request, err error) {
	requestID := middleware.GetReqID(req.Context())

	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		r.logger.Error().
			Str("requestID", requestID).
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Msg(err.Error())
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		r.WriteJSON(w, map[string]any{
			"error":      "Internal Server Error",
			"message":    "An unexpected error occurred",
			"request_id": requestID,
			"status":     "error",
		})
		return
	}

	if apiErr.StatusCode >= http.StatusInternalServerError {
		r.logger.Error().
			Str("requestID", requestID).
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Msg(apiErr.GetFullError())
	}

	response := map[string]any{
		"error":  apiErr.Error(),
		"status": "error",
	}
	if apiErr.Field != "" {
		response["field"] = apiErr.Field
	}
	if apiErr.Details != "" {
		response["details"] = apiErr.Details
	}
	if apiErr.StatusCode >= http.StatusInternalServerError {
		// Correlation id instead of internals for server-side failures.
		response["request_id"] = requestID
		delete(response, "details")
		response["error"] = "Internal Server Error"
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(apiErr.StatusCode)
	r.WriteJSON(w, response)
}

// wrapDatabaseError wraps a store error with operation context before it
// crosses into the transport layer.
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}
