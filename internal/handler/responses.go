package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/FrostPlanner_Go/internal/domain"
	"github.com/osse101/FrostPlanner_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode first so a failure can still produce a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes the mapped status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, opMessage string, err error) {
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if statusCode >= http.StatusInternalServerError {
		log.Error(opMessage, "error", err, "status", statusCode)
	} else {
		log.Warn(opMessage, "error", err, "status", statusCode)
	}
	respondError(w, statusCode, userMsg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError     = "Something went wrong"
	ErrMsgUnknownError           = "Unknown error"
	ErrMsgMissingOwnerError      = "An owner_id is required"
	ErrMsgInvalidPreferenceErr   = "Watering cadence and duration must be at least 1"
	ErrMsgInvalidInputError      = "Invalid request. Please check your inputs."
	ErrMsgFrostNotFoundError     = "No frost date could be found for this location. Please enter your last frost date."
	ErrMsgPlantNotFoundError     = "Plant not found"
	ErrMsgEmptyProfileError      = "Plant has no planting offsets"
	ErrMsgTaskNotFoundError      = "Task not found"
	ErrMsgUpstreamTimeoutError   = "An upstream service timed out. Please try again."
	ErrMsgUpstreamUnavailableErr = "An upstream service is unavailable. Please try again later."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Unknown errors become a generic 500 so internal details are never exposed.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrMissingOwner):
		return http.StatusBadRequest, ErrMsgMissingOwnerError
	case errors.Is(err, domain.ErrInvalidPreference):
		return http.StatusBadRequest, ErrMsgInvalidPreferenceErr
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrPlantNotFound):
		return http.StatusNotFound, ErrMsgPlantNotFoundError
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, ErrMsgTaskNotFoundError
	case errors.Is(err, domain.ErrFrostNotFound):
		return http.StatusUnprocessableEntity, ErrMsgFrostNotFoundError
	case errors.Is(err, domain.ErrEmptyProfile):
		return http.StatusUnprocessableEntity, ErrMsgEmptyProfileError
	case errors.Is(err, domain.ErrUpstreamTimeout):
		return http.StatusGatewayTimeout, ErrMsgUpstreamTimeoutError
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return http.StatusBadGateway, ErrMsgUpstreamUnavailableErr
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
