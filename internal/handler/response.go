package handler

// RESPONSE HELPERS:
// These functions standardise how we send JSON responses and errors.
//
// CONSISTENT ERROR FORMAT:
// Every error response from our API has the same shape:
//   {"error": "upstream_unavailable", "message": "GitHub could not be reached"}
//
// The machine-readable "error" field tells the client WHICH of our error
// kinds happened; the message is safe to show to a person.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/repo-showcase/internal/apperror"
)

// ErrorResponse is the standard error format returned by all API endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`   // Machine-readable error type (e.g., "not_found")
	Message string `json:"message"` // Human-readable description
}

// writeJSON sends a JSON response with the given status code.
//
// HEADER ORDER MATTERS:
// Headers and status must be written BEFORE the body; once Encode starts
// writing, header changes are silently ignored.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already sent; we can only log it.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeError maps a domain error to the appropriate HTTP status code and sends it.
//
// ERROR MAPPING:
//
//	apperror.ErrValidation            → 400 validation_error
//	RemoteServiceError with 404       → 404 not_found
//	other RemoteServiceError          → 502 upstream_error
//	apperror.ErrMalformedResponse     → 502 upstream_malformed
//	apperror.ErrNetwork               → 503 upstream_unavailable
//	anything else                     → 500 internal_error
//
// The service layer never sees HTTP status codes of its own; this is the
// single place where they are chosen.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && errors.Is(err, apperror.ErrValidation) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: appErr.Message,
		})
		return
	}

	var remote *apperror.RemoteServiceError
	switch {
	case errors.As(err, &remote) && remote.StatusCode == http.StatusNotFound:
		writeJSON(w, http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "account not found",
		})
	case errors.Is(err, apperror.ErrRemoteService):
		writeJSON(w, http.StatusBadGateway, ErrorResponse{
			Error:   "upstream_error",
			Message: "GitHub returned an error",
		})
	case errors.Is(err, apperror.ErrMalformedResponse):
		writeJSON(w, http.StatusBadGateway, ErrorResponse{
			Error:   "upstream_malformed",
			Message: "GitHub returned an unexpected response",
		})
	case errors.Is(err, apperror.ErrNetwork):
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{
			Error:   "upstream_unavailable",
			Message: "GitHub could not be reached",
		})
	default:
		// NEVER expose internal error details to the client.
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "An internal error occurred",
		})
	}
}
