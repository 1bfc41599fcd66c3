package handler

// Response helpers shared by every endpoint. All success responses go
// through writeJSON, all failures through writeError, so the wire shape
// stays consistent regardless of which handler produced it.
//
// Error format everywhere:
//
//	{"error": "not_found", "message": "user not found with id abc123"}
//
// The original service returned every error as HTTP 200 with an {error}
// body; mapping domain errors to real status codes here is a deliberate
// correction, and unknown errors become an opaque 500 instead of leaking
// store internals.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/apperror"
)

// ErrorResponse is the standard error format returned by all API endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`   // Machine-readable error type (e.g., "not_found")
	Message string `json:"message"` // Human-readable description
}

// writeJSON sends a JSON response with the given status code. Headers and
// status must be set before the first body write — once Encode writes,
// header changes are silently ignored.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already sent; logging is all that's left.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeError maps a domain error to the appropriate HTTP status code and
// sends it. The service layer returns apperror kinds; this is the single
// place they become HTTP. errors.Is walks the wrap chain, so services can
// annotate errors with fmt.Errorf("...: %w", err) freely.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError

	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		errorType := "internal_error"

		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest
			errorType = "validation_error"
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
			errorType = "not_found"
		case errors.Is(err, apperror.ErrConflict):
			status = http.StatusConflict
			errorType = "conflict"
		case errors.Is(err, apperror.ErrQuotaExceeded):
			status = http.StatusForbidden
			errorType = "quota_exceeded"
		}

		writeJSON(w, status, ErrorResponse{
			Error:   errorType,
			Message: appErr.Message,
		})
		return
	}

	// Unknown error (store failure, bug) — generic 500. The raw message
	// might contain SQL or file paths; it stays in the logs, not the body.
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	})
}
