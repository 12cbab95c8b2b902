package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kristjanluik/ordertrack/internal/application"
	"github.com/kristjanluik/ordertrack/internal/domain"
)

// ErrorResponse is the error envelope. Message is always the
// human-readable failure the UI surfaces verbatim; Details carries
// per-field validation messages when present.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// WriteError maps application errors to HTTP responses.
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	statusCode := application.ToHTTPStatus(err)

	message := err.Error()
	var svcErr *application.ServiceError
	if errors.As(err, &svcErr) {
		message = svcErr.Message
	}

	response := ErrorResponse{
		Code:    application.ToErrorCode(err),
		Message: message,
	}
	if ve, ok := domain.IsValidationError(err); ok {
		response.Details = ve.FieldMessages()
	}

	if statusCode >= http.StatusInternalServerError {
		logger.Error("request failed", "status", statusCode, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}

// WriteJSON writes a success body with the given status.
func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}
