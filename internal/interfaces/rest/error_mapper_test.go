package rest_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kristjanluik/ordertrack/internal/application"
	"github.com/kristjanluik/ordertrack/internal/domain"
	"github.com/kristjanluik/ordertrack/internal/interfaces/rest"
)

func writeError(t *testing.T, err error) (int, rest.ErrorResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	rest.WriteError(rec, err, slog.New(slog.DiscardHandler))

	var resp rest.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec.Code, resp
}

func TestWriteError_Conflict(t *testing.T) {
	status, resp := writeError(t, application.NewConflictError("ORD-001"))

	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", resp.Code)
	assert.Equal(t, "Order number ORD-001 already exists", resp.Message)
	assert.Empty(t, resp.Details)
}

func TestWriteError_ValidationDetails(t *testing.T) {
	ve := &domain.ValidationError{Fields: []domain.FieldError{
		{
			Field:   "paymentDueDate",
			Code:    domain.ErrCodeInvalidDateFormat,
			Message: "paymentDueDate must be in YYYY-MM-DD format",
		},
	}}

	status, resp := writeError(t, application.NewValidationFailedError(ve))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_FAILED", resp.Code)
	assert.Equal(t, "paymentDueDate must be in YYYY-MM-DD format", resp.Message)
	assert.Equal(t, "paymentDueDate must be in YYYY-MM-DD format", resp.Details["paymentDueDate"])
}

func TestWriteError_StorageUnavailable(t *testing.T) {
	status, resp := writeError(t, application.NewStorageUnavailableError(errors.New("dial tcp: connection refused")))

	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "STORAGE_UNAVAILABLE", resp.Code)
}

func TestWriteError_UnknownErrorIsInternal(t *testing.T) {
	status, resp := writeError(t, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL_ERROR", resp.Code)
}
