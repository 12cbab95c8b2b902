package application

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/kristjanluik/ordertrack/internal/domain"
)

// ServiceError carries an error code and the HTTP status it maps to.
type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeConflict           = "CONFLICT"
	ErrCodeStorageUnavailable = "STORAGE_UNAVAILABLE"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// NewValidationFailedError wraps the aggregated field violations.
func NewValidationFailedError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeValidationFailed,
		Message:    err.Error(),
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

// NewConflictError reports a taken order number with the fixed
// message template the UI surfaces verbatim.
func NewConflictError(orderNumber string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeConflict,
		Message:    fmt.Sprintf("Order number %s already exists", orderNumber),
		HTTPStatus: http.StatusConflict,
		Err:        domain.ErrDuplicateOrderNumber,
	}
}

func NewStorageUnavailableError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeStorageUnavailable,
		Message:    "Storage is unavailable, please try again later",
		HTTPStatus: http.StatusServiceUnavailable,
		Err:        err,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToHTTPStatus maps any error to the status it should produce.
func ToHTTPStatus(err error) int {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.HTTPStatus
	}
	if _, ok := domain.IsValidationError(err); ok {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// ToErrorCode maps any error to its wire code.
func ToErrorCode(err error) string {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Code
	}
	if _, ok := domain.IsValidationError(err); ok {
		return ErrCodeValidationFailed
	}
	return ErrCodeInternal
}
