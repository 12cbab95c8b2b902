package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Validation failure codes, one per rule in the creation contract.
const (
	ErrCodeRequired          = "REQUIRED"
	ErrCodeInvalidCurrency   = "INVALID_CURRENCY"
	ErrCodeInvalidAmount     = "INVALID_AMOUNT"
	ErrCodeInvalidDateFormat = "INVALID_DATE_FORMAT"
)

// FieldError is a single violated rule on a named payload field.
type FieldError struct {
	Field   string
	Code    string
	Message string
}

// ValidationError aggregates every violated field of a creation
// payload. All rules are checked independently; callers always see
// the complete set of violations in payload field order.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "; ")
}

// FieldMessages returns the violations keyed by field name.
func (e *ValidationError) FieldMessages() map[string]string {
	m := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		m[f.Field] = f.Message
	}
	return m
}

func newRequiredError(field string) FieldError {
	return FieldError{
		Field:   field,
		Code:    ErrCodeRequired,
		Message: fmt.Sprintf("%s is required", field),
	}
}

// IsValidationError reports whether err carries a *ValidationError
// and returns it.
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// ErrDuplicateOrderNumber signals that the business key is already
// taken, whether found by the advisory pre-check or reported by the
// storage unique constraint.
var ErrDuplicateOrderNumber = errors.New("order number already exists")
