package domain

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Candidate is a raw creation payload before validation. Every field
// arrives as a string from the wire; nothing here is trusted.
type Candidate struct {
	OrderNumber    string
	Description    string
	StreetAddress  string
	Town           string
	Country        string
	Amount         string
	Currency       string
	PaymentDueDate string
}

var (
	amountPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
	datePattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

const dueDateLayout = "2006-01-02"

// ParseOrder validates and normalizes a candidate payload into an
// Order. It is a pure function: every rule is checked independently
// and all violations are reported together. The returned Order has
// no ID or CreatedAt; those are assigned at insert time.
func ParseOrder(c Candidate) (*Order, error) {
	var fields []FieldError

	requireNonEmpty := func(field, value string) bool {
		if value == "" {
			fields = append(fields, newRequiredError(field))
			return false
		}
		return true
	}

	requireNonEmpty("orderNumber", c.OrderNumber)
	requireNonEmpty("description", c.Description)
	requireNonEmpty("streetAddress", c.StreetAddress)
	requireNonEmpty("town", c.Town)
	requireNonEmpty("country", c.Country)

	var amount decimal.Decimal
	if requireNonEmpty("amount", c.Amount) {
		parsed, ferr := validateAmount(c.Amount)
		if ferr != nil {
			fields = append(fields, *ferr)
		} else {
			amount = parsed
		}
	}

	if requireNonEmpty("currency", c.Currency) {
		if ferr := validateCurrency(c.Currency); ferr != nil {
			fields = append(fields, *ferr)
		}
	}

	var dueDate time.Time
	if requireNonEmpty("paymentDueDate", c.PaymentDueDate) {
		parsed, ferr := validateDueDate(c.PaymentDueDate)
		if ferr != nil {
			fields = append(fields, *ferr)
		} else {
			dueDate = parsed
		}
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	return &Order{
		OrderNumber:    c.OrderNumber,
		Description:    c.Description,
		StreetAddress:  c.StreetAddress,
		Town:           c.Town,
		Country:        c.Country,
		Amount:         amount,
		Currency:       c.Currency,
		PaymentDueDate: dueDate,
	}, nil
}

// validateAmount accepts a non-negative decimal with at most two
// fractional digits. The value is parsed into an exact decimal;
// binary floats never enter the pipeline.
func validateAmount(raw string) (decimal.Decimal, *FieldError) {
	fail := func() (decimal.Decimal, *FieldError) {
		return decimal.Decimal{}, &FieldError{
			Field:   "amount",
			Code:    ErrCodeInvalidAmount,
			Message: "amount must be a non-negative decimal with at most 2 decimal places",
		}
	}

	if !amountPattern.MatchString(raw) {
		return fail()
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() || d.Exponent() < -2 {
		return fail()
	}
	return d, nil
}

// validateCurrency accepts recognized ISO 4217 alphabetic codes.
func validateCurrency(raw string) *FieldError {
	if len(raw) == 3 {
		if _, err := currency.ParseISO(raw); err == nil {
			return nil
		}
	}
	return &FieldError{
		Field:   "currency",
		Code:    ErrCodeInvalidCurrency,
		Message: "currency must be a valid ISO 4217 currency code",
	}
}

// validateDueDate accepts exactly YYYY-MM-DD naming a real calendar
// date. Timestamps and other date layouts are rejected, never
// reformatted.
func validateDueDate(raw string) (time.Time, *FieldError) {
	fail := func() (time.Time, *FieldError) {
		return time.Time{}, &FieldError{
			Field:   "paymentDueDate",
			Code:    ErrCodeInvalidDateFormat,
			Message: "paymentDueDate must be in YYYY-MM-DD format",
		}
	}

	if !datePattern.MatchString(raw) {
		return fail()
	}
	t, err := time.ParseInLocation(dueDateLayout, raw, time.UTC)
	if err != nil {
		return fail()
	}
	return t, nil
}
