// Package domain encodes the order entity and its validation rules.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the single business entity tracked by this system.
// OrderNumber is the business key and is unique across all live
// records; Amount carries exact decimal semantics end to end and is
// never converted to a binary float. Orders are immutable once
// created.
type Order struct {
	ID             string
	OrderNumber    string
	Description    string
	StreetAddress  string
	Town           string
	Country        string
	Amount         decimal.Decimal
	Currency       string
	PaymentDueDate time.Time
	CreatedAt      time.Time
}

// Reconstitute - special constructor for loading from the store.
func Reconstitute(
	id string,
	orderNumber string,
	description string,
	streetAddress string,
	town string,
	country string,
	amount decimal.Decimal,
	currency string,
	paymentDueDate time.Time,
	createdAt time.Time,
) *Order {
	return &Order{
		ID:             id,
		OrderNumber:    orderNumber,
		Description:    description,
		StreetAddress:  streetAddress,
		Town:           town,
		Country:        country,
		Amount:         amount,
		Currency:       currency,
		PaymentDueDate: paymentDueDate,
		CreatedAt:      createdAt,
	}
}
