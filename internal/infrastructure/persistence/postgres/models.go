package postgres

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel mirrors the orders table. Amount maps to NUMERIC(10,2)
// and PaymentDueDate to DATE; Seq records insertion order and breaks
// due-date ties in listings.
type OrderModel struct {
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
	Seq            int64
}
