// Package rest maps domain orders onto the wire and back.
package rest

import (
	"github.com/kristjanluik/ordertrack/internal/domain"
)

// OrderResponse is the wire representation of a stored order.
// Amount always carries exactly two fractional digits and
// PaymentDueDate is always YYYY-MM-DD; both are fixed-format strings
// so no client ever sees a binary float or a locale-dependent date.
type OrderResponse struct {
	ID             string `json:"id"`
	OrderNumber    string `json:"orderNumber"`
	Description    string `json:"description"`
	StreetAddress  string `json:"streetAddress"`
	Town           string `json:"town"`
	Country        string `json:"country"`
	Amount         string `json:"amount"`
	Currency       string `json:"currency"`
	PaymentDueDate string `json:"paymentDueDate"`
}

// CreateOrderRequest is the candidate creation payload.
type CreateOrderRequest struct {
	OrderNumber    string `json:"orderNumber"`
	Description    string `json:"description"`
	StreetAddress  string `json:"streetAddress"`
	Town           string `json:"town"`
	Country        string `json:"country"`
	Amount         string `json:"amount"`
	Currency       string `json:"currency"`
	PaymentDueDate string `json:"paymentDueDate"`
}

// ToCandidate maps the wire payload to the validation input.
func (r CreateOrderRequest) ToCandidate() domain.Candidate {
	return domain.Candidate{
		OrderNumber:    r.OrderNumber,
		Description:    r.Description,
		StreetAddress:  r.StreetAddress,
		Town:           r.Town,
		Country:        r.Country,
		Amount:         r.Amount,
		Currency:       r.Currency,
		PaymentDueDate: r.PaymentDueDate,
	}
}

// ToOrderResponse projects a stored order to its wire shape. For any
// accepted creation payload this is the exact inverse of validation.
func ToOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:             o.ID,
		OrderNumber:    o.OrderNumber,
		Description:    o.Description,
		StreetAddress:  o.StreetAddress,
		Town:           o.Town,
		Country:        o.Country,
		Amount:         o.Amount.StringFixed(2),
		Currency:       o.Currency,
		PaymentDueDate: o.PaymentDueDate.Format("2006-01-02"),
	}
}

// ToOrderResponses projects a listing, preserving order.
func ToOrderResponses(orders []*domain.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = ToOrderResponse(o)
	}
	return out
}
