package postgres

import (
	"time"

	"github.com/kristjanluik/ordertrack/internal/domain"
)

// toDomainModel: maps db model to domain entity
func toDomainModel(m OrderModel) *domain.Order {
	return domain.Reconstitute(
		m.ID,
		m.OrderNumber,
		m.Description,
		m.StreetAddress,
		m.Town,
		m.Country,
		m.Amount,
		m.Currency,
		m.PaymentDueDate.UTC(),
		m.CreatedAt,
	)
}

// toDBModel: maps domain entity to db model
func toDBModel(o *domain.Order) *OrderModel {
	createdAt := o.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	return &OrderModel{
		ID:             o.ID,
		OrderNumber:    o.OrderNumber,
		Description:    o.Description,
		StreetAddress:  o.StreetAddress,
		Town:           o.Town,
		Country:        o.Country,
		Amount:         o.Amount,
		Currency:       o.Currency,
		PaymentDueDate: o.PaymentDueDate,
		CreatedAt:      createdAt,
	}
}
