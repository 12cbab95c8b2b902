package application

import (
	"context"

	"github.com/kristjanluik/ordertrack/internal/domain"
)

// OrderRepository is the port for persistence.
type OrderRepository interface {
	// Insert persists a fully validated order and returns the stored
	// record. A unique-constraint hit on the order number surfaces as
	// domain.ErrDuplicateOrderNumber.
	Insert(ctx context.Context, order *domain.Order) (*domain.Order, error)

	// ExistsByOrderNumber reports whether an order with the given
	// business key is already stored.
	ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error)

	// ListAll returns every stored order sorted by payment due date
	// ascending, ties broken by insertion order.
	ListAll(ctx context.Context) ([]*domain.Order, error)
}
