package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/kristjanluik/ordertrack/internal/application"
	"github.com/kristjanluik/ordertrack/internal/domain"
)

// OrderService orchestrates order creation and listing.
type OrderService struct {
	orderRepo application.OrderRepository
	logger    *slog.Logger
}

func NewOrderService(orderRepo application.OrderRepository, logger *slog.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// Create validates and normalizes the candidate, rejects duplicate
// order numbers and inserts the order. The advisory existence check
// runs before the insert; a concurrent creator that loses the race
// hits the storage unique constraint, which maps to the same
// conflict outcome.
func (s *OrderService) Create(ctx context.Context, candidate domain.Candidate) (*domain.Order, error) {
	order, err := domain.ParseOrder(candidate)
	if err != nil {
		return nil, application.NewValidationFailedError(err)
	}

	exists, err := s.orderRepo.ExistsByOrderNumber(ctx, order.OrderNumber)
	if err != nil {
		return nil, application.NewStorageUnavailableError(err)
	}
	if exists {
		return nil, application.NewConflictError(order.OrderNumber)
	}

	order.ID = uuid.New().String()

	stored, err := s.orderRepo.Insert(ctx, order)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateOrderNumber) {
			return nil, application.NewConflictError(order.OrderNumber)
		}
		return nil, application.NewStorageUnavailableError(err)
	}

	s.logger.Info("order created",
		"id", stored.ID,
		"order_number", stored.OrderNumber,
	)

	return stored, nil
}

// List returns every stored order sorted by payment due date
// ascending, ties broken by insertion order.
func (s *OrderService) List(ctx context.Context) ([]*domain.Order, error) {
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, application.NewStorageUnavailableError(err)
	}
	return orders, nil
}
