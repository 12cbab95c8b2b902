package services_test

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kristjanluik/ordertrack/internal/application"
	"github.com/kristjanluik/ordertrack/internal/application/services"
	"github.com/kristjanluik/ordertrack/internal/domain"
)

// memoryOrderRepo implements application.OrderRepository with the
// same observable contract as the postgres repository: unique order
// numbers and a due-date-then-insertion-order listing.
type memoryOrderRepo struct {
	orders  []*domain.Order
	failAll error
}

func (r *memoryOrderRepo) Insert(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if r.failAll != nil {
		return nil, r.failAll
	}
	for _, o := range r.orders {
		if o.OrderNumber == order.OrderNumber {
			return nil, domain.ErrDuplicateOrderNumber
		}
	}
	stored := *order
	r.orders = append(r.orders, &stored)
	return &stored, nil
}

func (r *memoryOrderRepo) ExistsByOrderNumber(_ context.Context, orderNumber string) (bool, error) {
	if r.failAll != nil {
		return false, r.failAll
	}
	for _, o := range r.orders {
		if o.OrderNumber == orderNumber {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryOrderRepo) ListAll(_ context.Context) ([]*domain.Order, error) {
	if r.failAll != nil {
		return nil, r.failAll
	}
	out := make([]*domain.Order, len(r.orders))
	copy(out, r.orders)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PaymentDueDate.Before(out[j].PaymentDueDate)
	})
	return out, nil
}

func newService(repo application.OrderRepository) *services.OrderService {
	return services.NewOrderService(repo, slog.New(slog.DiscardHandler))
}

func candidate(orderNumber, dueDate string) domain.Candidate {
	return domain.Candidate{
		OrderNumber:    orderNumber,
		Description:    "Test order",
		StreetAddress:  "123 Test St",
		Town:           "Test Town",
		Country:        "Estonia",
		Amount:         "100.50",
		Currency:       "EUR",
		PaymentDueDate: dueDate,
	}
}

func TestCreate_Success(t *testing.T) {
	svc := newService(&memoryOrderRepo{})

	order, err := svc.Create(context.Background(), candidate("ORD-001", "2024-12-31"))
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "ORD-001", order.OrderNumber)
	assert.Equal(t, "100.50", order.Amount.StringFixed(2))
}

func TestCreate_ValidationFailure(t *testing.T) {
	repo := &memoryOrderRepo{}
	svc := newService(repo)

	c := candidate("ORD-001", "31-12-2024")
	_, err := svc.Create(context.Background(), c)
	require.Error(t, err)

	var svcErr *application.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, application.ErrCodeValidationFailed, svcErr.Code)
	assert.Empty(t, repo.orders, "invalid payload must never reach storage")
}

func TestCreate_DuplicateOrderNumber(t *testing.T) {
	svc := newService(&memoryOrderRepo{})
	ctx := context.Background()

	_, err := svc.Create(ctx, candidate("ORD-001", "2024-12-31"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, candidate("ORD-001", "2025-01-15"))
	require.Error(t, err)

	var svcErr *application.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, application.ErrCodeConflict, svcErr.Code)
	assert.Equal(t, "Order number ORD-001 already exists", svcErr.Message)
}

// A concurrent creator that wins between the advisory check and the
// insert surfaces through the unique constraint; the caller still
// sees a conflict, not an internal error.
func TestCreate_RaceLoserGetsConflict(t *testing.T) {
	repo := &raceRepo{inner: &memoryOrderRepo{}}
	svc := newService(repo)

	_, err := svc.Create(context.Background(), candidate("ORD-001", "2024-12-31"))
	require.Error(t, err)

	var svcErr *application.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, application.ErrCodeConflict, svcErr.Code)
}

// raceRepo reports the order number as free, then fails the insert
// with a duplicate error as the database would.
type raceRepo struct {
	inner *memoryOrderRepo
}

func (r *raceRepo) Insert(context.Context, *domain.Order) (*domain.Order, error) {
	return nil, domain.ErrDuplicateOrderNumber
}

func (r *raceRepo) ExistsByOrderNumber(context.Context, string) (bool, error) {
	return false, nil
}

func (r *raceRepo) ListAll(ctx context.Context) ([]*domain.Order, error) {
	return r.inner.ListAll(ctx)
}

func TestCreate_StorageUnavailable(t *testing.T) {
	repo := &memoryOrderRepo{failAll: errors.New("connection refused")}
	svc := newService(repo)

	_, err := svc.Create(context.Background(), candidate("ORD-001", "2024-12-31"))
	require.Error(t, err)

	var svcErr *application.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, application.ErrCodeStorageUnavailable, svcErr.Code)
}

func TestList_SortedByDueDate(t *testing.T) {
	svc := newService(&memoryOrderRepo{})
	ctx := context.Background()

	_, err := svc.Create(ctx, candidate("ORD-003", "2025-03-01"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, candidate("ORD-001", "2025-01-01"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, candidate("ORD-002", "2025-02-01"))
	require.NoError(t, err)

	orders, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)

	assert.Equal(t, "ORD-001", orders[0].OrderNumber)
	assert.Equal(t, "ORD-002", orders[1].OrderNumber)
	assert.Equal(t, "ORD-003", orders[2].OrderNumber)
}

func TestList_TiesKeepInsertionOrder(t *testing.T) {
	svc := newService(&memoryOrderRepo{})
	ctx := context.Background()

	_, err := svc.Create(ctx, candidate("ORD-B", "2025-01-01"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, candidate("ORD-A", "2025-01-01"))
	require.NoError(t, err)

	orders, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-B", orders[0].OrderNumber)
	assert.Equal(t, "ORD-A", orders[1].OrderNumber)
}
