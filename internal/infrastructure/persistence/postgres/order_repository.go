package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kristjanluik/ordertrack/internal/domain"
)

type OrderRepository struct {
	db *DB
}

func NewOrderRepository(db *DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Insert persists a validated order. The unique index on
// order_number is the backstop for duplicate submissions that pass
// the advisory check concurrently; a violation surfaces as
// domain.ErrDuplicateOrderNumber.
func (r *OrderRepository) Insert(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	query := `
		INSERT INTO orders (
			id, order_number, description, street_address, town, country,
			amount, currency, payment_due_date, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING seq
	`

	m := toDBModel(order)
	err := r.db.Pool.QueryRow(ctx, query,
		m.ID,
		m.OrderNumber,
		m.Description,
		m.StreetAddress,
		m.Town,
		m.Country,
		m.Amount,
		m.Currency,
		m.PaymentDueDate,
		m.CreatedAt,
	).Scan(&m.Seq)

	if err != nil {
		if IsUniqueViolation(err) {
			return nil, domain.ErrDuplicateOrderNumber
		}
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	return toDomainModel(*m), nil
}

// ExistsByOrderNumber reports whether the business key is taken.
func (r *OrderRepository) ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM orders WHERE order_number = $1)`

	var exists bool
	if err := r.db.Pool.QueryRow(ctx, query, orderNumber).Scan(&exists); err != nil {
		return false, fmt.Errorf("query order existence: %w", err)
	}
	return exists, nil
}

// ListAll returns every stored order by payment due date ascending,
// ties broken by insertion order.
func (r *OrderRepository) ListAll(ctx context.Context) ([]*domain.Order, error) {
	query := `
		SELECT id, order_number, description, street_address, town, country,
		       amount, currency, payment_due_date, created_at, seq
		FROM orders
		ORDER BY payment_due_date ASC, seq ASC
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}

	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Order, error) {
		var m OrderModel
		err := row.Scan(
			&m.ID, &m.OrderNumber, &m.Description, &m.StreetAddress, &m.Town, &m.Country,
			&m.Amount, &m.Currency, &m.PaymentDueDate, &m.CreatedAt, &m.Seq,
		)
		return toDomainModel(m), err
	})

	if err != nil {
		return nil, fmt.Errorf("scan orders: %w", err)
	}
	return results, nil
}
