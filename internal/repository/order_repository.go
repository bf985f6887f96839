package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/moderation-service/internal/domain"
)

// OrderRepository defines read access to marketplace orders. Orders are
// written by an external collaborator; this service only lists them.
type OrderRepository interface {
	ListByEntrepreneur(ctx context.Context, entrepreneurID string) ([]domain.Order, error)
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns a Postgres-backed implementation bound to the
// restricted client pool.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

func (r *orderRepository) ListByEntrepreneur(ctx context.Context, entrepreneurID string) ([]domain.Order, error) {
	const query = `
        SELECT id, entrepreneur_id, buyer_id, status, total_cents, created_at
        FROM orders WHERE entrepreneur_id=$1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, entrepreneurID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID,
			&order.EntrepreneurID,
			&order.BuyerID,
			&order.Status,
			&order.TotalCents,
			&order.CreatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
