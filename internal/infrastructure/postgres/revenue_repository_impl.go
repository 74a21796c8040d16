package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acmehq/finance-api/internal/domain/entity"
	"github.com/acmehq/finance-api/internal/domain/repository"
)

type RevenueRepository struct {
	pool *pgxpool.Pool
}

func NewRevenueRepository(pool *pgxpool.Pool) *RevenueRepository {
	return &RevenueRepository{pool: pool}
}

// All returns every revenue sample in store-defined order.
func (r *RevenueRepository) All(ctx context.Context) ([]entity.Revenue, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, `SELECT month, revenue FROM revenue`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Revenue, 0, 12)
	for rows.Next() {
		var rev entity.Revenue
		if err := rows.Scan(&rev.Month, &rev.Revenue); err != nil {
			return nil, err
		}
		out = append(out, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

var _ repository.RevenueRepository = (*RevenueRepository)(nil)
