package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acmehq/finance-api/internal/domain/entity"
	"github.com/acmehq/finance-api/internal/domain/repository"
)

type InvoiceRepository struct {
	pool *pgxpool.Pool
}

func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{pool: pool}
}

// filterPredicate is the OR-match applied by Filtered and CountFiltered: a
// case-insensitive substring match against customer identity and the textual
// rendering of amount, date, and status.
const filterPredicate = `
		customers.name ILIKE $1 OR
		customers.email ILIKE $1 OR
		invoices.amount::text ILIKE $1 OR
		invoices.date::text ILIKE $1 OR
		invoices.status ILIKE $1`

func (r *InvoiceRepository) Create(ctx context.Context, inv *entity.Invoice) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO invoices (customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, inv.CustomerID, inv.Amount, inv.Status, inv.Date)
	if err := row.Scan(&inv.ID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *InvoiceRepository) Update(ctx context.Context, inv *entity.Invoice) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	res, err := tx.Exec(ctx, `
		UPDATE invoices
		SET customer_id = $1, amount = $2, status = $3
		WHERE id = $4
	`, inv.CustomerID, inv.Amount, inv.Status, inv.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return tx.Commit(ctx)
}

func (r *InvoiceRepository) Delete(ctx context.Context, id string) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	res, err := tx.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return tx.Commit(ctx)
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
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

	inv := &entity.Invoice{}
	row := tx.QueryRow(ctx, `
		SELECT id, customer_id, amount, status, date
		FROM invoices
		WHERE id = $1
	`, id)
	if err := row.Scan(&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Status, &inv.Date); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *InvoiceRepository) Latest(ctx context.Context, limit int) ([]entity.InvoiceRow, error) {
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

	rows, err := tx.Query(ctx, `
		SELECT invoices.id, invoices.amount, invoices.date, invoices.status,
		       customers.name, customers.email, customers.image_url
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		ORDER BY invoices.date DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	out, err := scanInvoiceRows(rows)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *InvoiceRepository) Filtered(ctx context.Context, query string, limit, offset int) ([]entity.InvoiceRow, error) {
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

	rows, err := tx.Query(ctx, `
		SELECT invoices.id, invoices.amount, invoices.date, invoices.status,
		       customers.name, customers.email, customers.image_url
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE`+filterPredicate+`
		ORDER BY invoices.date DESC
		LIMIT $2 OFFSET $3
	`, likePattern(query), limit, offset)
	if err != nil {
		return nil, err
	}
	out, err := scanInvoiceRows(rows)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *InvoiceRepository) CountFiltered(ctx context.Context, query string) (int, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var count int
	row := tx.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE`+filterPredicate, likePattern(query))
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *InvoiceRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&count)
	return count, err
}

func (r *InvoiceRepository) SumByStatus(ctx context.Context) (repository.StatusTotals, error) {
	var t repository.StatusTotals
	err := r.pool.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0)
		FROM invoices
	`).Scan(&t.Paid, &t.Pending)
	return t, err
}

func scanInvoiceRows(rows pgx.Rows) ([]entity.InvoiceRow, error) {
	defer rows.Close()
	out := make([]entity.InvoiceRow, 0, 8)
	for rows.Next() {
		var ir entity.InvoiceRow
		if err := rows.Scan(&ir.ID, &ir.Amount, &ir.Date, &ir.Status,
			&ir.CustomerName, &ir.CustomerEmail, &ir.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, ir)
	}
	return out, rows.Err()
}

var _ repository.InvoiceRepository = (*InvoiceRepository)(nil)
