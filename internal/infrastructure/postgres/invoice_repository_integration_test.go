package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acmehq/finance-api/internal/domain/entity"
)

func createTestCustomer(t *testing.T, pool *pgxpool.Pool, name, email string) string {
	t.Helper()

	var id string
	err := pool.QueryRow(context.Background(), `
		INSERT INTO customers (name, email, image_url)
		VALUES ($1, $2, '/customers/test.png')
		RETURNING id
	`, name, email).Scan(&id)
	require.NoError(t, err)
	return id
}

func createTestInvoice(t *testing.T, repo *InvoiceRepository, customerID string, amount int64, status, date string) string {
	t.Helper()

	d, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	inv := &entity.Invoice{CustomerID: customerID, Amount: amount, Status: status, Date: d}
	require.NoError(t, repo.Create(context.Background(), inv))
	require.NotEmpty(t, inv.ID)
	return inv.ID
}

func TestInvoiceFiltered_MatchesCustomerNameCaseInsensitive(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewInvoiceRepository(pool)
	ctx := context.Background()

	lee := createTestCustomer(t, pool, "Lee Robinson", "lee@robinson.com")
	amy := createTestCustomer(t, pool, "Amy Burns", "amy@burns.com")
	leeInvoice := createTestInvoice(t, repo, lee, 15795, "pending", "2023-07-16")
	createTestInvoice(t, repo, amy, 2500, "paid", "2022-11-14")

	rows, err := repo.Filtered(ctx, "lee", 6, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, leeInvoice, rows[0].ID)
	assert.Equal(t, "Lee Robinson", rows[0].CustomerName)

	rows, err = repo.Filtered(ctx, "zzz", 6, 0)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestInvoiceFiltered_MatchesAmountAndDateText(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewInvoiceRepository(pool)
	ctx := context.Background()

	lee := createTestCustomer(t, pool, "Lee Robinson", "lee@robinson.com")
	amy := createTestCustomer(t, pool, "Amy Burns", "amy@burns.com")
	leeInvoice := createTestInvoice(t, repo, lee, 15795, "pending", "2023-07-16")
	amyInvoice := createTestInvoice(t, repo, amy, 2500, "paid", "2022-11-14")

	// Amount matches on its textual rendering in cents.
	rows, err := repo.Filtered(ctx, "15795", 6, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, leeInvoice, rows[0].ID)

	// Date matches as text.
	rows, err = repo.Filtered(ctx, "2022-11", 6, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, amyInvoice, rows[0].ID)

	// Status matches; "paid" must not pull in "pending".
	rows, err = repo.Filtered(ctx, "paid", 6, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, amyInvoice, rows[0].ID)
}

func TestInvoiceCountFiltered_AgreesWithFiltered(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewInvoiceRepository(pool)
	ctx := context.Background()

	lee := createTestCustomer(t, pool, "Lee Robinson", "lee@robinson.com")
	amy := createTestCustomer(t, pool, "Amy Burns", "amy@burns.com")
	createTestInvoice(t, repo, lee, 15795, "pending", "2023-07-16")
	createTestInvoice(t, repo, amy, 2500, "paid", "2022-11-14")

	count, err := repo.CountFiltered(ctx, "lee")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = repo.CountFiltered(ctx, "zzz")
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = repo.CountFiltered(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
