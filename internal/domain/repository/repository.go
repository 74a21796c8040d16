// Package repository defines the store-facing interfaces consumed by the
// application services, plus the sentinel errors implementations must return.
package repository

import (
	"context"
	"errors"

	"github.com/acmehq/finance-api/internal/domain/entity"
)

var (
	// ErrNotFound is returned when a referenced row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when a users insert violates the email
	// uniqueness constraint.
	ErrDuplicateEmail = errors.New("email already registered")
)

// StatusTotals is the sum of invoice amounts partitioned by status, in cents.
type StatusTotals struct {
	Paid    int64
	Pending int64
}

type InvoiceRepository interface {
	Create(ctx context.Context, inv *entity.Invoice) error
	Update(ctx context.Context, inv *entity.Invoice) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	Latest(ctx context.Context, limit int) ([]entity.InvoiceRow, error)
	Filtered(ctx context.Context, query string, limit, offset int) ([]entity.InvoiceRow, error)
	CountFiltered(ctx context.Context, query string) (int, error)
	Count(ctx context.Context) (int, error)
	SumByStatus(ctx context.Context) (StatusTotals, error)
}

type CustomerRepository interface {
	List(ctx context.Context) ([]entity.Customer, error)
	Filtered(ctx context.Context, query string) ([]entity.CustomerSummary, error)
	Count(ctx context.Context) (int, error)
	UpdateImageURL(ctx context.Context, id, imageURL string) error
}

type RevenueRepository interface {
	All(ctx context.Context) ([]entity.Revenue, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
