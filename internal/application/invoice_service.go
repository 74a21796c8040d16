package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/acmehq/finance-api/internal/domain/entity"
	"github.com/acmehq/finance-api/internal/domain/repository"
	"github.com/acmehq/finance-api/pkg/money"
)

// ItemsPerPage is the fixed page size for filtered invoice listings.
const ItemsPerPage = 6

// InvoicesView is the external view invalidated after invoice mutations, and
// the destination their navigation instructions point at.
const (
	InvoicesView = "dashboard/invoices"
	invoicesPath = "/dashboard/invoices"
)

// ViewNotifier marks a named external view as stale. Implementations must be
// safe to call from concurrent requests.
type ViewNotifier interface {
	Invalidate(ctx context.Context, view string)
}

type InvoiceService struct {
	Repo   repository.InvoiceRepository
	Views  ViewNotifier
	Logger *logrus.Logger
}

func NewInvoiceService(repo repository.InvoiceRepository, views ViewNotifier, logger *logrus.Logger) *InvoiceService {
	return &InvoiceService{Repo: repo, Views: views, Logger: logger}
}

// InvoiceItem is an invoice listing row with the amount formatted for display.
type InvoiceItem struct {
	ID            string `json:"id"`
	Amount        string `json:"amount"`
	Date          string `json:"date"`
	Status        string `json:"status"`
	CustomerName  string `json:"name"`
	CustomerEmail string `json:"email"`
	ImageURL      string `json:"image_url"`
}

// InvoiceForm is a single invoice prepared for form pre-population: the
// amount converted back from cents to a decimal.
type InvoiceForm struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customer_id"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
}

// TotalPages returns ceil(count / pageSize).
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// PageOffset converts a 1-indexed page number into a row offset.
func PageOffset(page, pageSize int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}

func (s *InvoiceService) FilteredInvoices(ctx context.Context, query string, page int) ([]InvoiceItem, error) {
	rows, err := s.Repo.Filtered(ctx, query, ItemsPerPage, PageOffset(page, ItemsPerPage))
	if err != nil {
		s.logStoreError("fetch filtered invoices", err, logrus.Fields{"query": query, "page": page})
		return nil, errors.New("failed to fetch invoices")
	}
	return invoiceItems(rows), nil
}

func (s *InvoiceService) InvoicePages(ctx context.Context, query string) (int, error) {
	count, err := s.Repo.CountFiltered(ctx, query)
	if err != nil {
		s.logStoreError("count filtered invoices", err, logrus.Fields{"query": query})
		return 0, errors.New("failed to fetch total number of invoices")
	}
	return TotalPages(count, ItemsPerPage), nil
}

func (s *InvoiceService) InvoiceByID(ctx context.Context, id string) (*InvoiceForm, error) {
	inv, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.ErrNotFound
		}
		s.logStoreError("fetch invoice", err, logrus.Fields{"invoice_id": id})
		return nil, errors.New("failed to fetch invoice")
	}
	return &InvoiceForm{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     money.FromCents(inv.Amount),
		Status:     inv.Status,
	}, nil
}

// Create validates the form, normalizes the amount to cents, stamps today's
// date, and inserts the invoice. The view notification fires only after the
// insert commits.
func (s *InvoiceService) Create(ctx context.Context, raw InvoiceFormInput) (*Redirect, error) {
	in, fieldErrs := ParseInvoiceInput(raw)
	if fieldErrs != nil {
		return nil, &ValidationError{Fields: fieldErrs, Message: "Missing fields. Failed to create invoice."}
	}

	inv := &entity.Invoice{
		CustomerID: in.CustomerID,
		Amount:     in.AmountCents,
		Status:     in.Status,
		Date:       time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, inv); err != nil {
		s.logStoreError("create invoice", err, logrus.Fields{"customer_id": in.CustomerID})
		return nil, errors.New("failed to create invoice")
	}

	s.Views.Invalidate(ctx, InvoicesView)
	return &Redirect{To: invoicesPath}, nil
}

// Update applies the same validation and normalization as Create, scoped to
// one existing row. A missing id reports repository.ErrNotFound, never a
// silent no-op.
func (s *InvoiceService) Update(ctx context.Context, id string, raw InvoiceFormInput) (*Redirect, error) {
	in, fieldErrs := ParseInvoiceInput(raw)
	if fieldErrs != nil {
		return nil, &ValidationError{Fields: fieldErrs, Message: "Missing fields. Failed to update invoice."}
	}

	inv := &entity.Invoice{
		ID:         id,
		CustomerID: in.CustomerID,
		Amount:     in.AmountCents,
		Status:     in.Status,
	}
	if err := s.Repo.Update(ctx, inv); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.ErrNotFound
		}
		s.logStoreError("update invoice", err, logrus.Fields{"invoice_id": id})
		return nil, errors.New("failed to update invoice")
	}

	s.Views.Invalidate(ctx, InvoicesView)
	return &Redirect{To: invoicesPath}, nil
}

// Delete removes the invoice and signals the listing view. Unlike Create and
// Update it returns no navigation instruction.
func (s *InvoiceService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.ErrNotFound
		}
		s.logStoreError("delete invoice", err, logrus.Fields{"invoice_id": id})
		return errors.New("failed to delete invoice")
	}
	s.Views.Invalidate(ctx, InvoicesView)
	return nil
}

func (s *InvoiceService) logStoreError(op string, err error, fields logrus.Fields) {
	if s.Logger == nil {
		return
	}
	s.Logger.WithError(err).WithFields(fields).Errorf("database error: %s", op)
}

func invoiceItems(rows []entity.InvoiceRow) []InvoiceItem {
	out := make([]InvoiceItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, InvoiceItem{
			ID:            r.ID,
			Amount:        money.FormatUSD(r.Amount),
			Date:          r.Date.Format("2006-01-02"),
			Status:        r.Status,
			CustomerName:  r.CustomerName,
			CustomerEmail: r.CustomerEmail,
			ImageURL:      r.ImageURL,
		})
	}
	return out
}
