package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/acmehq/finance-api/internal/domain/entity"
	"github.com/acmehq/finance-api/internal/domain/repository"
	"github.com/acmehq/finance-api/pkg/money"
)

const latestInvoiceLimit = 5

type DashboardService struct {
	Invoices  repository.InvoiceRepository
	Customers repository.CustomerRepository
	Revenue   repository.RevenueRepository
	Logger    *logrus.Logger
}

func NewDashboardService(inv repository.InvoiceRepository, cust repository.CustomerRepository, rev repository.RevenueRepository, logger *logrus.Logger) *DashboardService {
	return &DashboardService{Invoices: inv, Customers: cust, Revenue: rev, Logger: logger}
}

// CardData is the dashboard summary block. Totals are display-formatted.
type CardData struct {
	NumberOfInvoices     int    `json:"number_of_invoices"`
	NumberOfCustomers    int    `json:"number_of_customers"`
	TotalPaidInvoices    string `json:"total_paid_invoices"`
	TotalPendingInvoices string `json:"total_pending_invoices"`
}

// FetchRevenue returns all revenue samples in store-defined order.
func (s *DashboardService) FetchRevenue(ctx context.Context) ([]entity.Revenue, error) {
	rows, err := s.Revenue.All(ctx)
	if err != nil {
		s.logStoreError("fetch revenue", err)
		return nil, errors.New("failed to fetch revenue data")
	}
	return rows, nil
}

// LatestInvoices returns the five most recent invoices joined with their
// customers, amounts formatted for display.
func (s *DashboardService) LatestInvoices(ctx context.Context) ([]InvoiceItem, error) {
	rows, err := s.Invoices.Latest(ctx, latestInvoiceLimit)
	if err != nil {
		s.logStoreError("fetch latest invoices", err)
		return nil, errors.New("failed to fetch latest invoices")
	}
	return invoiceItems(rows), nil
}

// FetchCardData issues its three sub-queries concurrently; they are
// independent and joined only when all have completed.
func (s *DashboardService) FetchCardData(ctx context.Context) (*CardData, error) {
	var (
		invoiceCount  int
		customerCount int
		totals        repository.StatusTotals
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoiceCount, err = s.Invoices.Count(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		customerCount, err = s.Customers.Count(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		totals, err = s.Invoices.SumByStatus(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logStoreError("fetch card data", err)
		return nil, errors.New("failed to fetch card data")
	}

	return &CardData{
		NumberOfInvoices:     invoiceCount,
		NumberOfCustomers:    customerCount,
		TotalPaidInvoices:    money.FormatUSD(totals.Paid),
		TotalPendingInvoices: money.FormatUSD(totals.Pending),
	}, nil
}

func (s *DashboardService) logStoreError(op string, err error) {
	if s.Logger == nil {
		return
	}
	s.Logger.WithError(err).Errorf("database error: %s", op)
}
