package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acmehq/finance-api/internal/domain/entity"
	"github.com/acmehq/finance-api/internal/domain/repository"
)

type fakeCustomerRepo struct {
	customers []entity.Customer
	failWith  error
}

func (r *fakeCustomerRepo) List(context.Context) ([]entity.Customer, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	return r.customers, nil
}

func (r *fakeCustomerRepo) Filtered(context.Context, string) ([]entity.CustomerSummary, error) {
	return nil, nil
}

func (r *fakeCustomerRepo) Count(context.Context) (int, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	return len(r.customers), nil
}

func (r *fakeCustomerRepo) UpdateImageURL(context.Context, string, string) error {
	return nil
}

type fakeRevenueRepo struct {
	samples []entity.Revenue
}

func (r *fakeRevenueRepo) All(context.Context) ([]entity.Revenue, error) {
	return r.samples, nil
}

func seededInvoiceRepo(t *testing.T) *fakeInvoiceRepo {
	t.Helper()
	repo := newFakeInvoiceRepo()
	for _, inv := range []entity.Invoice{
		{CustomerID: "c1", Amount: 5000, Status: entity.StatusPaid},
		{CustomerID: "c1", Amount: 2500, Status: entity.StatusPaid},
		{CustomerID: "c2", Amount: 1000, Status: entity.StatusPending},
	} {
		inv := inv
		require.NoError(t, repo.Create(context.Background(), &inv))
	}
	return repo
}

func TestFetchCardData(t *testing.T) {
	invoices := seededInvoiceRepo(t)
	customers := &fakeCustomerRepo{customers: []entity.Customer{{ID: "c1"}, {ID: "c2"}}}
	svc := NewDashboardService(invoices, customers, &fakeRevenueRepo{}, nil)

	cards, err := svc.FetchCardData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, cards.NumberOfInvoices)
	assert.Equal(t, 2, cards.NumberOfCustomers)
	assert.Equal(t, "$75.00", cards.TotalPaidInvoices)
	assert.Equal(t, "$10.00", cards.TotalPendingInvoices)
}

func TestFetchCardData_SubQueryFailureIsGeneric(t *testing.T) {
	invoices := seededInvoiceRepo(t)
	customers := &fakeCustomerRepo{failWith: errors.New("pq: relation does not exist")}
	svc := NewDashboardService(invoices, customers, &fakeRevenueRepo{}, nil)

	_, err := svc.FetchCardData(context.Background())
	require.Error(t, err)
	assert.EqualError(t, err, "failed to fetch card data")
}

func TestFetchRevenue(t *testing.T) {
	rev := &fakeRevenueRepo{samples: []entity.Revenue{
		{Month: "Jan", Revenue: 2000},
		{Month: "Feb", Revenue: 1800},
	}}
	svc := NewDashboardService(newFakeInvoiceRepo(), &fakeCustomerRepo{}, rev, nil)

	samples, err := svc.FetchRevenue(context.Background())
	require.NoError(t, err)
	assert.Len(t, samples, 2)
	assert.Equal(t, "Jan", samples[0].Month)
}

var _ repository.CustomerRepository = (*fakeCustomerRepo)(nil)
var _ repository.RevenueRepository = (*fakeRevenueRepo)(nil)
