package application

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acmehq/finance-api/internal/domain/entity"
	"github.com/acmehq/finance-api/internal/domain/repository"
)

type imageCustomerRepo struct {
	fakeCustomerRepo
	summaries []entity.CustomerSummary
	imageURLs map[string]string
	missing   bool
}

func (r *imageCustomerRepo) Filtered(context.Context, string) ([]entity.CustomerSummary, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	return r.summaries, nil
}

func (r *imageCustomerRepo) UpdateImageURL(_ context.Context, id, imageURL string) error {
	if r.missing {
		return repository.ErrNotFound
	}
	if r.imageURLs == nil {
		r.imageURLs = map[string]string{}
	}
	r.imageURLs[id] = imageURL
	return nil
}

type fakeImageStore struct {
	paths    []string
	failWith error
}

func (s *fakeImageStore) Upload(_ context.Context, objectPath, _ string, r io.Reader) (string, error) {
	if s.failWith != nil {
		return "", s.failWith
	}
	_, _ = io.Copy(io.Discard, r)
	s.paths = append(s.paths, objectPath)
	return "https://img.test/" + objectPath, nil
}

func TestFilteredCustomers_FormatsAggregates(t *testing.T) {
	repo := &imageCustomerRepo{summaries: []entity.CustomerSummary{
		{ID: "c1", Name: "Lee Robinson", Email: "lee@robinson.com", TotalInvoices: 2, TotalPending: 125000, TotalPaid: 7500},
		{ID: "c2", Name: "Amy Burns", Email: "amy@burns.com"},
	}}
	svc := NewCustomerService(repo, &fakeNotifier{}, nil, nil)

	rows, err := svc.FilteredCustomers(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "$1,250.00", rows[0].TotalPending)
	assert.Equal(t, "$75.00", rows[0].TotalPaid)
	assert.Equal(t, 2, rows[0].TotalInvoices)
	// Customers without invoices keep zero totals.
	assert.Equal(t, "$0.00", rows[1].TotalPending)
	assert.Equal(t, "$0.00", rows[1].TotalPaid)
}

func TestFilteredCustomers_StoreFailureIsGeneric(t *testing.T) {
	repo := &imageCustomerRepo{}
	repo.failWith = errors.New("pq: relation does not exist")
	svc := NewCustomerService(repo, &fakeNotifier{}, nil, nil)

	_, err := svc.FilteredCustomers(context.Background(), "lee")
	require.Error(t, err)
	assert.EqualError(t, err, "failed to fetch customer table")
}

func TestUploadImage_StoresURLAndNotifies(t *testing.T) {
	repo := &imageCustomerRepo{}
	store := &fakeImageStore{}
	notifier := &fakeNotifier{}
	svc := NewCustomerService(repo, notifier, store, nil)

	url, err := svc.UploadImage(context.Background(), "cust-1", strings.NewReader("png bytes"), "avatar.PNG", "image/png")
	require.NoError(t, err)
	assert.Equal(t, url, repo.imageURLs["cust-1"])
	assert.Equal(t, []string{CustomersView}, notifier.invalidated)

	require.Len(t, store.paths, 1)
	assert.True(t, strings.HasPrefix(store.paths[0], "customers/cust-1/"))
	// Extension is lowercased before the object path is built.
	assert.True(t, strings.HasSuffix(store.paths[0], ".png"))
}

func TestUploadImage_MissingCustomer(t *testing.T) {
	repo := &imageCustomerRepo{missing: true}
	notifier := &fakeNotifier{}
	svc := NewCustomerService(repo, notifier, &fakeImageStore{}, nil)

	_, err := svc.UploadImage(context.Background(), "ghost", strings.NewReader("x"), "a.png", "image/png")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Empty(t, notifier.invalidated)
}

func TestUploadImage_StoreFailureIsGeneric(t *testing.T) {
	repo := &imageCustomerRepo{}
	store := &fakeImageStore{failWith: errors.New("googleapi: 503")}
	notifier := &fakeNotifier{}
	svc := NewCustomerService(repo, notifier, store, nil)

	_, err := svc.UploadImage(context.Background(), "cust-1", strings.NewReader("x"), "a.png", "image/png")
	require.Error(t, err)
	assert.EqualError(t, err, "failed to upload customer image")
	assert.Empty(t, repo.imageURLs)
	assert.Empty(t, notifier.invalidated)
}

func TestUploadImage_Unconfigured(t *testing.T) {
	svc := NewCustomerService(&imageCustomerRepo{}, &fakeNotifier{}, nil, nil)

	_, err := svc.UploadImage(context.Background(), "cust-1", strings.NewReader("x"), "a.png", "image/png")
	require.Error(t, err)
	assert.EqualError(t, err, "image storage not configured")
}

var _ repository.CustomerRepository = (*imageCustomerRepo)(nil)
var _ ImageStore = (*fakeImageStore)(nil)
