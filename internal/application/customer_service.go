package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/acmehq/finance-api/internal/domain/entity"
	"github.com/acmehq/finance-api/internal/domain/repository"
	"github.com/acmehq/finance-api/pkg/money"
)

// CustomersView is invalidated after a customer's image changes.
const CustomersView = "dashboard/customers"

// ImageStore persists an uploaded object and returns its public URL. The
// GCS-backed store in pkg/helpers satisfies it.
type ImageStore interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

type CustomerService struct {
	Repo   repository.CustomerRepository
	Views  ViewNotifier
	Images ImageStore
	Logger *logrus.Logger
}

func NewCustomerService(repo repository.CustomerRepository, views ViewNotifier, images ImageStore, logger *logrus.Logger) *CustomerService {
	return &CustomerService{Repo: repo, Views: views, Images: images, Logger: logger}
}

// CustomerRow is a filtered-customers listing row with invoice aggregates
// formatted for display.
type CustomerRow struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int    `json:"total_invoices"`
	TotalPending  string `json:"total_pending"`
	TotalPaid     string `json:"total_paid"`
}

func (s *CustomerService) Customers(ctx context.Context) ([]entity.Customer, error) {
	out, err := s.Repo.List(ctx)
	if err != nil {
		s.logStoreError("fetch customers", err, nil)
		return nil, errors.New("failed to fetch all customers")
	}
	return out, nil
}

func (s *CustomerService) FilteredCustomers(ctx context.Context, query string) ([]CustomerRow, error) {
	rows, err := s.Repo.Filtered(ctx, query)
	if err != nil {
		s.logStoreError("fetch filtered customers", err, logrus.Fields{"query": query})
		return nil, errors.New("failed to fetch customer table")
	}
	out := make([]CustomerRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, CustomerRow{
			ID:            r.ID,
			Name:          r.Name,
			Email:         r.Email,
			ImageURL:      r.ImageURL,
			TotalInvoices: r.TotalInvoices,
			TotalPending:  money.FormatUSD(r.TotalPending),
			TotalPaid:     money.FormatUSD(r.TotalPaid),
		})
	}
	return out, nil
}

// UploadImage stores a customer image in GCS and points the customer row at
// its public URL.
func (s *CustomerService) UploadImage(ctx context.Context, customerID string, r io.Reader, filename, contentType string) (string, error) {
	if s.Images == nil {
		return "", errors.New("image storage not configured")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("customers", customerID, uuid.NewString()+ext))
	url, err := s.Images.Upload(ctx, objectPath, contentType, r)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("customer_id", customerID).Error("image upload failed")
		}
		return "", errors.New("failed to upload customer image")
	}

	if err := s.Repo.UpdateImageURL(ctx, customerID, url); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", repository.ErrNotFound
		}
		s.logStoreError("update customer image", err, logrus.Fields{"customer_id": customerID})
		return "", errors.New("failed to update customer image")
	}

	s.Views.Invalidate(ctx, CustomersView)
	return url, nil
}

func (s *CustomerService) logStoreError(op string, err error, fields logrus.Fields) {
	if s.Logger == nil {
		return
	}
	s.Logger.WithError(err).WithFields(fields).Errorf("database error: %s", op)
}
