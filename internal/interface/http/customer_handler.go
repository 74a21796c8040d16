package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/acmehq/finance-api/internal/application"
	"github.com/acmehq/finance-api/internal/domain/repository"
	"github.com/acmehq/finance-api/pkg/response"
)

type CustomerHandler struct {
	Svc    *application.CustomerService
	Logger *logrus.Logger
}

func NewCustomerHandler(svc *application.CustomerService, logger *logrus.Logger) *CustomerHandler {
	return &CustomerHandler{Svc: svc, Logger: logger}
}

// List GET /api/customers
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.Svc.Customers(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	out := make([]gin.H, 0, len(customers))
	for _, cust := range customers {
		out = append(out, gin.H{
			"id":        cust.ID,
			"name":      cust.Name,
			"email":     cust.Email,
			"image_url": cust.ImageURL,
		})
	}
	response.Success(c, http.StatusOK, out, "customers", nil)
}

// Filtered GET /api/customers/filtered?query=
func (h *CustomerHandler) Filtered(c *gin.Context) {
	rows, err := h.Svc.FilteredCustomers(c.Request.Context(), c.Query("query"))
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, rows, "customer table", nil)
}

// UploadImage POST /api/customers/:id/image (multipart form, field "image")
func (h *CustomerHandler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "image file is required", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "could not read image file", nil)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadImage(c.Request.Context(), c.Param("id"), f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "customer not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"image_url": url}, "customer image updated", nil)
}
