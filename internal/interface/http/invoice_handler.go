package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/acmehq/finance-api/internal/application"
	"github.com/acmehq/finance-api/internal/domain/repository"
	"github.com/acmehq/finance-api/pkg/response"
)

type InvoiceHandler struct {
	Svc    *application.InvoiceService
	Logger *logrus.Logger
}

func NewInvoiceHandler(svc *application.InvoiceService, logger *logrus.Logger) *InvoiceHandler {
	return &InvoiceHandler{Svc: svc, Logger: logger}
}

// List GET /api/invoices?query=&page=
func (h *InvoiceHandler) List(c *gin.Context) {
	query := c.Query("query")
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	items, err := h.Svc.FilteredInvoices(c.Request.Context(), query, page)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, items, "invoices", nil)
}

// Pages GET /api/invoices/pages?query=
func (h *InvoiceHandler) Pages(c *gin.Context) {
	pages, err := h.Svc.InvoicePages(c.Request.Context(), c.Query("query"))
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"total_pages": pages}, "invoice pages", nil)
}

// Get GET /api/invoices/:id
func (h *InvoiceHandler) Get(c *gin.Context) {
	form, err := h.Svc.InvoiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "invoice not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, form, "invoice", nil)
}

// Create POST /api/invoices
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req application.InvoiceFormInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", nil)
		return
	}

	redirect, err := h.Svc.Create(c.Request.Context(), req)
	if err != nil {
		h.writeMutationError(c, err)
		return
	}
	response.Success[any](c, http.StatusCreated, nil, "invoice created", &response.Navigation{To: redirect.To})
}

// Update PUT /api/invoices/:id
func (h *InvoiceHandler) Update(c *gin.Context) {
	var req application.InvoiceFormInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", nil)
		return
	}

	redirect, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeMutationError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "invoice updated", &response.Navigation{To: redirect.To})
}

// Delete DELETE /api/invoices/:id
// Success carries no navigation instruction; the caller stays on the listing.
func (h *InvoiceHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeMutationError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "invoice deleted", nil)
}

func (h *InvoiceHandler) writeMutationError(c *gin.Context, err error) {
	var verr *application.ValidationError
	switch {
	case errors.As(err, &verr):
		response.Error[any](c, http.StatusBadRequest, verr.Message, verr.Fields)
	case errors.Is(err, repository.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, "invoice not found", nil)
	default:
		response.Error[any](c, http.StatusInternalServerError, err.Error(), nil)
	}
}
