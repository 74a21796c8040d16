package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/acmehq/finance-api/internal/application"
	"github.com/acmehq/finance-api/pkg/response"
)

type DashboardHandler struct {
	Svc    *application.DashboardService
	Logger *logrus.Logger
}

func NewDashboardHandler(svc *application.DashboardService, logger *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{Svc: svc, Logger: logger}
}

// Revenue GET /api/dashboard/revenue
func (h *DashboardHandler) Revenue(c *gin.Context) {
	samples, err := h.Svc.FetchRevenue(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	out := make([]gin.H, 0, len(samples))
	for _, s := range samples {
		out = append(out, gin.H{"month": s.Month, "revenue": s.Revenue})
	}
	response.Success(c, http.StatusOK, out, "revenue", nil)
}

// LatestInvoices GET /api/dashboard/invoices/latest
func (h *DashboardHandler) LatestInvoices(c *gin.Context) {
	items, err := h.Svc.LatestInvoices(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, items, "latest invoices", nil)
}

// Cards GET /api/dashboard/cards
func (h *DashboardHandler) Cards(c *gin.Context) {
	cards, err := h.Svc.FetchCardData(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, cards, "card data", nil)
}
