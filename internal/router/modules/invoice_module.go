package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/acmehq/finance-api/internal/container"
	handlers "github.com/acmehq/finance-api/internal/interface/http"
	"github.com/acmehq/finance-api/internal/interface/middleware"
	"github.com/acmehq/finance-api/pkg/helpers"
)

// InvoiceModule wires invoice endpoints into routes
// Protected: GET /api/invoices, GET /api/invoices/pages, GET /api/invoices/:id,
// POST /api/invoices, PUT /api/invoices/:id, DELETE /api/invoices/:id
type InvoiceModule struct {
	Handler *handlers.InvoiceHandler
	JWT     *helpers.JWTManager
}

func NewInvoiceModule(h *handlers.InvoiceHandler, jwt *helpers.JWTManager) *InvoiceModule {
	return &InvoiceModule{Handler: h, JWT: jwt}
}

func (m *InvoiceModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/invoices")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()))
	{
		auth.GET("", m.Handler.List)
		auth.GET("/pages", m.Handler.Pages)
		auth.GET("/:id", m.Handler.Get)
		auth.POST("", m.Handler.Create)
		auth.PUT("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
