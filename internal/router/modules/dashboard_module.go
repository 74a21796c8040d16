package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/acmehq/finance-api/internal/container"
	handlers "github.com/acmehq/finance-api/internal/interface/http"
	"github.com/acmehq/finance-api/internal/interface/middleware"
	"github.com/acmehq/finance-api/pkg/helpers"
)

// DashboardModule wires overview endpoints into routes
// Protected: GET /api/dashboard/revenue, GET /api/dashboard/invoices/latest,
// GET /api/dashboard/cards
type DashboardModule struct {
	Handler *handlers.DashboardHandler
	JWT     *helpers.JWTManager
}

func NewDashboardModule(h *handlers.DashboardHandler, jwt *helpers.JWTManager) *DashboardModule {
	return &DashboardModule{Handler: h, JWT: jwt}
}

func (m *DashboardModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/dashboard")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()))
	{
		auth.GET("/revenue", m.Handler.Revenue)
		auth.GET("/invoices/latest", m.Handler.LatestInvoices)
		auth.GET("/cards", m.Handler.Cards)
	}
}
