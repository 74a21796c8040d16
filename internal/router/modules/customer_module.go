package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/acmehq/finance-api/internal/container"
	handlers "github.com/acmehq/finance-api/internal/interface/http"
	"github.com/acmehq/finance-api/internal/interface/middleware"
	"github.com/acmehq/finance-api/pkg/helpers"
)

// CustomerModule wires customer endpoints into routes
// Protected: GET /api/customers, GET /api/customers/filtered,
// POST /api/customers/:id/image
type CustomerModule struct {
	Handler *handlers.CustomerHandler
	JWT     *helpers.JWTManager
}

func NewCustomerModule(h *handlers.CustomerHandler, jwt *helpers.JWTManager) *CustomerModule {
	return &CustomerModule{Handler: h, JWT: jwt}
}

func (m *CustomerModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/customers")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()))
	{
		auth.GET("", m.Handler.List)
		auth.GET("/filtered", m.Handler.Filtered)
		// image uploads are heavier, keep a tighter per-user limit
		uploadLimiter := middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByUserID(), nil)
		auth.POST("/:id/image", uploadLimiter, m.Handler.UploadImage)
	}
}
