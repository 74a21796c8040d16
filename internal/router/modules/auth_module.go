package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/acmehq/finance-api/internal/container"
	handlers "github.com/acmehq/finance-api/internal/interface/http"
	"github.com/acmehq/finance-api/internal/interface/middleware"
	"github.com/acmehq/finance-api/pkg/helpers"
)

// AuthModule wires credential endpoints into routes
// Public: POST /api/signup, POST /api/login
// Protected: POST /api/logout
type AuthModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public with IP-based rate limits; login is the tighter of the two
	signupLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/signup", signupLimiter, m.Handler.SignUp)
	rg.POST("/login", loginLimiter, m.Handler.Login)

	// Protected
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	{
		auth.POST("/logout", m.Handler.Logout)
	}
}
