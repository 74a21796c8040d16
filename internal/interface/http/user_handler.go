package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/acmehq/finance-api/internal/application"
	"github.com/acmehq/finance-api/pkg/helpers"
	"github.com/acmehq/finance-api/pkg/response"
	"github.com/acmehq/finance-api/pkg/validation"
)

type UserHandler struct {
	Svc     *application.UserService
	Logger  *logrus.Logger
	Cookies *helpers.Manager
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type signUpRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

// SignUp POST /api/signup
func (h *UserHandler) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid credentials", validation.ToDetails(err))
		return
	}

	identity, redirect, err := h.Svc.SignUp(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "Failed to create user.", nil)
		return
	}
	response.Success(c, http.StatusCreated, identity, "account created", &response.Navigation{
		To:     redirect.To,
		Notice: redirect.Notice,
	})
}

// Login POST /api/login
// Shape violations and credential mismatches share one generic message; which
// field was wrong is never revealed.
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnauthorized, "Invalid credentials.", nil)
		return
	}

	u, sess, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Error[any](c, http.StatusUnauthorized, "Invalid credentials.", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "Something went wrong.", nil)
		return
	}

	h.Cookies.SetPair(c, sess.AccessToken, sess.AccessExpiry, sess.RefreshToken, sess.RefreshExpiry)
	response.Success(c, http.StatusOK, gin.H{
		"user_id": u.ID,
		"email":   u.Email,
		"name":    u.Name,
	}, "login successful", nil)
}

// Logout POST /api/logout (auth required)
func (h *UserHandler) Logout(c *gin.Context) {
	uid := c.GetString("userID")
	if uid != "" {
		if err := h.Svc.Logout(c.Request.Context(), uid); err != nil && h.Logger != nil {
			h.Logger.WithError(err).WithField("user_id", uid).Warn("session revoke failed")
		}
	}
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, gin.H{"logged_out": true}, "logged out", nil)
}
