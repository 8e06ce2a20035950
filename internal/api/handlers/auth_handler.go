package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/property-portal/internal/api/metrics"
	"github.com/linskybing/property-portal/internal/api/middleware"
	"github.com/linskybing/property-portal/internal/application"
	"github.com/linskybing/property-portal/internal/domain/user"
	"github.com/linskybing/property-portal/pkg/response"
)

const tokenCookie = "token"

type AuthHandler struct {
	base
	svc *application.AuthService
}

func NewAuthHandler(b base, svc *application.AuthService) *AuthHandler {
	return &AuthHandler{base: b, svc: svc}
}

type AuthResponse struct {
	User  *user.User `json:"user"`
	Token string     `json:"token"`
}

func (h *AuthHandler) setCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(tokenCookie, token, maxAge, "/", "", h.production, true)
}

// Register godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.RegisterInput true "Account details"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} response.ValidationErrorResponse
// @Failure 409 {object} response.ErrorResponse "Email already registered"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var in user.RegisterInput
	if err := bind(c, &in); err != nil {
		h.fail(c, err)
		return
	}
	u, token, err := h.svc.Register(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	metrics.AuthEventsTotal.WithLabelValues("register").Inc()
	h.setCookie(c, token, h.svc.TokenTTL())
	c.JSON(http.StatusCreated, AuthResponse{User: u, Token: token})
}

// Login godoc
// @Summary Sign in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginInput true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} response.ErrorResponse "Invalid email or password"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var in user.LoginInput
	if err := bind(c, &in); err != nil {
		h.fail(c, err)
		return
	}
	u, token, err := h.svc.Login(c.Request.Context(), in)
	if err != nil {
		metrics.AuthEventsTotal.WithLabelValues("login_failed").Inc()
		h.fail(c, err)
		return
	}
	metrics.AuthEventsTotal.WithLabelValues("login").Inc()
	h.setCookie(c, token, h.svc.TokenTTL())
	c.JSON(http.StatusOK, AuthResponse{User: u, Token: token})
}

// Logout godoc
// @Summary Revoke the current session
// @Tags auth
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if sess := middleware.SessionFrom(c); sess != nil {
		if err := h.svc.Logout(c.Request.Context(), sess); err != nil {
			h.fail(c, err)
			return
		}
		metrics.AuthEventsTotal.WithLabelValues("logout").Inc()
	}
	h.setCookie(c, "", -1)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logged out successfully"})
}

// Me godoc
// @Summary Current user profile
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} user.User
// @Failure 401 {object} response.ErrorResponse
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.svc.CurrentUser(c.Request.Context(), middleware.SessionFrom(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
