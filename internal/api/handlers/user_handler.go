package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/property-portal/internal/api/middleware"
	"github.com/linskybing/property-portal/internal/application"
	"github.com/linskybing/property-portal/internal/domain/user"
)

type UserHandler struct {
	base
	svc *application.UserService
}

func NewUserHandler(b base, svc *application.UserService) *UserHandler {
	return &UserHandler{base: b, svc: svc}
}

// GetUser godoc
// @Summary Get a user profile
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} user.User
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Router /api/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	u, err := h.svc.GetUser(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateUser godoc
// @Summary Update a user profile
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param input body user.UpdateUserInput true "Fields to change"
// @Success 200 {object} user.User
// @Failure 400 {object} response.ValidationErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/users/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	var in user.UpdateUserInput
	if err := bind(c, &in); err != nil {
		h.fail(c, err)
		return
	}
	u, err := h.svc.UpdateUser(c.Request.Context(), middleware.SessionFrom(c), id, in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// ListUsers godoc
// @Summary List users, optionally by role
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param role query string false "Role filter"
// @Success 200 {array} user.User
// @Failure 403 {object} response.ErrorResponse
// @Router /api/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	var role *user.Role
	if raw := queryString(c, "role"); raw != nil {
		r := user.Role(*raw)
		role = &r
	}
	users, err := h.svc.ListUsers(c.Request.Context(), middleware.SessionFrom(c), role)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
