package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/property-portal/internal/api/middleware"
	"github.com/linskybing/property-portal/internal/application"
	"github.com/linskybing/property-portal/internal/domain/contact"
)

type ContactHandler struct {
	base
	svc *application.ContactService
}

func NewContactHandler(b base, svc *application.ContactService) *ContactHandler {
	return &ContactHandler{base: b, svc: svc}
}

// SubmitMessage godoc
// @Summary Send a message through the contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param input body contact.CreateMessageInput true "Message"
// @Success 201 {object} contact.Message
// @Failure 400 {object} response.ValidationErrorResponse
// @Router /api/contact [post]
func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var in contact.CreateMessageInput
	if err := bind(c, &in); err != nil {
		h.fail(c, err)
		return
	}
	msg, err := h.svc.Submit(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// ListMessages godoc
// @Summary List contact form messages
// @Tags contact
// @Security BearerAuth
// @Produce json
// @Success 200 {array} contact.Message
// @Failure 403 {object} response.ErrorResponse
// @Router /api/contact [get]
func (h *ContactHandler) ListMessages(c *gin.Context) {
	msgs, err := h.svc.List(c.Request.Context(), middleware.SessionFrom(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}
