package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/property-portal/internal/api/middleware"
	"github.com/linskybing/property-portal/internal/application"
	"github.com/linskybing/property-portal/internal/domain/ticket"
)

type TicketHandler struct {
	base
	svc *application.TicketService
}

func NewTicketHandler(b base, svc *application.TicketService) *TicketHandler {
	return &TicketHandler{base: b, svc: svc}
}

// ListTickets godoc
// @Summary List support tickets
// @Description Tenants and landlords see their own tickets; staff see all.
// @Tags tickets
// @Security BearerAuth
// @Produce json
// @Success 200 {array} ticket.Ticket
// @Router /api/tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	tickets, err := h.svc.ListTickets(c.Request.Context(), middleware.SessionFrom(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// CreateTicket godoc
// @Summary Open a support ticket
// @Tags tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body ticket.CreateTicketInput true "Ticket"
// @Success 201 {object} ticket.Ticket
// @Failure 400 {object} response.ValidationErrorResponse
// @Router /api/tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var in ticket.CreateTicketInput
	if err := bind(c, &in); err != nil {
		h.fail(c, err)
		return
	}
	t, err := h.svc.CreateTicket(c.Request.Context(), middleware.SessionFrom(c), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// GetTicket godoc
// @Summary Get a ticket with its comments
// @Tags tickets
// @Security BearerAuth
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} ticket.Ticket
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Router /api/tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	t, err := h.svc.GetTicket(c.Request.Context(), middleware.SessionFrom(c), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// UpdateStatus godoc
// @Summary Change a ticket's status
// @Tags tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param input body ticket.UpdateStatusInput true "New status"
// @Success 200 {object} ticket.Ticket
// @Failure 400 {object} response.ValidationErrorResponse
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Router /api/tickets/{id}/status [patch]
func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	var in ticket.UpdateStatusInput
	if err := bind(c, &in); err != nil {
		h.fail(c, err)
		return
	}
	t, err := h.svc.UpdateStatus(c.Request.Context(), middleware.SessionFrom(c), id, in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// AddComment godoc
// @Summary Comment on a ticket
// @Tags tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param input body ticket.CreateCommentInput true "Comment"
// @Success 201 {object} ticket.Comment
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Router /api/tickets/{id}/comments [post]
func (h *TicketHandler) AddComment(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	var in ticket.CreateCommentInput
	if err := bind(c, &in); err != nil {
		h.fail(c, err)
		return
	}
	comment, err := h.svc.AddComment(c.Request.Context(), middleware.SessionFrom(c), id, in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}
