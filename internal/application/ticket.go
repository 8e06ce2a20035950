package application

import (
	"context"

	"github.com/linskybing/property-portal/internal/domain/audit"
	"github.com/linskybing/property-portal/internal/domain/ticket"
	"github.com/linskybing/property-portal/internal/domain/validate"
	"github.com/linskybing/property-portal/internal/realtime"
	"github.com/linskybing/property-portal/internal/repository"
	"github.com/linskybing/property-portal/pkg/apperrors"
	"github.com/linskybing/property-portal/pkg/auth"
)

type TicketService struct {
	Repos *repository.Repos
	hub   *realtime.Hub
	audit *AuditService
}

func NewTicketService(repos *repository.Repos, hub *realtime.Hub, audit *AuditService) *TicketService {
	return &TicketService{
		Repos: repos,
		hub:   hub,
		audit: audit,
	}
}

func (s *TicketService) CreateTicket(ctx context.Context, sess *auth.Session, in ticket.CreateTicketInput) (*ticket.Ticket, error) {
	if sess == nil {
		return nil, ErrInvalidToken
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	t := in.Normalize(sess.UserID)
	if err := s.Repos.Ticket.CreateTicket(ctx, t); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, audit.ActionCreate, "ticket", idString(t.ID), nil, t, "support ticket opened")
	return t, nil
}

// ListTickets returns the caller's tickets, or every ticket for staff.
func (s *TicketService) ListTickets(ctx context.Context, sess *auth.Session) ([]ticket.Ticket, error) {
	if sess == nil {
		return nil, ErrInvalidToken
	}
	if sess.IsStaff() {
		return s.Repos.Ticket.ListTickets(ctx, nil)
	}
	return s.Repos.Ticket.ListTickets(ctx, &sess.UserID)
}

func (s *TicketService) GetTicket(ctx context.Context, sess *auth.Session, id uint) (*ticket.Ticket, error) {
	t, err := s.Repos.Ticket.GetTicket(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperrors.NotFound("Ticket", id)
	}
	if !sess.IsStaff() && (sess == nil || sess.UserID != t.UserID) {
		return nil, apperrors.Forbidden("you may only access your own tickets")
	}
	return t, nil
}

// UpdateStatus moves a ticket to any status of the enumeration.
func (s *TicketService) UpdateStatus(ctx context.Context, sess *auth.Session, id uint, in ticket.UpdateStatusInput) (*ticket.Ticket, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	before, err := s.GetTicket(ctx, sess, id)
	if err != nil {
		return nil, err
	}

	after, err := s.Repos.Ticket.UpdateTicketStatus(ctx, id, in.Status)
	if err != nil {
		return nil, err
	}

	s.hub.Publish(ticket.Event{Type: ticket.EventStatus, TicketID: id, Status: after.Status})
	s.audit.Record(ctx, audit.ActionUpdate, "ticket", idString(id),
		map[string]any{"status": before.Status}, map[string]any{"status": after.Status}, "ticket status changed")
	return after, nil
}

func (s *TicketService) AddComment(ctx context.Context, sess *auth.Session, id uint, in ticket.CreateCommentInput) (*ticket.Comment, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	if _, err := s.GetTicket(ctx, sess, id); err != nil {
		return nil, err
	}

	c := &ticket.Comment{TicketID: id, UserID: sess.UserID, Comment: in.Comment}
	if err := s.Repos.Ticket.AddComment(ctx, c); err != nil {
		return nil, err
	}

	s.hub.Publish(ticket.Event{Type: ticket.EventComment, TicketID: id, Comment: c})
	return c, nil
}

// Subscribe checks access to the ticket and opens an event subscription.
// The caller must Unsubscribe.
func (s *TicketService) Subscribe(ctx context.Context, sess *auth.Session, id uint) (*realtime.Subscription, error) {
	if _, err := s.GetTicket(ctx, sess, id); err != nil {
		return nil, err
	}
	return s.hub.Subscribe(id), nil
}

func (s *TicketService) Unsubscribe(sub *realtime.Subscription) {
	s.hub.Unsubscribe(sub)
}
