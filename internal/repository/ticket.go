package repository

import (
	"context"

	"github.com/linskybing/property-portal/internal/domain/ticket"
	"github.com/linskybing/property-portal/pkg/apperrors"
	"gorm.io/gorm"
)

type TicketRepo interface {
	CreateTicket(ctx context.Context, t *ticket.Ticket) error
	GetTicket(ctx context.Context, id uint) (*ticket.Ticket, error)
	ListTickets(ctx context.Context, userID *uint) ([]ticket.Ticket, error)
	UpdateTicketStatus(ctx context.Context, id uint, status ticket.Status) (*ticket.Ticket, error)
	AddComment(ctx context.Context, c *ticket.Comment) error
	ListComments(ctx context.Context, ticketID uint) ([]ticket.Comment, error)
	WithTx(tx *gorm.DB) TicketRepo
}

type DBTicketRepo struct {
	db *gorm.DB
}

func NewTicketRepo(db *gorm.DB) *DBTicketRepo {
	return &DBTicketRepo{db: db}
}

func (r *DBTicketRepo) CreateTicket(ctx context.Context, t *ticket.Ticket) error {
	return translate("create ticket", r.db.WithContext(ctx).Omit("User", "Comments").Create(t).Error)
}

// GetTicket loads the ticket with its comments in creation order.
func (r *DBTicketRepo) GetTicket(ctx context.Context, id uint) (*ticket.Ticket, error) {
	q := r.db.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("support_ticket_comments.created_at ASC").Order("support_ticket_comments.id ASC")
		}).
		Where("id = ?", id)
	return first[ticket.Ticket]("get ticket", q)
}

func (r *DBTicketRepo) ListTickets(ctx context.Context, userID *uint) ([]ticket.Ticket, error) {
	q := r.db.WithContext(ctx)
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	var tickets []ticket.Ticket
	if err := q.Order("created_at DESC").Order("id DESC").Find(&tickets).Error; err != nil {
		return nil, translate("list tickets", err)
	}
	return tickets, nil
}

func (r *DBTicketRepo) UpdateTicketStatus(ctx context.Context, id uint, status ticket.Status) (*ticket.Ticket, error) {
	res := r.db.WithContext(ctx).Model(&ticket.Ticket{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, translate("update ticket status", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NotFound("Ticket", id)
	}
	t, err := r.GetTicket(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperrors.NotFound("Ticket", id)
	}
	return t, nil
}

func (r *DBTicketRepo) AddComment(ctx context.Context, c *ticket.Comment) error {
	return translate("add comment", r.db.WithContext(ctx).Omit("User").Create(c).Error)
}

func (r *DBTicketRepo) ListComments(ctx context.Context, ticketID uint) ([]ticket.Comment, error) {
	var comments []ticket.Comment
	err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").Order("id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, translate("list comments", err)
	}
	return comments, nil
}

func (r *DBTicketRepo) WithTx(tx *gorm.DB) TicketRepo {
	if tx == nil {
		return r
	}
	return &DBTicketRepo{db: tx}
}
