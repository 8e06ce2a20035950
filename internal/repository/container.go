package repository

import (
	"context"

	"gorm.io/gorm"
)

type Repos struct {
	Identity IdentityRepo
	User     UserRepo
	Property PropertyRepo
	Blog     BlogRepo
	Ticket   TicketRepo
	Contact  ContactRepo
	Audit    AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Identity: NewIdentityRepo(db),
		User:     NewUserRepo(db),
		Property: NewPropertyRepo(db),
		Blog:     NewBlogRepo(db),
		Ticket:   NewTicketRepo(db),
		Contact:  NewContactRepo(db),
		Audit:    NewAuditRepo(db),
		db:       db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Identity: r.Identity.WithTx(tx),
		User:     r.User.WithTx(tx),
		Property: r.Property.WithTx(tx),
		Blog:     r.Blog.WithTx(tx),
		Ticket:   r.Ticket.WithTx(tx),
		Contact:  r.Contact.WithTx(tx),
		Audit:    r.Audit.WithTx(tx),
		db:       tx,
	}
}

// ExecTx runs fn against repositories bound to one transaction. A returned
// error rolls the transaction back.
func (r *Repos) ExecTx(ctx context.Context, fn func(*Repos) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}

// Ping checks that the database answers.
func (r *Repos) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return translate("ping", err)
	}
	return translate("ping", sqlDB.PingContext(ctx))
}
