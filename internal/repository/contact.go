package repository

import (
	"context"

	"github.com/linskybing/property-portal/internal/domain/contact"
	"gorm.io/gorm"
)

type ContactRepo interface {
	CreateMessage(ctx context.Context, m *contact.Message) error
	ListMessages(ctx context.Context) ([]contact.Message, error)
	WithTx(tx *gorm.DB) ContactRepo
}

type DBContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *DBContactRepo {
	return &DBContactRepo{db: db}
}

func (r *DBContactRepo) CreateMessage(ctx context.Context, m *contact.Message) error {
	return translate("create contact message", r.db.WithContext(ctx).Create(m).Error)
}

func (r *DBContactRepo) ListMessages(ctx context.Context) ([]contact.Message, error) {
	var msgs []contact.Message
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&msgs).Error; err != nil {
		return nil, translate("list contact messages", err)
	}
	return msgs, nil
}

func (r *DBContactRepo) WithTx(tx *gorm.DB) ContactRepo {
	if tx == nil {
		return r
	}
	return &DBContactRepo{db: tx}
}
