package repository

import (
	"context"

	"github.com/linskybing/property-portal/internal/domain/identity"
	"gorm.io/gorm"
)

type IdentityRepo interface {
	GetIdentityByEmail(ctx context.Context, email string) (*identity.Identity, error)
	CreateIdentity(ctx context.Context, id *identity.Identity) error
	WithTx(tx *gorm.DB) IdentityRepo
}

type DBIdentityRepo struct {
	db *gorm.DB
}

func NewIdentityRepo(db *gorm.DB) *DBIdentityRepo {
	return &DBIdentityRepo{db: db}
}

func (r *DBIdentityRepo) GetIdentityByEmail(ctx context.Context, email string) (*identity.Identity, error) {
	return first[identity.Identity]("get identity", r.db.WithContext(ctx).Where("email = ?", email))
}

func (r *DBIdentityRepo) CreateIdentity(ctx context.Context, id *identity.Identity) error {
	return translate("create identity", r.db.WithContext(ctx).Create(id).Error)
}

func (r *DBIdentityRepo) WithTx(tx *gorm.DB) IdentityRepo {
	if tx == nil {
		return r
	}
	return &DBIdentityRepo{db: tx}
}
