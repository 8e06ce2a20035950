package repository

import (
	"context"

	"github.com/linskybing/property-portal/internal/domain/user"
	"github.com/linskybing/property-portal/pkg/apperrors"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetUser(ctx context.Context, id uint) (*user.User, error)
	GetUserByEmail(ctx context.Context, email string) (*user.User, error)
	GetUserByAuthID(ctx context.Context, authID string) (*user.User, error)
	ListUsers(ctx context.Context, role *user.Role) ([]user.User, error)
	CreateUser(ctx context.Context, u *user.User) error
	UpdateUser(ctx context.Context, id uint, changes map[string]any) (*user.User, error)
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) GetUser(ctx context.Context, id uint) (*user.User, error) {
	return first[user.User]("get user", r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *DBUserRepo) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	return first[user.User]("get user by email", r.db.WithContext(ctx).Where("email = ?", user.NormalizeEmail(email)))
}

func (r *DBUserRepo) GetUserByAuthID(ctx context.Context, authID string) (*user.User, error) {
	return first[user.User]("get user by auth id", r.db.WithContext(ctx).Where("auth_id = ?", authID))
}

func (r *DBUserRepo) ListUsers(ctx context.Context, role *user.Role) ([]user.User, error) {
	var users []user.User
	q := r.db.WithContext(ctx).Order("id ASC")
	if role != nil {
		q = q.Where("role = ?", *role)
	}
	if err := q.Find(&users).Error; err != nil {
		return nil, translate("list users", err)
	}
	return users, nil
}

func (r *DBUserRepo) CreateUser(ctx context.Context, u *user.User) error {
	return translate("create user", r.db.WithContext(ctx).Create(u).Error)
}

func (r *DBUserRepo) UpdateUser(ctx context.Context, id uint, changes map[string]any) (*user.User, error) {
	if len(changes) > 0 {
		res := r.db.WithContext(ctx).Model(&user.User{}).Where("id = ?", id).Updates(changes)
		if res.Error != nil {
			return nil, translate("update user", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, apperrors.NotFound("User", id)
		}
	}
	u, err := r.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperrors.NotFound("User", id)
	}
	return u, nil
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{
		db: tx,
	}
}
