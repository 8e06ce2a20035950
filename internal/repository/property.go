package repository

import (
	"context"

	"github.com/linskybing/property-portal/internal/domain/property"
	"github.com/linskybing/property-portal/internal/domain/user"
	"github.com/linskybing/property-portal/pkg/apperrors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OwnerScope says which ownership column a property listing is filtered on.
type OwnerScope int

const (
	// OwnerScopeNone applies no ownership filter.
	OwnerScopeNone OwnerScope = iota
	OwnerScopeLandlord
	OwnerScopeAgent
)

type PropertyFilter struct {
	OwnerID  *uint
	Role     *user.Role
	Featured *bool
	Status   *property.Status
	City     *string
}

// Scope resolves the ownership filter. Only landlords and agents own
// listings; any other role, or a missing owner id, lists every row.
func (f PropertyFilter) Scope() OwnerScope {
	if f.OwnerID == nil || f.Role == nil {
		return OwnerScopeNone
	}
	switch *f.Role {
	case user.RoleLandlord:
		return OwnerScopeLandlord
	case user.RoleAgent:
		return OwnerScopeAgent
	default:
		return OwnerScopeNone
	}
}

type PropertyRepo interface {
	GetProperties(ctx context.Context, filter PropertyFilter) ([]property.Property, error)
	GetProperty(ctx context.Context, id uint) (*property.Property, error)
	CreateProperty(ctx context.Context, p *property.Property) error
	UpdateProperty(ctx context.Context, id uint, changes map[string]any) (*property.Property, error)
	DeleteProperty(ctx context.Context, id uint) error
	WithTx(tx *gorm.DB) PropertyRepo
}

type DBPropertyRepo struct {
	db *gorm.DB
}

func NewPropertyRepo(db *gorm.DB) *DBPropertyRepo {
	return &DBPropertyRepo{
		db: db,
	}
}

func (r *DBPropertyRepo) GetProperties(ctx context.Context, filter PropertyFilter) ([]property.Property, error) {
	q := r.db.WithContext(ctx).Model(&property.Property{})

	switch filter.Scope() {
	case OwnerScopeLandlord:
		q = q.Where("landlord_id = ?", *filter.OwnerID)
	case OwnerScopeAgent:
		q = q.Where("agent_id = ?", *filter.OwnerID)
	case OwnerScopeNone:
		if filter.OwnerID != nil {
			zap.L().Debug("owner id ignored for role without listings",
				zap.Uint("owner_id", *filter.OwnerID),
				zap.Any("role", filter.Role))
		}
	}

	if filter.Featured != nil {
		q = q.Where("featured = ?", *filter.Featured)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.City != nil {
		q = q.Where("LOWER(city) = LOWER(?)", *filter.City)
	}

	var props []property.Property
	if err := q.Order("created_at DESC").Order("id DESC").Find(&props).Error; err != nil {
		return nil, translate("list properties", err)
	}
	return props, nil
}

func (r *DBPropertyRepo) GetProperty(ctx context.Context, id uint) (*property.Property, error) {
	return first[property.Property]("get property", r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *DBPropertyRepo) CreateProperty(ctx context.Context, p *property.Property) error {
	return translate("create property", r.db.WithContext(ctx).Omit("Landlord", "Agent").Create(p).Error)
}

func (r *DBPropertyRepo) UpdateProperty(ctx context.Context, id uint, changes map[string]any) (*property.Property, error) {
	if len(changes) > 0 {
		res := r.db.WithContext(ctx).Model(&property.Property{}).Where("id = ?", id).Updates(changes)
		if res.Error != nil {
			return nil, translate("update property", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, apperrors.NotFound("Property", id)
		}
	}
	p, err := r.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NotFound("Property", id)
	}
	return p, nil
}

func (r *DBPropertyRepo) DeleteProperty(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&property.Property{}, id)
	if res.Error != nil {
		return translate("delete property", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Property", id)
	}
	return nil
}

func (r *DBPropertyRepo) WithTx(tx *gorm.DB) PropertyRepo {
	if tx == nil {
		return r
	}
	return &DBPropertyRepo{
		db: tx,
	}
}
