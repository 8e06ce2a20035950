package application

import (
	"context"
	"strconv"

	"github.com/linskybing/property-portal/internal/domain/audit"
	"github.com/linskybing/property-portal/internal/domain/property"
	"github.com/linskybing/property-portal/internal/domain/user"
	"github.com/linskybing/property-portal/internal/domain/validate"
	"github.com/linskybing/property-portal/internal/repository"
	"github.com/linskybing/property-portal/pkg/apperrors"
	"github.com/linskybing/property-portal/pkg/auth"
)

type PropertyService struct {
	Repos *repository.Repos
	audit *AuditService
}

func NewPropertyService(repos *repository.Repos, audit *AuditService) *PropertyService {
	return &PropertyService{
		Repos: repos,
		audit: audit,
	}
}

func idString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func (s *PropertyService) FetchProperties(ctx context.Context, filter repository.PropertyFilter) ([]property.Property, error) {
	return s.Repos.Property.GetProperties(ctx, filter)
}

func (s *PropertyService) GetProperty(ctx context.Context, id uint) (*property.Property, error) {
	p, err := s.Repos.Property.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NotFound("Property", id)
	}
	return p, nil
}

// CreateProperty inserts a listing. Landlords always own what they create;
// agents default to managing it.
func (s *PropertyService) CreateProperty(ctx context.Context, sess *auth.Session, in property.CreatePropertyInput) (*property.Property, error) {
	if !sess.HasRole(user.RoleAdmin, user.RoleAgent, user.RoleLandlord) {
		return nil, apperrors.Forbidden("only landlords, agents and admins may create properties")
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	p := in.Normalize()
	if in.TouchesPricing() {
		if err := property.CheckPricing(p.Status, p.Rent, p.Price); err != nil {
			return nil, err
		}
	}

	switch sess.Role {
	case user.RoleLandlord:
		p.LandlordID = &sess.UserID
	case user.RoleAgent:
		if p.AgentID == nil {
			p.AgentID = &sess.UserID
		}
	}

	if err := s.Repos.Property.CreateProperty(ctx, p); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, audit.ActionCreate, "property", idString(p.ID), nil, p, "property created")
	return p, nil
}

func canManage(sess *auth.Session, p *property.Property) bool {
	switch {
	case sess.IsAdmin():
		return true
	case sess == nil:
		return false
	case sess.Role == user.RoleLandlord:
		return p.LandlordID != nil && *p.LandlordID == sess.UserID
	case sess.Role == user.RoleAgent:
		return p.AgentID != nil && *p.AgentID == sess.UserID
	default:
		return false
	}
}

// UpdateProperty applies a partial update. The pricing rule is checked on
// the merged row whenever the patch touches status, rent or price.
func (s *PropertyService) UpdateProperty(ctx context.Context, sess *auth.Session, id uint, in property.UpdatePropertyInput) (*property.Property, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	before, err := s.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canManage(sess, before) {
		return nil, apperrors.Forbidden("you may only edit properties you own or manage")
	}
	if !sess.IsAdmin() && (in.LandlordID != nil || in.AgentID != nil) {
		return nil, apperrors.Forbidden("only admins may reassign property ownership")
	}

	if in.TouchesPricing() {
		merged := in.Apply(*before)
		if err := property.CheckPricing(merged.Status, merged.Rent, merged.Price); err != nil {
			return nil, err
		}
	}

	changes := in.Changes()
	if len(changes) == 0 {
		return before, nil
	}

	after, err := s.Repos.Property.UpdateProperty(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, audit.ActionUpdate, "property", idString(id), before, after, "property updated")
	return after, nil
}

func (s *PropertyService) DeleteProperty(ctx context.Context, sess *auth.Session, id uint) error {
	if !sess.IsAdmin() {
		return apperrors.Forbidden("only admins may delete properties")
	}
	before, err := s.GetProperty(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repos.Property.DeleteProperty(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, audit.ActionDelete, "property", idString(id), before, nil, "property deleted")
	return nil
}
