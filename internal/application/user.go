package application

import (
	"context"

	"github.com/linskybing/property-portal/internal/domain/audit"
	"github.com/linskybing/property-portal/internal/domain/user"
	"github.com/linskybing/property-portal/internal/domain/validate"
	"github.com/linskybing/property-portal/internal/repository"
	"github.com/linskybing/property-portal/pkg/apperrors"
	"github.com/linskybing/property-portal/pkg/auth"
)

type UserService struct {
	Repos *repository.Repos
	audit *AuditService
}

func NewUserService(repos *repository.Repos, audit *AuditService) *UserService {
	return &UserService{
		Repos: repos,
		audit: audit,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*user.User, error) {
	u, err := s.Repos.User.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperrors.NotFound("User", id)
	}
	return u, nil
}

// UpdateUser lets a user edit their own profile. Admins may edit anyone and
// are the only ones allowed to change a role.
func (s *UserService) UpdateUser(ctx context.Context, sess *auth.Session, id uint, in user.UpdateUserInput) (*user.User, error) {
	if !sess.IsAdmin() && (sess == nil || sess.UserID != id) {
		return nil, apperrors.Forbidden("you may only edit your own profile")
	}
	if in.Role != nil && !sess.IsAdmin() {
		return nil, apperrors.Forbidden("only admins may change roles")
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	before, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := in.Changes()
	if len(changes) == 0 {
		return before, nil
	}

	after, err := s.Repos.User.UpdateUser(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, audit.ActionUpdate, "user", idString(id), before, after, "user profile updated")
	return after, nil
}

func (s *UserService) ListUsers(ctx context.Context, sess *auth.Session, role *user.Role) ([]user.User, error) {
	if !sess.IsAdmin() {
		return nil, apperrors.Forbidden("only admins may list users")
	}
	if role != nil && !role.Valid() {
		return nil, apperrors.Invalid("role", "user_role", "role must be one of [admin agent landlord tenant]")
	}
	return s.Repos.User.ListUsers(ctx, role)
}
