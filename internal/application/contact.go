package application

import (
	"context"

	"github.com/linskybing/property-portal/internal/domain/contact"
	"github.com/linskybing/property-portal/internal/domain/validate"
	"github.com/linskybing/property-portal/internal/repository"
	"github.com/linskybing/property-portal/pkg/apperrors"
	"github.com/linskybing/property-portal/pkg/auth"
)

type ContactService struct {
	Repos *repository.Repos
}

func NewContactService(repos *repository.Repos) *ContactService {
	return &ContactService{Repos: repos}
}

func (s *ContactService) Submit(ctx context.Context, in contact.CreateMessageInput) (*contact.Message, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	m := in.Normalize()
	if err := s.Repos.Contact.CreateMessage(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *ContactService) List(ctx context.Context, sess *auth.Session) ([]contact.Message, error) {
	if !sess.IsAdmin() {
		return nil, apperrors.Forbidden("only admins may read contact messages")
	}
	return s.Repos.Contact.ListMessages(ctx)
}
