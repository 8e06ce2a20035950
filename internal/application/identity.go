package application

import (
	"context"
	"errors"

	"github.com/linskybing/property-portal/internal/domain/identity"
	"github.com/linskybing/property-portal/internal/domain/user"
	"github.com/linskybing/property-portal/internal/repository"
	"github.com/linskybing/property-portal/pkg/apperrors"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = &apperrors.AuthError{Reason: "invalid email or password"}
	ErrProfileMissing     = &apperrors.AuthError{Reason: "profile not found for authenticated identity"}
	ErrEmailTaken         = &apperrors.ConstraintError{Kind: apperrors.ConstraintUnique, Constraint: "email", Err: errors.New("email already registered")}
)

// IdentityProvider owns credentials. It receives the repositories of the
// caller so sign-up can join the caller's transaction.
type IdentityProvider interface {
	SignUp(ctx context.Context, repos *repository.Repos, email, password string) (*identity.Identity, error)
	SignIn(ctx context.Context, repos *repository.Repos, email, password string) (*identity.Identity, error)
}

// LocalIdentityProvider stores bcrypt hashes in the auth_identities table.
type LocalIdentityProvider struct {
	cost int
}

func NewLocalIdentityProvider(cost int) *LocalIdentityProvider {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &LocalIdentityProvider{cost: cost}
}

func (p *LocalIdentityProvider) SignUp(ctx context.Context, repos *repository.Repos, email, password string) (*identity.Identity, error) {
	email = user.NormalizeEmail(email)

	existing, err := repos.Identity.GetIdentityByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return nil, err
	}

	id := &identity.Identity{Email: email, PasswordHash: string(hashed)}
	if err := repos.Identity.CreateIdentity(ctx, id); err != nil {
		return nil, err
	}
	return id, nil
}

func (p *LocalIdentityProvider) SignIn(ctx context.Context, repos *repository.Repos, email, password string) (*identity.Identity, error) {
	id, err := repos.Identity.GetIdentityByEmail(ctx, user.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if id == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(id.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return id, nil
}
