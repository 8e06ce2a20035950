package application

import (
	"context"
	"errors"
	"strconv"

	"github.com/linskybing/property-portal/internal/domain/audit"
	"github.com/linskybing/property-portal/internal/domain/user"
	"github.com/linskybing/property-portal/internal/domain/validate"
	"github.com/linskybing/property-portal/internal/repository"
	"github.com/linskybing/property-portal/pkg/apperrors"
	"github.com/linskybing/property-portal/pkg/auth"
)

var (
	ErrInvalidToken = &apperrors.AuthError{Reason: "invalid or expired token"}
	ErrTokenRevoked = &apperrors.AuthError{Reason: "token has been revoked"}
)

// Authenticator is the session capability set used by the HTTP layer.
type Authenticator interface {
	Register(ctx context.Context, in user.RegisterInput) (*user.User, string, error)
	Login(ctx context.Context, in user.LoginInput) (*user.User, string, error)
	Logout(ctx context.Context, sess *auth.Session) error
	CurrentUser(ctx context.Context, sess *auth.Session) (*user.User, error)
	Authenticate(ctx context.Context, token string) (*auth.Session, error)
}

type AuthService struct {
	Repos      *repository.Repos
	identities IdentityProvider
	tokens     *auth.TokenManager
	revoker    auth.Revoker
	audit      *AuditService
}

var _ Authenticator = (*AuthService)(nil)

func NewAuthService(repos *repository.Repos, identities IdentityProvider, tokens *auth.TokenManager, revoker auth.Revoker, audit *AuditService) *AuthService {
	return &AuthService{
		Repos:      repos,
		identities: identities,
		tokens:     tokens,
		revoker:    revoker,
		audit:      audit,
	}
}

// Register creates the identity and its profile in one transaction.
func (s *AuthService) Register(ctx context.Context, in user.RegisterInput) (*user.User, string, error) {
	if err := validate.Struct(in); err != nil {
		return nil, "", err
	}

	var profile *user.User
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		id, err := s.identities.SignUp(ctx, tx, in.Email, in.Password)
		if err != nil {
			return err
		}
		profile = in.Profile(id.ID.String())
		return tx.User.CreateUser(ctx, profile)
	})
	if err != nil {
		return nil, "", err
	}

	token, _, err := s.tokens.Issue(profile)
	if err != nil {
		return nil, "", err
	}

	s.audit.Record(audit.WithActor(ctx, withUser(ctx, profile.ID)), audit.ActionCreate, "user", strconv.FormatUint(uint64(profile.ID), 10), nil, profile, "user registered")
	return profile, token, nil
}

func (s *AuthService) Login(ctx context.Context, in user.LoginInput) (*user.User, string, error) {
	if err := validate.Struct(in); err != nil {
		return nil, "", err
	}

	id, err := s.identities.SignIn(ctx, s.Repos, in.Email, in.Password)
	if err != nil {
		return nil, "", err
	}

	profile, err := s.Repos.User.GetUserByAuthID(ctx, id.ID.String())
	if err != nil {
		return nil, "", err
	}
	if profile == nil {
		return nil, "", ErrProfileMissing
	}

	token, _, err := s.tokens.Issue(profile)
	if err != nil {
		return nil, "", err
	}

	s.audit.Record(audit.WithActor(ctx, withUser(ctx, profile.ID)), audit.ActionLogin, "user", strconv.FormatUint(uint64(profile.ID), 10), nil, nil, "user logged in")
	return profile, token, nil
}

// Logout revokes the session token until it would have expired.
func (s *AuthService) Logout(ctx context.Context, sess *auth.Session) error {
	if sess == nil {
		return ErrInvalidToken
	}
	if err := s.revoker.Revoke(ctx, sess.TokenID, sess.ExpiresAt); err != nil {
		return err
	}
	s.audit.Record(ctx, audit.ActionLogout, "user", strconv.FormatUint(uint64(sess.UserID), 10), nil, nil, "user logged out")
	return nil
}

func (s *AuthService) CurrentUser(ctx context.Context, sess *auth.Session) (*user.User, error) {
	if sess == nil {
		return nil, ErrInvalidToken
	}
	u, err := s.Repos.User.GetUser(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrProfileMissing
	}
	return u, nil
}

// Authenticate verifies a bearer token and rejects revoked ones. The role
// is read from the stored profile so role changes apply to live tokens.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*auth.Session, error) {
	sess, err := s.tokens.Parse(token)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	revoked, err := s.revoker.IsRevoked(ctx, sess.TokenID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	profile, err := s.Repos.User.GetUser(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil || profile.AuthID != sess.AuthID {
		return nil, ErrInvalidToken
	}
	sess.Role = profile.Role
	sess.Email = profile.Email
	return &sess, nil
}

func withUser(ctx context.Context, userID uint) audit.Actor {
	a := audit.ActorFrom(ctx)
	a.UserID = &userID
	return a
}

// TokenTTL is used by the HTTP layer to size the session cookie.
func (s *AuthService) TokenTTL() int {
	return int(s.tokens.TTL().Seconds())
}
