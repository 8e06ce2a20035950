package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/linskybing/property-portal/internal/domain/user"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	UserID uint      `json:"user_id"`
	AuthID string    `json:"auth_id"`
	Email  string    `json:"email"`
	Role   user.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies session tokens with an HMAC secret.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (m *TokenManager) TTL() time.Duration { return m.ttl }

// Issue returns a signed token and the session it encodes.
func (m *TokenManager) Issue(u *user.User) (string, Session, error) {
	now := m.now()
	claims := &Claims{
		UserID: u.ID,
		AuthID: u.AuthID,
		Email:  u.Email,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   u.AuthID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", Session{}, err
	}
	return signed, sessionFromClaims(claims), nil
}

// Parse validates signature, issuer and expiry.
func (m *TokenManager) Parse(tokenStr string) (Session, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !token.Valid {
		return Session{}, ErrInvalidToken
	}
	return sessionFromClaims(claims), nil
}

func sessionFromClaims(c *Claims) Session {
	s := Session{
		UserID:  c.UserID,
		AuthID:  c.AuthID,
		Email:   c.Email,
		Role:    c.Role,
		TokenID: c.ID,
	}
	if c.ExpiresAt != nil {
		s.ExpiresAt = c.ExpiresAt.Time
	}
	return s
}
