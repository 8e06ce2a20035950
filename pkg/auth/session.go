package auth

import (
	"time"

	"github.com/linskybing/property-portal/internal/domain/user"
)

// Session is the authenticated caller of one request. It travels in the gin
// context and is passed explicitly into application services.
type Session struct {
	UserID    uint
	AuthID    string
	Email     string
	Role      user.Role
	TokenID   string
	ExpiresAt time.Time
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == user.RoleAdmin
}

// IsStaff reports whether the session belongs to an admin or an agent.
func (s *Session) IsStaff() bool {
	return s != nil && (s.Role == user.RoleAdmin || s.Role == user.RoleAgent)
}

func (s *Session) HasRole(roles ...user.Role) bool {
	if s == nil {
		return false
	}
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}
