package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/property-portal/internal/domain/audit"
	"github.com/linskybing/property-portal/internal/domain/user"
	"github.com/linskybing/property-portal/pkg/apperrors"
	"github.com/linskybing/property-portal/pkg/auth"
	"github.com/linskybing/property-portal/pkg/response"
	"go.uber.org/zap"
)

const (
	sessionKey   = "session"
	userIDKey    = "user_id"
	authErrorKey = "auth_error"
)

// TokenVerifier turns a raw token into a session.
type TokenVerifier interface {
	Authenticate(ctx context.Context, token string) (*auth.Session, error)
}

// tokenFrom reads a Bearer header, then the token cookie, then the token
// query parameter (browsers cannot set headers on websocket upgrades).
func tokenFrom(c *gin.Context) (string, bool) {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return "", true
		}
		return strings.TrimSpace(parts[1]), true
	}
	if cookie, err := c.Cookie("token"); err == nil && cookie != "" {
		return cookie, true
	}
	if strings.EqualFold(c.GetHeader("Upgrade"), "websocket") {
		if q := c.Query("token"); q != "" {
			return q, true
		}
	}
	return "", false
}

// Session attaches the caller's session when a valid credential is present.
// Requests without one continue anonymously; the reason a credential was
// rejected is kept for RequireSession to report.
func Session(verifier TokenVerifier, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := audit.Actor{IPAddress: c.ClientIP(), UserAgent: c.GetHeader("User-Agent")}
		anonymous := func(reason string) {
			if reason != "" {
				c.Set(authErrorKey, reason)
			}
			c.Request = c.Request.WithContext(audit.WithActor(c.Request.Context(), actor))
			c.Next()
		}

		token, present := tokenFrom(c)
		if !present {
			anonymous("")
			return
		}
		if token == "" {
			anonymous("Authorization header format must be Bearer {token}")
			return
		}

		sess, err := verifier.Authenticate(c.Request.Context(), token)
		if err != nil {
			var aerr *apperrors.AuthError
			if errors.As(err, &aerr) {
				anonymous(aerr.Reason)
				return
			}
			logger.Error("session lookup failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Internal server error"})
			return
		}

		actor.UserID = &sess.UserID
		c.Request = c.Request.WithContext(audit.WithActor(c.Request.Context(), actor))
		c.Set(sessionKey, sess)
		c.Set(userIDKey, sess.UserID)
		c.Next()
	}
}

// SessionFrom returns the request's session or nil.
func SessionFrom(c *gin.Context) *auth.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*auth.Session)
	return sess
}

func unauthorized(c *gin.Context) {
	reason := c.GetString(authErrorKey)
	if reason == "" {
		reason = "Authorization required (header or cookie)"
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: reason})
}

// RequireSession rejects anonymous requests.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if SessionFrom(c) == nil {
			unauthorized(c)
			return
		}
		c.Next()
	}
}

// RequireRoles rejects sessions whose role is not listed.
func RequireRoles(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := SessionFrom(c)
		if sess == nil {
			unauthorized(c)
			return
		}
		if !sess.HasRole(roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "insufficient role"})
			return
		}
		c.Next()
	}
}

// Admin is RequireRoles(admin).
func Admin() gin.HandlerFunc {
	return RequireRoles(user.RoleAdmin)
}
