package jwtmw

import (
	"strings"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/platform/http/respond"
	"shop_backend/internal/shared/apperr"
	"shop_backend/internal/shared/role"
)

const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// TokenVerifier validates a bearer token.
type TokenVerifier interface {
	Verify(token string) (Identity, error)
}

var (
	errMissingBearer = apperr.Unauthenticated("missing bearer token")
	errAdminOnly     = apperr.Forbidden("administrator role required")
	errNotOwner      = apperr.Forbidden("not allowed to act for this user")
)

// AuthRequired rejects requests without a valid bearer token and stores the
// caller's identity in the gin context.
func AuthRequired(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			respond.Error(c, errMissingBearer)
			return
		}

		id, err := v.Verify(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			respond.Error(c, err)
			return
		}

		c.Set(ContextUserID, id.UserID)
		c.Set(ContextEmail, id.Email)
		c.Set(ContextRole, id.Role)
		c.Next()
	}
}

// RequireAdmin must run after AuthRequired.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !RoleOf(c).IsAdmin() {
			respond.Error(c, errAdminOnly)
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user id.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// RoleOf returns the authenticated role, or the zero role when absent.
func RoleOf(c *gin.Context) role.Role {
	if v, ok := c.Get(ContextRole); ok {
		if r, ok := v.(role.Role); ok {
			return r
		}
	}
	return 0
}

// CanActFor reports whether the caller is userID or an administrator.
func CanActFor(c *gin.Context, userID uint) bool {
	if RoleOf(c).IsAdmin() {
		return true
	}
	id, ok := UserID(c)
	return ok && id == userID
}

// EnsureCanActFor responds 403 and returns false when the caller may not act for userID.
func EnsureCanActFor(c *gin.Context, userID uint) bool {
	if CanActFor(c, userID) {
		return true
	}
	respond.Error(c, errNotOwner)
	return false
}
