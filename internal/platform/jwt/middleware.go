package jwtmw

import (
	"strings"

	"github.com/gin-gonic/gin"

	"wtwr_backend/internal/platform/apperror"
)

// ContextUserID is the gin context key holding the authenticated account ID.
const ContextUserID = "userID"

const bearerPrefix = "Bearer "

// TokenVerifier decodes a token into an account ID.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// AuthRequired returns a Gin middleware function that validates JWT tokens
// and restricts access to authenticated users only.
// Failures are forwarded to the error middleware as Unauthorized.
func AuthRequired(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, bearerPrefix) {
			_ = c.Error(apperror.Unauthorized("Authorization required", nil))
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(auth, bearerPrefix)

		// 2. Verify signature and expiry, extract the subject
		userID, err := verifier.Verify(tokenStr)
		if err != nil {
			_ = c.Error(apperror.Unauthorized("Authorization required", err))
			c.Abort()
			return
		}

		// 3. Attach the identity and continue
		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID returns the authenticated account ID set by AuthRequired.
func UserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
