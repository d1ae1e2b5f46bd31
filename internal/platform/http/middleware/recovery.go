package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"wtwr_backend/internal/platform/apperror"
)

// Recovery converts a panic into an Internal error so ErrorHandler renders the
// generic 500 body. It must be registered after ErrorHandler.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		_ = c.Error(apperror.Internal(fmt.Errorf("panic: %v", recovered)))
		c.Abort()
	})
}
