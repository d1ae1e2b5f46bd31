package middleware

import (
	"github.com/gin-gonic/gin"

	"wtwr_backend/internal/platform/apperror"
	"wtwr_backend/internal/platform/objectid"
)

// InvalidIDMessage is returned when a path identifier is malformed.
const InvalidIDMessage = InvalidDataMessage

// ValidateObjectID rejects requests whose path parameter is not a well-formed identifier.
func ValidateObjectID(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !objectid.IsValid(c.Param(param)) {
			_ = c.Error(apperror.BadRequest(InvalidIDMessage, nil))
			c.Abort()
			return
		}
		c.Next()
	}
}
