// Package middleware provides the gin middlewares shared by every route:
// request logging, path parameter validation and terminal error rendering.
package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"wtwr_backend/internal/platform/apperror"
)

// NotFoundMessage is returned for unknown routes and missing records.
const NotFoundMessage = "Requested resource not found"

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// ErrorHandler is the terminal error stage. Handlers attach failures with c.Error;
// after the chain completes the last error is logged and rendered as
// {"message": ...} with the status of its apperror.Kind. Unclassified errors
// become a 500 with a generic message.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status, msg := apperror.Resolve(err)

		attrs := []any{
			"error", err,
			"kind", apperror.KindOf(err).String(),
			"status", status,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(ContextRequestID),
		}
		if status >= 500 {
			slog.Error("request failed", attrs...)
		} else {
			slog.Warn("request rejected", attrs...)
		}

		if c.Writer.Written() {
			return
		}
		c.AbortWithStatusJSON(status, ErrorResponse{Message: msg})
	}
}

// NoRoute forwards unmatched routes to the error pipeline as NotFound.
func NoRoute(c *gin.Context) {
	_ = c.Error(apperror.NotFound(NotFoundMessage, nil))
}
