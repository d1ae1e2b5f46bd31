// Package router builds the gin engine and registers every route.
package router

import (
	"github.com/gin-gonic/gin"

	"wtwr_backend/internal/app/di"
	"wtwr_backend/internal/platform/http/handler"
	"wtwr_backend/internal/platform/http/middleware"
	jwtmw "wtwr_backend/internal/platform/jwt"
)

// NewRouter registers public and authenticated routes on a new engine.
func NewRouter(c *di.Container, health *handler.HealthHandler) *gin.Engine {
	r := gin.New()
	// Recovery sits inside ErrorHandler so panics are rendered like any other Internal error
	r.Use(middleware.RequestLogger(), middleware.ErrorHandler(), middleware.Recovery())
	r.NoRoute(middleware.NoRoute)

	authRequired := jwtmw.AuthRequired(c.Verifier)
	validID := middleware.ValidateObjectID("id")

	// Public
	r.GET("/healthz", health.Health)
	r.HEAD("/healthz", health.Health)
	r.OPTIONS("/healthz", health.Health)
	r.POST("/signup", c.Auth.Signup)
	r.POST("/signin", c.Auth.Signin)
	r.GET("/items", c.Items.List)
	r.GET("/items/:id", validID, c.Items.Get)

	// Authenticated item routes
	items := r.Group("/items", authRequired)
	{
		items.POST("", c.Items.Create)
		items.DELETE("/:id", validID, c.Items.Delete)
		items.PUT("/:id/likes", validID, c.Items.Like)
		items.DELETE("/:id/likes", validID, c.Items.Unlike)
	}

	users := r.Group("/users", authRequired)
	{
		users.GET("", c.Users.List)
		users.GET("/me", c.Users.Me)
		users.PATCH("/me", c.Users.UpdateMe)
		users.GET("/:id", validID, c.Users.Get)
	}

	return r
}
