// Package handler provides the HTTP handlers of the users feature.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wtwr_backend/internal/feature/auth/domain"
	"wtwr_backend/internal/feature/auth/domain/entity"
	authdto "wtwr_backend/internal/feature/auth/transport/http/dto"
	"wtwr_backend/internal/feature/users/transport/http/dto"
	"wtwr_backend/internal/feature/users/usecase"
	"wtwr_backend/internal/platform/apperror"
	"wtwr_backend/internal/platform/http/middleware"
	jwtmw "wtwr_backend/internal/platform/jwt"
)

const msgInvalidData = "Invalid data"

// UsersUsecase defines the account operations the handler needs.
type UsersUsecase interface {
	ListUsers(ctx context.Context) ([]entity.User, error)
	GetUser(ctx context.Context, id string) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID string, in usecase.ProfileInput) (*entity.User, error)
}

// UsersHandler serves /users routes. Every route requires authentication.
type UsersHandler struct {
	uc UsersUsecase
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(uc UsersUsecase) *UsersHandler {
	return &UsersHandler{uc: uc}
}

// List handles GET /users.
func (h *UsersHandler) List(c *gin.Context) {
	users, err := h.uc.ListUsers(c.Request.Context())
	if err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}
	out := make([]authdto.UserRes, 0, len(users))
	for i := range users {
		out = append(out, authdto.NewUserRes(&users[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /users/:id. The id is validated by middleware.ValidateObjectID.
func (h *UsersHandler) Get(c *gin.Context) {
	user, err := h.uc.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(classify(err))
		return
	}
	c.JSON(http.StatusOK, authdto.UserEnvelope{User: authdto.NewUserRes(user)})
}

// Me handles GET /users/me.
func (h *UsersHandler) Me(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		_ = c.Error(apperror.Unauthorized("Authorization required", nil))
		return
	}
	user, err := h.uc.GetUser(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(classify(err))
		return
	}
	c.JSON(http.StatusOK, authdto.UserEnvelope{User: authdto.NewUserRes(user)})
}

// UpdateMe handles PATCH /users/me. Only name and avatar of the caller are changed.
func (h *UsersHandler) UpdateMe(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		_ = c.Error(apperror.Unauthorized("Authorization required", nil))
		return
	}

	var req dto.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(middleware.BindingError(err, &req))
		return
	}

	user, err := h.uc.UpdateProfile(c.Request.Context(), userID, usecase.ProfileInput{
		Name:   req.Name,
		Avatar: req.Avatar,
	})
	if err != nil {
		_ = c.Error(classify(err))
		return
	}
	c.JSON(http.StatusOK, authdto.UserEnvelope{User: authdto.NewUserRes(user)})
}

func classify(err error) *apperror.Error {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return apperror.NotFound(middleware.NotFoundMessage, err)
	case errors.Is(err, domain.ErrInvalidUser):
		return apperror.BadRequest(msgInvalidData, err)
	default:
		return apperror.Internal(err)
	}
}
