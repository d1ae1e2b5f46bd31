// Package handler provides the HTTP handlers of the auth feature.
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"wtwr_backend/internal/feature/auth/domain"
	"wtwr_backend/internal/feature/auth/domain/entity"
	"wtwr_backend/internal/feature/auth/transport/http/dto"
	"wtwr_backend/internal/feature/auth/usecase"
	"wtwr_backend/internal/platform/apperror"
	"wtwr_backend/internal/platform/http/middleware"
)

const (
	msgInvalidData        = "Invalid data"
	msgDuplicateEmail     = "User with this email already exists"
	msgInvalidCredentials = "Incorrect email or password"
)

// AuthUsecase defines the auth operations the handler needs.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	Signup(ctx context.Context, in usecase.SignupInput) (*entity.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler handles signup and signin.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles POST /signup.
//   - invalid body: 400 naming the first invalid field
//   - duplicate email: 409
//   - success: 201 with the public account view
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(middleware.BindingError(err, &req))
		return
	}

	user, err := h.auth.Signup(c.Request.Context(), usecase.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Avatar:   req.Avatar,
	})
	if err != nil {
		_ = c.Error(classify(err))
		return
	}

	slog.Info("user signup successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.UserEnvelope{User: dto.NewUserRes(user)})
}

// Signin handles POST /signin.
//   - malformed JSON: 400
//   - missing field or bad credentials: 401 with one generic message
//   - success: 200 with the token
func (h *AuthHandler) Signin(c *gin.Context) {
	var req dto.LoginReq
	// An empty body is treated like missing credentials
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		_ = c.Error(apperror.BadRequest(msgInvalidData, err))
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		_ = c.Error(classify(err))
		return
	}

	slog.Info("user signin successful", "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenRes{Token: token})
}

// classify maps usecase errors to the apperror taxonomy.
func classify(err error) *apperror.Error {
	switch {
	case errors.Is(err, domain.ErrInvalidUser):
		return apperror.BadRequest(msgInvalidData, err)
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return apperror.Conflict(msgDuplicateEmail, err)
	case errors.Is(err, domain.ErrInvalidCredentials):
		return apperror.Unauthorized(msgInvalidCredentials, err)
	default:
		return apperror.Internal(err)
	}
}
