// Package handler provides the HTTP handlers of the items feature.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wtwr_backend/internal/feature/items/domain"
	"wtwr_backend/internal/feature/items/domain/entity"
	"wtwr_backend/internal/feature/items/transport/http/dto"
	"wtwr_backend/internal/feature/items/usecase"
	"wtwr_backend/internal/platform/apperror"
	"wtwr_backend/internal/platform/http/middleware"
	jwtmw "wtwr_backend/internal/platform/jwt"
)

const (
	msgInvalidData = "Invalid data"
	msgForbidden   = "Forbidden"
	msgAuthNeeded  = "Authorization required"
)

// ItemsUsecase defines the item operations the handler needs.
type ItemsUsecase interface {
	ListItems(ctx context.Context) ([]entity.Item, error)
	GetItem(ctx context.Context, id string) (*entity.Item, error)
	CreateItem(ctx context.Context, ownerID string, in usecase.CreateInput) (*entity.Item, error)
	DeleteItem(ctx context.Context, userID, itemID string) (*entity.Item, error)
	LikeItem(ctx context.Context, userID, itemID string) (*entity.Item, error)
	UnlikeItem(ctx context.Context, userID, itemID string) (*entity.Item, error)
}

// ItemsHandler serves /items routes.
// Read routes are public; writes expect jwtmw.AuthRequired and middleware.ValidateObjectID in front.
type ItemsHandler struct {
	uc ItemsUsecase
}

// NewItemsHandler creates a new ItemsHandler.
func NewItemsHandler(uc ItemsUsecase) *ItemsHandler {
	return &ItemsHandler{uc: uc}
}

// List handles GET /items.
func (h *ItemsHandler) List(c *gin.Context) {
	items, err := h.uc.ListItems(c.Request.Context())
	if err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}
	c.JSON(http.StatusOK, dto.NewItemList(items))
}

// Get handles GET /items/:id.
func (h *ItemsHandler) Get(c *gin.Context) {
	item, err := h.uc.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(classify(err))
		return
	}
	c.JSON(http.StatusOK, dto.NewItemRes(item))
}

// Create handles POST /items. The owner is the authenticated caller.
func (h *ItemsHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		_ = c.Error(apperror.Unauthorized(msgAuthNeeded, nil))
		return
	}

	var req dto.CreateItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(middleware.BindingError(err, &req))
		return
	}

	item, err := h.uc.CreateItem(c.Request.Context(), userID, usecase.CreateInput{
		Name:     req.Name,
		Weather:  entity.Weather(req.Weather),
		ImageURL: req.ImageURL,
	})
	if err != nil {
		_ = c.Error(classify(err))
		return
	}
	c.JSON(http.StatusCreated, dto.NewItemRes(item))
}

// Delete handles DELETE /items/:id and answers with the removed item.
func (h *ItemsHandler) Delete(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		_ = c.Error(apperror.Unauthorized(msgAuthNeeded, nil))
		return
	}
	item, err := h.uc.DeleteItem(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		_ = c.Error(classify(err))
		return
	}
	c.JSON(http.StatusOK, dto.DataEnvelope{Data: dto.NewItemRes(item)})
}

// Like handles PUT /items/:id/likes.
func (h *ItemsHandler) Like(c *gin.Context) {
	h.toggleLike(c, h.uc.LikeItem)
}

// Unlike handles DELETE /items/:id/likes.
func (h *ItemsHandler) Unlike(c *gin.Context) {
	h.toggleLike(c, h.uc.UnlikeItem)
}

func (h *ItemsHandler) toggleLike(c *gin.Context, op func(ctx context.Context, userID, itemID string) (*entity.Item, error)) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		_ = c.Error(apperror.Unauthorized(msgAuthNeeded, nil))
		return
	}
	item, err := op(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		_ = c.Error(classify(err))
		return
	}
	c.JSON(http.StatusOK, dto.NewItemRes(item))
}

func classify(err error) *apperror.Error {
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return apperror.NotFound(middleware.NotFoundMessage, err)
	case errors.Is(err, domain.ErrNotOwner):
		return apperror.Forbidden(msgForbidden, err)
	case errors.Is(err, domain.ErrInvalidItem):
		return apperror.BadRequest(msgInvalidData, err)
	default:
		return apperror.Internal(err)
	}
}
