// Package usecase implements the business logic for wardrobe items.
package usecase

import (
	"context"
	"fmt"
	"time"

	"wtwr_backend/internal/feature/items/domain"
	"wtwr_backend/internal/feature/items/domain/entity"
	"wtwr_backend/internal/platform/objectid"
)

// ItemRepository abstracts item storage.
// AddLike and RemoveLike must be atomic set operations and return the updated item,
// or domain.ErrItemNotFound when the item does not exist.
type ItemRepository interface {
	List(ctx context.Context) ([]entity.Item, error)
	FindByID(ctx context.Context, id string) (*entity.Item, error)
	Create(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id string) error
	AddLike(ctx context.Context, itemID, userID string) (*entity.Item, error)
	RemoveLike(ctx context.Context, itemID, userID string) (*entity.Item, error)
}

// CreateInput holds the client-supplied fields of a new item.
type CreateInput struct {
	Name     string
	Weather  entity.Weather
	ImageURL string
}

// ItemsUsecase provides item operations.
type ItemsUsecase struct {
	repo ItemRepository
	now  func() time.Time
}

// NewItemsUsecase creates a new ItemsUsecase.
func NewItemsUsecase(repo ItemRepository) *ItemsUsecase {
	return &ItemsUsecase{repo: repo, now: time.Now}
}

// ListItems returns every item.
func (u *ItemsUsecase) ListItems(ctx context.Context) ([]entity.Item, error) {
	return u.repo.List(ctx)
}

// GetItem returns one item or domain.ErrItemNotFound.
func (u *ItemsUsecase) GetItem(ctx context.Context, id string) (*entity.Item, error) {
	return u.repo.FindByID(ctx, id)
}

// CreateItem stores a new item owned by ownerID, which always comes from the authenticated identity.
func (u *ItemsUsecase) CreateItem(ctx context.Context, ownerID string, in CreateInput) (*entity.Item, error) {
	item := &entity.Item{
		ID:        objectid.New(),
		Name:      in.Name,
		Weather:   in.Weather,
		ImageURL:  in.ImageURL,
		Owner:     ownerID,
		Likes:     []string{},
		CreatedAt: u.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidItem, err)
	}
	if err := u.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem removes an item if userID owns it and returns the removed item.
// A non-owner gets domain.ErrNotOwner and the item is left in place.
func (u *ItemsUsecase) DeleteItem(ctx context.Context, userID, itemID string) (*entity.Item, error) {
	item, err := u.repo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.IsOwnedBy(userID) {
		return nil, domain.ErrNotOwner
	}
	if err := u.repo.Delete(ctx, itemID); err != nil {
		return nil, err
	}
	return item, nil
}

// LikeItem adds userID to the likes set. Any authenticated account may like any item.
func (u *ItemsUsecase) LikeItem(ctx context.Context, userID, itemID string) (*entity.Item, error) {
	return u.repo.AddLike(ctx, itemID, userID)
}

// UnlikeItem removes userID from the likes set. Unliking an item that was never liked is a no-op.
func (u *ItemsUsecase) UnlikeItem(ctx context.Context, userID, itemID string) (*entity.Item, error) {
	return u.repo.RemoveLike(ctx, itemID, userID)
}
