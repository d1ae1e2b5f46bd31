// Package adapters provides the GORM repository for wardrobe items.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wtwr_backend/internal/feature/items/domain"
	"wtwr_backend/internal/feature/items/domain/entity"
	"wtwr_backend/internal/feature/items/usecase"
)

// ItemGorm is the GORM implementation of usecase.ItemRepository.
type ItemGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure ItemGorm implements ItemRepository.
var _ usecase.ItemRepository = (*ItemGorm)(nil)

// NewItemGorm creates a new ItemGorm.
func NewItemGorm(db *gorm.DB) *ItemGorm {
	return &ItemGorm{db: db}
}

// Models returns the models to migrate for this repository.
func Models() []any {
	return []any{&ItemModel{}, &ItemLikeModel{}}
}

func preloadLikes(db *gorm.DB) *gorm.DB {
	return db.Preload("Likes", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("created_at ASC, user_id ASC")
	})
}

// List returns all items with their likes, oldest first.
func (r *ItemGorm) List(ctx context.Context) ([]entity.Item, error) {
	var models []ItemModel
	if err := preloadLikes(r.db.WithContext(ctx)).Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	items := make([]entity.Item, 0, len(models))
	for i := range models {
		items = append(items, *models[i].ToEntity())
	}
	return items, nil
}

// FindByID returns one item with its likes.
func (r *ItemGorm) FindByID(ctx context.Context, id string) (*entity.Item, error) {
	return findByID(r.db.WithContext(ctx), id)
}

func findByID(db *gorm.DB, id string) (*entity.Item, error) {
	var model ItemModel
	if err := preloadLikes(db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// Create inserts an item. Likes of a new item are always empty.
func (r *ItemGorm) Create(ctx context.Context, item *entity.Item) error {
	if item == nil {
		return errors.New("item is nil")
	}
	return r.db.WithContext(ctx).Create(ItemModelFromEntity(item)).Error
}

// Delete removes an item and its likes.
func (r *ItemGorm) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", id).Delete(&ItemLikeModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&ItemModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrItemNotFound
		}
		return nil
	})
}

// AddLike inserts (itemID, userID) into the likes set unless already present.
func (r *ItemGorm) AddLike(ctx context.Context, itemID, userID string) (*entity.Item, error) {
	var out *entity.Item
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, itemID); err != nil {
			return err
		}
		like := &ItemLikeModel{ItemID: itemID, UserID: userID, CreatedAt: time.Now().UTC()}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error; err != nil {
			return err
		}
		item, err := findByID(tx, itemID)
		out = item
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveLike deletes (itemID, userID) from the likes set. Removing an absent like is not an error.
func (r *ItemGorm) RemoveLike(ctx context.Context, itemID, userID string) (*entity.Item, error) {
	var out *entity.Item
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, itemID); err != nil {
			return err
		}
		if err := tx.Where("item_id = ? AND user_id = ?", itemID, userID).Delete(&ItemLikeModel{}).Error; err != nil {
			return err
		}
		item, err := findByID(tx, itemID)
		out = item
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func ensureExists(tx *gorm.DB, itemID string) error {
	var count int64
	if err := tx.Model(&ItemModel{}).Where("id = ?", itemID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}
