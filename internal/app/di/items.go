// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	itemadapters "wtwr_backend/internal/feature/items/adapters"
	"wtwr_backend/internal/feature/items/usecase"
	"wtwr_backend/internal/platform/cache"
)

// NewItemRepository creates an ItemRepository implementation.
// If Redis is available, the GORM repository is wrapped with a read cache.
// Otherwise, it talks to the database directly.
func NewItemRepository(db *gorm.DB, rdb *redis.Client, ttl time.Duration) usecase.ItemRepository {
	repo := itemadapters.NewItemGorm(db)
	if rdb != nil {
		return cache.NewCachingItemRepository(rdb, ttl, repo, "items")
	}
	return repo
}
