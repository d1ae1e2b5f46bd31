// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"wtwr_backend/internal/feature/items/domain/entity"
	"wtwr_backend/internal/feature/items/usecase"
)

// DefaultTTL is used when no positive TTL is configured.
const DefaultTTL = 5 * time.Minute

// storeIfCurrent writes KEYS[1] only while the generation in KEYS[2] still equals
// ARGV[1]. A missing generation counts as "0".
const storeIfCurrent = `
local cur = redis.call('GET', KEYS[2])
if not cur then cur = '0' end
if cur ~= ARGV[1] then return 0 end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
return 1
`

// CachingItemRepository decorates an ItemRepository with Redis caching.
// Reads are served from the cache when possible; every write bumps a generation
// counter and then invalidates the list entry and the entry of the touched item.
// A read that started before a write never stores its result, so a stale
// snapshot cannot outlive the invalidation.
type CachingItemRepository struct {
	inner     usecase.ItemRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingItemRepository decorates an ItemRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "items".
func NewCachingItemRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ItemRepository, namespace string) *CachingItemRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if namespace == "" {
		namespace = "items"
	}
	return &CachingItemRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// List returns every item, checking the cache first.
func (c *CachingItemRepository) List(ctx context.Context) ([]entity.Item, error) {
	if c.rdb == nil {
		return c.inner.List(ctx)
	}

	key := c.listKey()
	var cached []entity.Item
	if c.load(ctx, key, &cached) {
		return cached, nil
	}

	gen, genOK := c.generation(ctx)
	out, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	if genOK {
		c.store(ctx, key, gen, out)
	}
	return out, nil
}

// FindByID returns one item, checking the cache first. Misses are not cached.
func (c *CachingItemRepository) FindByID(ctx context.Context, id string) (*entity.Item, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.itemKey(id)
	var cached entity.Item
	if c.load(ctx, key, &cached) {
		return &cached, nil
	}

	gen, genOK := c.generation(ctx)
	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if genOK {
		c.store(ctx, key, gen, out)
	}
	return out, nil
}

// Create stores the item and drops the cached list.
func (c *CachingItemRepository) Create(ctx context.Context, item *entity.Item) error {
	if err := c.inner.Create(ctx, item); err != nil {
		return err
	}
	c.invalidate(ctx, "")
	return nil
}

// Delete removes the item and its cache entries.
func (c *CachingItemRepository) Delete(ctx context.Context, id string) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

// AddLike records the like and invalidates the affected cache entries.
func (c *CachingItemRepository) AddLike(ctx context.Context, itemID, userID string) (*entity.Item, error) {
	out, err := c.inner.AddLike(ctx, itemID, userID)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, itemID)
	return out, nil
}

// RemoveLike drops the like and invalidates the affected cache entries.
func (c *CachingItemRepository) RemoveLike(ctx context.Context, itemID, userID string) (*entity.Item, error) {
	out, err := c.inner.RemoveLike(ctx, itemID, userID)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, itemID)
	return out, nil
}

// load reads key into dst. Corrupted entries are deleted.
func (c *CachingItemRepository) load(ctx context.Context, key string, dst any) bool {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil || len(b) == 0 {
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		_ = c.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

// generation reads the write counter observed before a store read.
// ok is false when Redis cannot answer; the result is then not cached.
func (c *CachingItemRepository) generation(ctx context.Context) (string, bool) {
	gen, err := c.rdb.Get(ctx, c.genKey()).Result()
	if errors.Is(err, redis.Nil) {
		return "0", true
	}
	if err != nil {
		return "", false
	}
	return gen, true
}

// store writes v under key unless a write bumped the generation since gen was read (best effort).
func (c *CachingItemRepository) store(ctx context.Context, key, gen string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.rdb.Eval(ctx, storeIfCurrent, []string{key, c.genKey()}, gen, string(b), c.ttl.Milliseconds()).Err()
}

// invalidate bumps the generation, then deletes the list entry and, when id is
// set, the item entry. Failures are ignored; entries expire with the TTL anyway.
func (c *CachingItemRepository) invalidate(ctx context.Context, id string) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Incr(ctx, c.genKey()).Err()
	keys := []string{c.listKey()}
	if id != "" {
		keys = append(keys, c.itemKey(id))
	}
	_ = c.rdb.Del(ctx, keys...).Err()
}

func (c *CachingItemRepository) genKey() string {
	return c.namespace + ":gen"
}

func (c *CachingItemRepository) listKey() string {
	return c.namespace + ":list"
}

func (c *CachingItemRepository) itemKey(id string) string {
	return c.namespace + ":item:" + safe(id)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
