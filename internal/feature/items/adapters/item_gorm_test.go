package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"wtwr_backend/internal/feature/items/domain"
	"wtwr_backend/internal/feature/items/domain/entity"
	"wtwr_backend/internal/platform/objectid"
)

const (
	ownerID = "5d2f1c9e8b3a4f6d7e8c9b0a"
	likerID = "65a1b2c3d4e5f60718293a4b"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	// One connection so every query sees the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(Models()...), "failed to migrate tables")
	return db
}

func seedItem(t *testing.T, repo *ItemGorm, name string, createdAt time.Time) *entity.Item {
	t.Helper()
	item := &entity.Item{
		ID:        objectid.New(),
		Name:      name,
		Weather:   entity.WeatherWarm,
		ImageURL:  "https://example.com/" + name + ".png",
		Owner:     ownerID,
		Likes:     []string{},
		CreatedAt: createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), item))
	return item
}

func TestItemGorm_CreateAndFind(t *testing.T) {
	repo := NewItemGorm(setupTestDB(t))
	created := seedItem(t, repo, "jacket", time.Now().UTC())

	found, err := repo.FindByID(context.Background(), created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "jacket", found.Name)
	assert.Equal(t, entity.WeatherWarm, found.Weather)
	assert.Equal(t, ownerID, found.Owner)
	assert.NotNil(t, found.Likes)
	assert.Empty(t, found.Likes)
}

func TestItemGorm_FindByID_NotFound(t *testing.T) {
	repo := NewItemGorm(setupTestDB(t))

	found, err := repo.FindByID(context.Background(), objectid.New())

	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Nil(t, found)
}

func TestItemGorm_Create_Nil(t *testing.T) {
	repo := NewItemGorm(setupTestDB(t))

	assert.Error(t, repo.Create(context.Background(), nil))
}

func TestItemGorm_List(t *testing.T) {
	repo := NewItemGorm(setupTestDB(t))

	empty, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	base := time.Now().UTC().Add(-time.Hour)
	first := seedItem(t, repo, "boots", base)
	second := seedItem(t, repo, "scarf", base.Add(time.Minute))
	_, err = repo.AddLike(context.Background(), second.ID, likerID)
	require.NoError(t, err)

	items, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID)
	assert.Empty(t, items[0].Likes)
	assert.Equal(t, second.ID, items[1].ID)
	assert.Equal(t, []string{likerID}, items[1].Likes)
}

func TestItemGorm_AddLike_IsIdempotent(t *testing.T) {
	repo := NewItemGorm(setupTestDB(t))
	item := seedItem(t, repo, "hat", time.Now().UTC())

	first, err := repo.AddLike(context.Background(), item.ID, likerID)
	require.NoError(t, err)
	second, err := repo.AddLike(context.Background(), item.ID, likerID)
	require.NoError(t, err)

	assert.Equal(t, []string{likerID}, first.Likes)
	assert.Equal(t, []string{likerID}, second.Likes, "a second like must not duplicate the entry")

	both, err := repo.AddLike(context.Background(), item.ID, ownerID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{likerID, ownerID}, both.Likes)
}

func TestItemGorm_RemoveLike(t *testing.T) {
	repo := NewItemGorm(setupTestDB(t))
	item := seedItem(t, repo, "gloves", time.Now().UTC())

	_, err := repo.AddLike(context.Background(), item.ID, likerID)
	require.NoError(t, err)

	removed, err := repo.RemoveLike(context.Background(), item.ID, likerID)
	require.NoError(t, err)
	assert.Empty(t, removed.Likes)

	again, err := repo.RemoveLike(context.Background(), item.ID, likerID)
	require.NoError(t, err, "removing an absent like is a no-op")
	assert.Empty(t, again.Likes)
	assert.Equal(t, item.Name, again.Name)
}

func TestItemGorm_Likes_MissingItem(t *testing.T) {
	repo := NewItemGorm(setupTestDB(t))
	missing := objectid.New()

	_, err := repo.AddLike(context.Background(), missing, likerID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = repo.RemoveLike(context.Background(), missing, likerID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestItemGorm_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewItemGorm(db)
	item := seedItem(t, repo, "shorts", time.Now().UTC())
	keep := seedItem(t, repo, "socks", time.Now().UTC())
	_, err := repo.AddLike(context.Background(), item.ID, likerID)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(context.Background(), item.ID))

	_, err = repo.FindByID(context.Background(), item.ID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	var likes int64
	require.NoError(t, db.Model(&ItemLikeModel{}).Where("item_id = ?", item.ID).Count(&likes).Error)
	assert.Zero(t, likes, "likes of a deleted item are removed")

	_, err = repo.FindByID(context.Background(), keep.ID)
	assert.NoError(t, err)

	assert.ErrorIs(t, repo.Delete(context.Background(), item.ID), domain.ErrItemNotFound)
}
