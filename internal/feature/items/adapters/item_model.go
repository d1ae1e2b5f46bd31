package adapters

import (
	"time"

	"wtwr_backend/internal/feature/items/domain/entity"
)

// ItemModel is the GORM model for the items table.
type ItemModel struct {
	ID        string          `gorm:"primaryKey;size:24"`
	Name      string          `gorm:"size:30;not null"`
	Weather   string          `gorm:"size:8;not null"`
	ImageURL  string          `gorm:"size:2048;not null"`
	OwnerID   string          `gorm:"size:24;index;not null"`
	CreatedAt time.Time       `gorm:"index;not null"`
	Likes     []ItemLikeModel `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM.
func (ItemModel) TableName() string {
	return "items"
}

// ItemLikeModel is one (item, account) pair of the likes set.
// The composite primary key keeps the set free of duplicates.
type ItemLikeModel struct {
	ItemID    string    `gorm:"primaryKey;size:24"`
	UserID    string    `gorm:"primaryKey;size:24;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM.
func (ItemLikeModel) TableName() string {
	return "item_likes"
}

// ToEntity converts the GORM model to a domain entity.
func (m *ItemModel) ToEntity() *entity.Item {
	likes := make([]string, 0, len(m.Likes))
	for _, l := range m.Likes {
		likes = append(likes, l.UserID)
	}
	return &entity.Item{
		ID:        m.ID,
		Name:      m.Name,
		Weather:   entity.Weather(m.Weather),
		ImageURL:  m.ImageURL,
		Owner:     m.OwnerID,
		Likes:     likes,
		CreatedAt: m.CreatedAt,
	}
}

// ItemModelFromEntity converts a domain entity to a GORM model. Likes are stored separately.
func ItemModelFromEntity(i *entity.Item) *ItemModel {
	return &ItemModel{
		ID:        i.ID,
		Name:      i.Name,
		Weather:   string(i.Weather),
		ImageURL:  i.ImageURL,
		OwnerID:   i.Owner,
		CreatedAt: i.CreatedAt,
	}
}
