// Package dto defines data transfer objects for the items feature's HTTP transport layer.
package dto

import (
	"time"

	"wtwr_backend/internal/feature/items/domain/entity"
)

// CreateItemReq represents the request body for POST /items.
// The owner is never read from the body.
type CreateItemReq struct {
	Name     string `json:"name" binding:"required,min=2,max=30"`
	Weather  string `json:"weather" binding:"required,oneof=hot warm cold"`
	ImageURL string `json:"imageUrl" binding:"required,url"`
}

// ItemRes is the JSON view of an item.
type ItemRes struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Weather   string    `json:"weather"`
	ImageURL  string    `json:"imageUrl"`
	Owner     string    `json:"owner"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

// DataEnvelope wraps an item as {"data": {...}}.
type DataEnvelope struct {
	Data ItemRes `json:"data"`
}

// NewItemRes converts an item entity to its JSON view. Likes is never null.
func NewItemRes(it *entity.Item) ItemRes {
	likes := it.Likes
	if likes == nil {
		likes = []string{}
	}
	return ItemRes{
		ID:        it.ID,
		Name:      it.Name,
		Weather:   string(it.Weather),
		ImageURL:  it.ImageURL,
		Owner:     it.Owner,
		Likes:     likes,
		CreatedAt: it.CreatedAt,
	}
}

// NewItemList converts a slice of items. An empty store yields [] rather than null.
func NewItemList(items []entity.Item) []ItemRes {
	out := make([]ItemRes, 0, len(items))
	for i := range items {
		out = append(out, NewItemRes(&items[i]))
	}
	return out
}
