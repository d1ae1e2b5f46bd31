package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validItem() Item {
	return Item{
		Name:     "Raincoat",
		Weather:  WeatherCold,
		ImageURL: "https://example.com/coat.png",
		Owner:    "5d2f1c9e8b3a4f6d7e8c9b0a",
	}
}

func TestItem_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(i *Item)
		wantErr bool
	}{
		{"valid", func(i *Item) {}, false},
		{"warm", func(i *Item) { i.Weather = WeatherWarm }, false},
		{"unknown weather", func(i *Item) { i.Weather = "freezing" }, true},
		{"short name", func(i *Item) { i.Name = "x" }, true},
		{"long name", func(i *Item) { i.Name = "abcdefghijklmnopqrstuvwxyz12345" }, true},
		{"bad url", func(i *Item) { i.ImageURL = "coat" }, true},
		{"no owner", func(i *Item) { i.Owner = "" }, true},
		{"multibyte name", func(i *Item) { i.Name = "Wollmütze für Schnee" }, false},
		{"30 multibyte characters", func(i *Item) { i.Name = strings.Repeat("é", 30) }, false},
		{"31 multibyte characters", func(i *Item) { i.Name = strings.Repeat("é", 31) }, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			item := validItem()
			tt.mutate(&item)

			if tt.wantErr {
				assert.Error(t, item.Validate())
			} else {
				assert.NoError(t, item.Validate())
			}
		})
	}
}

func TestItem_Ownership(t *testing.T) {
	t.Parallel()

	item := validItem()
	item.Likes = []string{"65a1b2c3d4e5f60718293a4b"}

	assert.True(t, item.IsOwnedBy("5d2f1c9e8b3a4f6d7e8c9b0a"))
	assert.False(t, item.IsOwnedBy("65a1b2c3d4e5f60718293a4b"))
	assert.True(t, item.LikedBy("65a1b2c3d4e5f60718293a4b"))
	assert.False(t, item.LikedBy("5d2f1c9e8b3a4f6d7e8c9b0a"))
}
