// Package entity defines the wardrobe item entity.
package entity

import (
	"slices"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Weather is the temperature category an item is worn in.
type Weather string

const (
	WeatherHot  Weather = "hot"
	WeatherWarm Weather = "warm"
	WeatherCold Weather = "cold"
)

// Item is a wardrobe entry. Owner is fixed at creation; Likes holds each account at most once.
type Item struct {
	ID        string
	Name      string
	Weather   Weather
	ImageURL  string
	Owner     string
	Likes     []string
	CreatedAt time.Time
}

// Validate checks the client-settable fields.
func (i Item) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.RuneLength(2, 30)),
		validation.Field(&i.Weather, validation.Required, validation.In(WeatherHot, WeatherWarm, WeatherCold)),
		validation.Field(&i.ImageURL, validation.Required, is.URL),
		validation.Field(&i.Owner, validation.Required),
	)
}

// IsOwnedBy reports whether userID owns the item.
func (i Item) IsOwnedBy(userID string) bool {
	return i.Owner == userID
}

// LikedBy reports whether userID is in the likes set.
func (i Item) LikedBy(userID string) bool {
	return slices.Contains(i.Likes, userID)
}
