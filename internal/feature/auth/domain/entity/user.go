// Package entity defines the domain entities for the auth feature.
package entity

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const (
	// NameMinLength and NameMaxLength bound the display name.
	NameMinLength = 2
	NameMaxLength = 30
)

// User represents a registered account.
type User struct {
	// ID is the 24-character hex identifier of the account.
	ID string `gorm:"primaryKey;size:24"`

	// Email is unique across all accounts.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash. It is never serialized.
	Password string `gorm:"size:255;not null" json:"-"`

	Name   string `gorm:"size:30;not null"`
	Avatar string `gorm:"size:2048;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the fields a client can set.
func (u User) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Email, validation.Required, is.Email),
		validation.Field(&u.Name, validation.Required, validation.RuneLength(NameMinLength, NameMaxLength)),
		validation.Field(&u.Avatar, validation.Required, is.URL),
	)
}

// ValidateProfile checks the fields that a profile update may change.
func (u User) ValidateProfile() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Name, validation.Required, validation.RuneLength(NameMinLength, NameMaxLength)),
		validation.Field(&u.Avatar, validation.Required, is.URL),
	)
}
