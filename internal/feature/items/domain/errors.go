// Package domain defines domain-level errors for the items feature.
package domain

import "errors"

var (
	// ErrItemNotFound indicates that no item has the requested ID.
	ErrItemNotFound = errors.New("item not found")

	// ErrNotOwner is returned when a non-owner tries to delete an item.
	ErrNotOwner = errors.New("item is owned by another user")

	// ErrInvalidItem wraps field validation failures.
	ErrInvalidItem = errors.New("invalid item data")
)
