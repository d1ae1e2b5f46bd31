// Package domain defines domain-level errors for the auth feature.
package domain

import "errors"

// Domain errors for account operations.
var (
	// ErrUserAlreadyExists indicates that an account with the given email already exists.
	ErrUserAlreadyExists = errors.New("user with this email already exists")

	// ErrUserNotFound indicates that no account matched the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned for every sign-in failure, so callers cannot
	// tell an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrInvalidUser wraps field validation failures.
	ErrInvalidUser = errors.New("invalid user data")
)
