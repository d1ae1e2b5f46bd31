// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"wtwr_backend/internal/feature/auth/domain"
	"wtwr_backend/internal/feature/auth/domain/entity"
	"wtwr_backend/internal/platform/objectid"
)

// dummyHash is compared against when no account matches, so a miss costs the same as a wrong password.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository abstracts the persistence layer for accounts.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new account. It returns domain.ErrUserAlreadyExists on a duplicate email.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail returns the account including its password hash,
	// or domain.ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// JWTGenerator defines token generation.
type JWTGenerator interface {
	GenerateToken(userID string) (string, error)
}

// SignupInput is the data needed to register an account.
type SignupInput struct {
	Email    string
	Password string
	Name     string
	Avatar   string
}

// AuthUsecase implements signup and the credential check for signin.
type AuthUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
	hashCost     int
}

// NewAuthUsecase creates a new AuthUsecase.
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator) *AuthUsecase {
	return &AuthUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
		hashCost:     bcrypt.DefaultCost,
	}
}

// Signup validates the input, hashes the password and stores a new account.
// The returned user still carries the hash; transport code must not expose it.
func (u *AuthUsecase) Signup(ctx context.Context, in SignupInput) (*entity.User, error) {
	user := &entity.User{
		ID:     objectid.New(),
		Email:  strings.TrimSpace(in.Email),
		Name:   in.Name,
		Avatar: in.Avatar,
	}
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidUser, err)
	}
	if in.Password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrInvalidUser)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)

	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and returns a signed token.
// Every credential failure returns domain.ErrInvalidCredentials.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := u.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}

	// Always compare to keep timing uniform
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if err != nil || compareErr != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := u.jwtGenerator.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
