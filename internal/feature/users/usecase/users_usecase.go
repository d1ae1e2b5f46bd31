// Package usecase implements account reads and self-service profile updates.
package usecase

import (
	"context"
	"fmt"

	"wtwr_backend/internal/feature/auth/domain"
	"wtwr_backend/internal/feature/auth/domain/entity"
)

// UserRepository is the subset of account storage used here.
type UserRepository interface {
	List(ctx context.Context) ([]entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	UpdateProfile(ctx context.Context, id, name, avatar string) (*entity.User, error)
}

// ProfileInput holds the fields a user may change on their own profile.
type ProfileInput struct {
	Name   string
	Avatar string
}

// UsersUsecase provides account reads and profile updates.
type UsersUsecase struct {
	repo UserRepository
}

// NewUsersUsecase creates a new UsersUsecase.
func NewUsersUsecase(repo UserRepository) *UsersUsecase {
	return &UsersUsecase{repo: repo}
}

// ListUsers returns every account.
func (u *UsersUsecase) ListUsers(ctx context.Context) ([]entity.User, error) {
	return u.repo.List(ctx)
}

// GetUser returns one account or domain.ErrUserNotFound.
func (u *UsersUsecase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	return u.repo.FindByID(ctx, id)
}

// UpdateProfile changes name and avatar of the account identified by userID.
// userID always comes from the authenticated identity.
func (u *UsersUsecase) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*entity.User, error) {
	candidate := entity.User{Name: in.Name, Avatar: in.Avatar}
	if err := candidate.ValidateProfile(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidUser, err)
	}
	return u.repo.UpdateProfile(ctx, userID, in.Name, in.Avatar)
}
