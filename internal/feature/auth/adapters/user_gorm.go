// Package adapters provides the GORM repository for accounts.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"wtwr_backend/internal/feature/auth/domain"
	"wtwr_backend/internal/feature/auth/domain/entity"
)

// pgUniqueViolation is the PostgreSQL SQLSTATE for unique constraint violations.
const pgUniqueViolation = "23505"

// publicColumns excludes the password hash. Only FindByEmail reads the hash.
var publicColumns = []string{"id", "email", "name", "avatar", "created_at", "updated_at"}

// UserGorm is the GORM implementation of the account repository.
type UserGorm struct {
	db *gorm.DB
}

// NewUserGorm creates a new UserGorm for the given connection.
func NewUserGorm(db *gorm.DB) *UserGorm {
	return &UserGorm{db: db}
}

// Create inserts an account. A duplicate email returns domain.ErrUserAlreadyExists.
func (r *UserGorm) Create(ctx context.Context, u *entity.User) error {
	if u == nil {
		return errors.New("user is nil")
	}
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail returns the account including its password hash.
func (r *UserGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID returns the account without its password hash.
func (r *UserGorm) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Select(publicColumns).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// List returns every account without password hashes, oldest first.
func (r *UserGorm) List(ctx context.Context) ([]entity.User, error) {
	users := []entity.User{}
	if err := r.db.WithContext(ctx).Select(publicColumns).Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateProfile sets name and avatar of one account and returns the updated record.
func (r *UserGorm) UpdateProfile(ctx context.Context, id, name, avatar string) (*entity.User, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", id).
		Updates(map[string]any{"name": name, "avatar": avatar})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrUserNotFound
	}
	return r.FindByID(ctx, id)
}

// isUniqueViolation recognizes duplicate keys from GORM's translated errors and from pgx directly.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
