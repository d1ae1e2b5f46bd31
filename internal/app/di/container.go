package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "wtwr_backend/internal/feature/auth/adapters"
	"wtwr_backend/internal/feature/auth/domain/entity"
	authhandler "wtwr_backend/internal/feature/auth/transport/handler"
	authusecase "wtwr_backend/internal/feature/auth/usecase"
	itemadapters "wtwr_backend/internal/feature/items/adapters"
	itemshandler "wtwr_backend/internal/feature/items/transport/handler"
	itemsusecase "wtwr_backend/internal/feature/items/usecase"
	usershandler "wtwr_backend/internal/feature/users/transport/handler"
	usersusecase "wtwr_backend/internal/feature/users/usecase"
	jwtmw "wtwr_backend/internal/platform/jwt"
)

// Options carries the settings the container needs from the configuration.
type Options struct {
	JWTSecret     string
	JWTTTL        time.Duration
	ItemsCacheTTL time.Duration
}

// Container holds the HTTP handlers and the token verifier used by the router.
type Container struct {
	Auth     *authhandler.AuthHandler
	Users    *usershandler.UsersHandler
	Items    *itemshandler.ItemsHandler
	Verifier *jwtmw.Verifier
}

// Models lists every persistent model for migration.
func Models() []any {
	return append([]any{&entity.User{}}, itemadapters.Models()...)
}

// NewContainer wires repositories, usecases and handlers. rdb may be nil.
func NewContainer(db *gorm.DB, rdb *redis.Client, opts Options) *Container {
	// Repository
	userRepo := authadapters.NewUserGorm(db)
	itemRepo := NewItemRepository(db, rdb, opts.ItemsCacheTTL)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, jwtmw.NewGenerator(opts.JWTSecret, opts.JWTTTL))
	usersUC := usersusecase.NewUsersUsecase(userRepo)
	itemsUC := itemsusecase.NewItemsUsecase(itemRepo)

	// Handler
	return &Container{
		Auth:     authhandler.NewAuthHandler(authUC),
		Users:    usershandler.NewUsersHandler(usersUC),
		Items:    itemshandler.NewItemsHandler(itemsUC),
		Verifier: jwtmw.NewVerifier(opts.JWTSecret),
	}
}
