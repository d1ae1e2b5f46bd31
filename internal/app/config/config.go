// Package config loads the server configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"wtwr_backend/internal/platform/db"
	"wtwr_backend/internal/platform/redis"
)

// DefaultJWTSecret is used when JWT_SECRET is unset. It is only suitable for development.
const DefaultJWTSecret = "SUPER SECRET KEY"

// Config holds every setting main needs to wire the server.
type Config struct {
	Port          string
	JWTSecret     string
	JWTTTL        time.Duration
	LogLevel      slog.Level
	GinMode       string
	DB            db.Config
	Redis         redis.Config
	RedisEnabled  bool
	ItemsCacheTTL time.Duration
}

// LoadDotEnv loads .env into the process environment when present.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Info(".env not found; using system environment variables")
	}
}

// Load reads the configuration from the environment, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:      getenv("PORT", "3001"),
		JWTSecret: getenv("JWT_SECRET", DefaultJWTSecret),
		GinMode:   os.Getenv("GIN_MODE"),
		DB: db.Config{
			Driver:     strings.ToLower(getenv("DB_DRIVER", db.DriverSQLite)),
			User:       os.Getenv("DB_USER"),
			Password:   os.Getenv("DB_PASSWORD"),
			Name:       getenv("DB_NAME", "wtwr_db"),
			Host:       getenv("DB_HOST", "localhost"),
			Port:       getenv("DB_PORT", "5432"),
			SSLMode:    os.Getenv("DB_SSLMODE"),
			SQLitePath: getenv("SQLITE_PATH", "wtwr.db"),
		},
		Redis: redis.Config{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     getenv("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
	}
	cfg.RedisEnabled = cfg.Redis.Host != ""

	var err error
	if cfg.JWTTTL, err = duration("JWT_TTL", 7*24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.ItemsCacheTTL, err = duration("ITEMS_CACHE_TTL", 5*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.DB.ConnectTimeout, err = duration("DB_CONNECT_TIMEOUT", 30*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.LogLevel, err = logLevel(getenv("LOG_LEVEL", "info")); err != nil {
		return Config{}, err
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid REDIS_DB %q: %w", v, err)
		}
		cfg.Redis.DB = n
	}
	switch cfg.DB.Driver {
	case db.DriverPostgres, db.DriverSQLite:
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}
	return cfg, nil
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func duration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, v)
	}
	return d, nil
}

func logLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", s, err)
	}
	return lvl, nil
}
