// Package config reads service configuration from the environment and .env files.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const Production = "production"

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverRemote   = "remote"
)

type AppOptions struct {
	Env             string        `env:"APP_ENV" envDefault:"development"`
	Port            string        `env:"APP_PORT" envDefault:"8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	StaticDir       string        `env:"STATIC_DIR"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	MaxBodyBytes    int64         `env:"HTTP_MAX_BODY_BYTES" envDefault:"10485760"`
}

type AdminOptions struct {
	Username string `env:"ADMIN_USERNAME" envDefault:"admin"`
	Password string `env:"ADMIN_PASSWORD" envDefault:"password"`
	// PasswordHash wins over Password when set.
	PasswordHash string `env:"ADMIN_PASSWORD_HASH"`
}

type CORSOptions struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

type StorageOptions struct {
	Driver  string        `env:"STORAGE_DRIVER" envDefault:"file"`
	Timeout time.Duration `env:"STORAGE_TIMEOUT" envDefault:"5s"`

	FilePath string `env:"STORAGE_FILE" envDefault:"data/holding.json"`

	PostgresDSN      string `env:"DATABASE_URL"`
	PostgresMaxConns int32  `env:"DATABASE_MAX_CONNS" envDefault:"5"`
	HistoryLimit     uint64 `env:"HISTORY_LIMIT" envDefault:"50"`

	RedisURL string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RedisKey string `env:"REDIS_KEY" envDefault:"simorgh:holding"`

	RemoteURL string `env:"REMOTE_URL"`
}

// Validate checks that the selected driver has what it needs.
func (s *StorageOptions) Validate() error {
	switch s.Driver {
	case DriverMemory:
	case DriverFile:
		if s.FilePath == "" {
			return errors.New("STORAGE_FILE is required for the file driver")
		}
	case DriverPostgres:
		if s.PostgresDSN == "" {
			return errors.New("DATABASE_URL is required for the postgres driver")
		}
	case DriverRedis:
		if s.RedisURL == "" || s.RedisKey == "" {
			return errors.New("REDIS_URL and REDIS_KEY are required for the redis driver")
		}
	case DriverRemote:
		if !strings.HasPrefix(s.RemoteURL, "http://") && !strings.HasPrefix(s.RemoteURL, "https://") {
			return fmt.Errorf("REMOTE_URL must be an http(s) URL, got %q", s.RemoteURL)
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", s.Driver)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("STORAGE_TIMEOUT must be positive, got %s", s.Timeout)
	}
	return nil
}

type Configuration struct {
	App     AppOptions
	Admin   AdminOptions
	CORS    CORSOptions
	Storage StorageOptions
}

// IsProduction reports whether APP_ENV is production.
func (c *Configuration) IsProduction() bool {
	return c.App.Env == Production
}

// LoadEnv loads the env files that exist and reports how many were read.
// Variables already set in the process environment win.
func LoadEnv(envFiles []string) (int, error) {
	existing := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			existing = append(existing, file)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}
	return len(existing), godotenv.Load(existing...)
}

// Load reads envFiles and the process environment and validates the result.
func Load(envFiles ...string) (*Configuration, error) {
	if _, err := LoadEnv(envFiles); err != nil {
		return nil, fmt.Errorf("load env files: %w", err)
	}

	c := &Configuration{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := c.Storage.Validate(); err != nil {
		return nil, fmt.Errorf("storage configuration error: %w", err)
	}
	if c.Admin.Username == "" {
		return nil, errors.New("ADMIN_USERNAME must not be empty")
	}
	return c, nil
}
