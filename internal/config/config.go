// Package config reads service settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/platform/db"
)

type Config struct {
	Port string

	DBDriver    string
	DBPath      string
	DatabaseURL string
	SeedPath    string

	RedisAddr    string
	PlanCacheTTL time.Duration

	VehicleMode     domain.Mode
	MaxBinsPerType  int
	PlanConcurrency int

	LogLevel  string
	LogFormat string
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// LoadDotenv reads .env into the environment when present. Variables that
// are already set win.
func LoadDotenv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}
}

// Load reads .env (if any) and the environment.
func Load() (*Config, error) {
	LoadDotenv()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:        Get("PORT", "8080"),
		DBDriver:    strings.ToLower(Get("DB_DRIVER", db.DriverSqlite)),
		DBPath:      Get("DB_PATH", "data/app.db"),
		DatabaseURL: Get("DATABASE_URL", ""),
		SeedPath:    Get("SEED_PATH", ""),
		RedisAddr:   Get("REDIS_ADDR", ""),
		LogLevel:    Get("LOG_LEVEL", "info"),
		LogFormat:   Get("LOG_FORMAT", "json"),
	}

	var errs []error

	mode, err := domain.ParseMode(Get("VEHICLE_MODE", string(domain.ModeTruck)))
	if err != nil {
		errs = append(errs, fmt.Errorf("VEHICLE_MODE: %w", err))
	}
	cfg.VehicleMode = mode

	if cfg.MaxBinsPerType, err = getInt("MAX_BINS_PER_TYPE", domain.DefaultMaxBinsPerType); err != nil {
		errs = append(errs, err)
	}
	if cfg.PlanConcurrency, err = getInt("PLAN_CONCURRENCY", 0); err != nil {
		errs = append(errs, err)
	}
	if cfg.PlanCacheTTL, err = getDuration("PLAN_CACHE_TTL", time.Hour); err != nil {
		errs = append(errs, err)
	}

	switch cfg.DBDriver {
	case db.DriverSqlite:
	case db.DriverPostgres:
		if cfg.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required when DB_DRIVER=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER: unsupported driver %q", cfg.DBDriver))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// DSN returns the connection string for the configured driver.
func (c *Config) DSN() string {
	if c.DBDriver == db.DriverPostgres {
		return c.DatabaseURL
	}
	return c.DBPath
}

func getInt(key string, fallback int) (int, error) {
	raw := Get(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%s: want a non-negative integer, got %q", key, raw)
	}
	return v, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := Get(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
