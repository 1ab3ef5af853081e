package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Environment name constants used in ENVIRONMENT config field.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Log format names accepted in the LOG_FORMAT config field.
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// ErrInvalidConfig is returned by Load when a field holds a value outside its allowed set.
var ErrInvalidConfig = errors.New("invalid config")

var (
	environments = []string{EnvDevelopment, EnvTesting, EnvProduction}
	logFormats   = []string{LogFormatJSON, LogFormatText}
)

// Config holds all configuration for the application
type Config struct {
	// HTTP
	HTTPAddr        string        `conf:"default::8080,env:HTTP_ADDR"`
	ShutdownTimeout time.Duration `conf:"default:30s,env:SHUTDOWN_TIMEOUT"`
	// RateLimitPerMinute is the per-IP request budget on the API router.
	RateLimitPerMinute int `conf:"default:100,env:RATE_LIMIT_PER_MINUTE"`

	// CORS: comma-separated list of allowed origins; use * to allow all (dev only)
	CORSAllowedOrigins string `conf:"default:*,env:CORS_ALLOWED_ORIGINS"`

	// Events
	EventBufferSize int64 `conf:"default:64,env:EVENT_BUFFER_SIZE"`

	// Application
	LogLevel    string `conf:"default:info,env:LOG_LEVEL"`
	LogFormat   string `conf:"default:json,env:LOG_FORMAT"`
	Environment string `conf:"default:development,env:ENVIRONMENT"`

	// Observability
	ServiceName    string `conf:"default:shoppingcart,env:SERVICE_NAME"`
	ServiceVersion string `conf:"default:dev,env:SERVICE_VERSION"`
	OtelEndpoint   string `conf:"env:OTEL_ENDPOINT"`
	SentryDSN      string `conf:"env:SENTRY_DSN,noprint"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate rejects values conf cannot restrict on its own. Matching is exact,
// so "Production" is rejected rather than silently skipping production checks.
func (c *Config) validate() error {
	if !slices.Contains(environments, c.Environment) {
		return fmt.Errorf("%w: ENVIRONMENT must be one of %s, got %q",
			ErrInvalidConfig, strings.Join(environments, "|"), c.Environment)
	}
	if !slices.Contains(logFormats, c.LogFormat) {
		return fmt.Errorf("%w: LOG_FORMAT must be one of %s, got %q",
			ErrInvalidConfig, strings.Join(logFormats, "|"), c.LogFormat)
	}
	return nil
}

// ValidateForProduction enforces operational requirements when ENVIRONMENT=production.
// Returns an error listing every unsafe setting. No-ops for non-production environments.
func ValidateForProduction(cfg *Config) error {
	if cfg.Environment != EnvProduction {
		return nil
	}

	var errs []string

	if cfg.LogLevel == "debug" {
		errs = append(errs, "LOG_LEVEL must not be 'debug' in production (may leak sensitive data)")
	}

	if strings.TrimSpace(cfg.CORSAllowedOrigins) == "*" {
		errs = append(errs, "CORS_ALLOWED_ORIGINS must list explicit origins in production")
	}

	if cfg.SentryDSN == "" {
		errs = append(errs, "SENTRY_DSN must be set in production")
	}

	if cfg.RateLimitPerMinute <= 0 {
		errs = append(errs, fmt.Sprintf("RATE_LIMIT_PER_MINUTE must be positive (got %d)", cfg.RateLimitPerMinute))
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("production config validation failed: %s", strings.Join(errs, "; "))
}
