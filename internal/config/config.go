package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the production AgriSmart backend.
const DefaultBaseURL = "https://agrismart-3dtnfrcb7-sarhan-vohras-projects.vercel.app"

// Session store backends.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

// Config holds the SDK and CLI configuration.
// Environment variables are parsed with the AGRISMART_ prefix.
type Config struct {
	BaseURL   string        `envconfig:"BASE_URL" default:"https://agrismart-3dtnfrcb7-sarhan-vohras-projects.vercel.app"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"30s"`
	LoginView string        `envconfig:"LOGIN_VIEW" default:"/login"`

	// Session persistence
	SessionStore string `envconfig:"SESSION_STORE" default:"sqlite"`
	SQLitePath   string `envconfig:"SQLITE_PATH" default:""`
	RedisURL     string `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	RedisPrefix  string `envconfig:"REDIS_PREFIX" default:"agrismart:"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`
}

// New creates a Config by parsing AGRISMART_* environment variables.
// Example: AGRISMART_BASE_URL, AGRISMART_SESSION_STORE
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("AGRISMART", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("base_url", cfg.BaseURL).
		Dur("timeout", cfg.Timeout).
		Str("session_store", cfg.SessionStore).
		Str("sqlite_path", cfg.SQLitePath).
		Str("log_level", cfg.LogLevel).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting returns an in-memory configuration.
func NewForTesting() *Config {
	return &Config{
		BaseURL:      "http://localhost:8080",
		Timeout:      5 * time.Second,
		LoginView:    "/login",
		SessionStore: StoreMemory,
		RedisPrefix:  "agrismart:",
		LogLevel:     "debug",
	}
}

// ResolveDefaults validates the configuration and fills derived values.
func (c *Config) ResolveDefaults() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid BASE_URL: %q", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("TIMEOUT must be > 0, got %s", c.Timeout)
	}

	switch c.SessionStore {
	case StoreMemory, StoreRedis:
	case StoreSQLite:
		if c.SQLitePath == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("resolve home for SQLITE_PATH: %w", err)
			}
			c.SQLitePath = filepath.Join(home, ".agrismart", "session.db")
		}
	default:
		return fmt.Errorf("unsupported SESSION_STORE: %s", c.SessionStore)
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	return nil
}

// Level returns the configured log level, defaulting to info.
func (c *Config) Level() zerolog.Level {
	if c.Debug {
		return zerolog.DebugLevel
	}
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
