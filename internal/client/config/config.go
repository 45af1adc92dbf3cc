package config

import (
	"fmt"
	"time"
)

// Auth modes.
const (
	AuthModeRemote = "remote"
	AuthModeLocal  = "local"
)

// StoreMemory as StoreDSN keeps the session in process memory only.
const StoreMemory = "memory"

// Config holds runtime settings for the feedbackdesk client.
//
// Fields:
//   - IdentityURL: base URL of the identity service.
//   - AuthMode: "remote" talks to IdentityURL, "local" uses the offline authenticator.
//   - StoreDSN: SQLite file for the persisted session, or "memory".
//   - RequestTimeout, RetryMax, RateLimit: identity client transport settings.
//   - LocalLatency: simulated round trip of the offline authenticator.
//   - LogBackend, LogLevel: logger selection.
type Config struct {
	IdentityURL    string        `env:"IDENTITY_URL"`
	AuthMode       string        `env:"AUTH_MODE"`
	StoreDSN       string        `env:"STORE_DSN"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	RetryMax       int           `env:"RETRY_MAX"`
	RateLimit      float64       `env:"RATE_LIMIT"`
	LocalLatency   time.Duration `env:"LOCAL_LATENCY"`
	LogBackend     string        `env:"LOG_BACKEND"`
	LogLevel       string        `env:"LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.IdentityURL = "http://127.0.0.1:8080"
	c.AuthMode = AuthModeRemote
	c.StoreDSN = "feedbackdesk.db"
	c.RequestTimeout = 10 * time.Second
	c.RetryMax = 2
	c.RateLimit = 5
	c.LocalLatency = 300 * time.Millisecond
	c.LogBackend = "slog"
	c.LogLevel = "warn"
}

// Validate reports settings the client cannot start with.
func (c *Config) Validate() error {
	switch c.AuthMode {
	case AuthModeRemote:
		if c.IdentityURL == "" {
			return fmt.Errorf("identity URL is required in %q mode", AuthModeRemote)
		}
	case AuthModeLocal:
	default:
		return fmt.Errorf("unknown auth mode %q", c.AuthMode)
	}
	if c.StoreDSN == "" {
		return fmt.Errorf("store DSN is required")
	}
	if c.RetryMax < 0 {
		return fmt.Errorf("retry count must not be negative")
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
