// Package config handles configuration for the dev identity server: defaults,
// JSON overlay, FEEDBACKDESK_SERVER_ environment variables and command-line
// flags, in that order of precedence.
package config

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds runtime settings for the identity server.
//
// Fields:
//   - ListenAddr: HTTP bind address.
//   - DatabaseDSN: SQLite file holding user accounts.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the default outside development.
//   - TokenValidityDuration: lifetime of issued tokens.
//   - BcryptCost: password hashing cost.
//   - LogBackend, LogLevel: logger selection.
type Config struct {
	ListenAddr            string        `env:"LISTEN_ADDR"`
	DatabaseDSN           string        `env:"DATABASE_DSN"`
	SecretKey             string        `env:"SECRET_KEY"`
	TokenValidityDuration time.Duration `env:"TOKEN_TTL"`
	BcryptCost            int           `env:"BCRYPT_COST"`
	LogBackend            string        `env:"LOG_BACKEND"`
	LogLevel              string        `env:"LOG_LEVEL"`
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":8080"
	c.DatabaseDSN = "identity.db"
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 24 * time.Hour
	c.BcryptCost = bcrypt.DefaultCost
	c.LogBackend = "slog"
	c.LogLevel = "info"
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	switch {
	case c.ListenAddr == "":
		return errors.New("listen address is required")
	case c.DatabaseDSN == "":
		return errors.New("database DSN is required")
	case c.SecretKey == "":
		return errors.New("secret key is required")
	case c.TokenValidityDuration <= 0:
		return errors.New("token validity must be positive")
	case c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost:
		return errors.New("bcrypt cost out of range")
	}
	return nil
}

// LoadConfig builds a Config from defaults, then an optional JSON file, the
// environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
