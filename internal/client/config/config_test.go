package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", c.IdentityURL)
	assert.Equal(t, AuthModeRemote, c.AuthMode)
	assert.Equal(t, "feedbackdesk.db", c.StoreDSN)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, 2, c.RetryMax)
	assert.Equal(t, 5.0, c.RateLimit)
	assert.Equal(t, 300*time.Millisecond, c.LocalLatency)
	assert.Equal(t, "slog", c.LogBackend)
	assert.Equal(t, "warn", c.LogLevel)
	assert.NoError(t, c.Validate())
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8080", cfg.IdentityURL)
	assert.Equal(t, AuthModeRemote, cfg.AuthMode)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"identity_url": "http://from-json:1",
		"auth_mode":    "local",
		"log_level":    "info",
	})
	t.Setenv("FEEDBACKDESK_IDENTITY_URL", "http://from-env:2")
	t.Setenv("FEEDBACKDESK_LOG_LEVEL", "debug")
	os.Args = []string{"testbin", "-c", path, "-l", "error"}

	cfg := LoadConfig()

	assert.Equal(t, "http://from-env:2", cfg.IdentityURL)
	assert.Equal(t, AuthModeLocal, cfg.AuthMode)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"local without url", func(c *Config) { c.AuthMode = AuthModeLocal; c.IdentityURL = "" }, false},
		{"remote without url", func(c *Config) { c.IdentityURL = "" }, true},
		{"unknown mode", func(c *Config) { c.AuthMode = "ldap" }, true},
		{"empty store", func(c *Config) { c.StoreDSN = "" }, true},
		{"negative retries", func(c *Config) { c.RetryMax = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			tt.mutate(&c)
			if tt.wantErr {
				assert.Error(t, c.Validate())
			} else {
				assert.NoError(t, c.Validate())
			}
		})
	}
}
