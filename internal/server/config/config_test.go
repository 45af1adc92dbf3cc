package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8080", c.ListenAddr)
	assert.Equal(t, "identity.db", c.DatabaseDSN)
	assert.Equal(t, "secretKey", c.SecretKey)
	assert.Equal(t, 24*time.Hour, c.TokenValidityDuration)
	assert.Equal(t, bcrypt.DefaultCost, c.BcryptCost)
	assert.NoError(t, c.Validate())
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")
	assert.Equal(t, ":8080", c.ListenAddr)
	assert.Equal(t, 24*time.Hour, c.TokenValidityDuration)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("FEEDBACKDESK_SERVER_SECRET_KEY", "from-env")
	t.Setenv("FEEDBACKDESK_SERVER_TOKEN_TTL", "90m")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "from-env", c.SecretKey)
	assert.Equal(t, 90*time.Minute, c.TokenValidityDuration)
	assert.Equal(t, ":8080", c.ListenAddr)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"no addr", func(c *Config) { c.ListenAddr = "" }},
		{"no dsn", func(c *Config) { c.DatabaseDSN = "" }},
		{"no secret", func(c *Config) { c.SecretKey = "" }},
		{"zero ttl", func(c *Config) { c.TokenValidityDuration = 0 }},
		{"cost too high", func(c *Config) { c.BcryptCost = bcrypt.MaxCost + 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
