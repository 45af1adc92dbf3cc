package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-d", "users.db", "-s", "secret", "-t", "30", "-k", "4", "-b", "zap", "-l", "debug",
		}, expected: &Config{
			ListenAddr:            "127.0.0.1:9090",
			DatabaseDSN:           "users.db",
			SecretKey:             "secret",
			TokenValidityDuration: 30 * time.Minute,
			BcryptCost:            4,
			LogBackend:            "zap",
			LogLevel:              "debug",
		}},
		{name: "bad ttl", args: []string{"cmd", "-t", "soon"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
