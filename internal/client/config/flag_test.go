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
			"-a", "http://id:9090", "-m", "local", "-s", "memory", "-t", "5s", "-r", "4", "-b", "zap", "-l", "debug",
		}, expected: &Config{
			IdentityURL:    "http://id:9090",
			AuthMode:       "local",
			StoreDSN:       "memory",
			RequestTimeout: 5 * time.Second,
			RetryMax:       4,
			LogBackend:     "zap",
			LogLevel:       "debug",
		}},
		{name: "foreign flags ignored", args: []string{"cmd", "-x", "1", "-a", "http://id"},
			expected: &Config{IdentityURL: "http://id"}},
		{name: "bad timeout", args: []string{"cmd", "-t", "abc"}, expectPanic: true, expected: &Config{}},
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
