package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/feedbackdesk/internal/client/config"
	"github.com/dmitrijs2005/feedbackdesk/internal/client/identity"
)

func TestNewBackend(t *testing.T) {
	var cfg config.Config
	cfg.LoadDefaults()

	t.Run("remote", func(t *testing.T) {
		b, err := NewBackend(&cfg, nil)
		require.NoError(t, err)
		assert.IsType(t, &identity.HTTPClient{}, b.Auth)
		assert.NotNil(t, b.Pinger)
		assert.Equal(t, config.AuthModeRemote, b.Mode)
	})

	t.Run("local", func(t *testing.T) {
		local := cfg
		local.AuthMode = config.AuthModeLocal
		b, err := NewBackend(&local, nil)
		require.NoError(t, err)
		assert.IsType(t, &identity.LocalAuthenticator{}, b.Auth)
		assert.Nil(t, b.Pinger)
	})

	t.Run("unknown", func(t *testing.T) {
		bad := cfg
		bad.AuthMode = "ldap"
		_, err := NewBackend(&bad, nil)
		assert.Error(t, err)
	})
}
