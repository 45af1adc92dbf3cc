package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/feedbackdesk/internal/client/config"
	"github.com/dmitrijs2005/feedbackdesk/internal/client/identity"
	"github.com/dmitrijs2005/feedbackdesk/internal/logging"
	"github.com/dmitrijs2005/feedbackdesk/internal/session"
)

// Pinger reports whether the identity backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Backend groups the identity collaborators handed to session.NewManager.
type Backend struct {
	Auth      session.Authenticator
	Registrar session.Registrar
	// Pinger is nil for backends that are always available.
	Pinger Pinger
	Mode   string
}

// NewBackend builds the identity collaborators for cfg.AuthMode.
func NewBackend(cfg *config.Config, logger logging.Logger) (*Backend, error) {
	switch cfg.AuthMode {
	case config.AuthModeLocal:
		local := identity.NewLocalAuthenticator(cfg.LocalLatency)
		return &Backend{Auth: local, Registrar: local, Mode: cfg.AuthMode}, nil

	case config.AuthModeRemote:
		c, err := identity.NewHTTPClient(identity.Options{
			BaseURL:      cfg.IdentityURL,
			Timeout:      cfg.RequestTimeout,
			RetryMax:     cfg.RetryMax,
			RetryWaitMin: 200 * time.Millisecond,
			RetryWaitMax: 2 * time.Second,
			RateLimit:    cfg.RateLimit,
			Burst:        3,
		}, logger)
		if err != nil {
			return nil, err
		}
		return &Backend{Auth: c, Registrar: c, Pinger: c, Mode: cfg.AuthMode}, nil

	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.AuthMode)
	}
}
