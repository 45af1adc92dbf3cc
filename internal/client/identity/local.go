package identity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/feedbackdesk/internal/session"
)

var (
	_ session.Authenticator = (*LocalAuthenticator)(nil)
	_ session.Registrar     = (*LocalAuthenticator)(nil)
)

// userNamespace scopes the name-based user IDs minted by LocalAuthenticator.
var userNamespace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte("users.feedbackdesk.local"))

// LocalAuthenticator accepts any credentials and any registration that passes
// local validation. The same e-mail always yields the same user.
type LocalAuthenticator struct {
	// Latency simulates a round trip to the identity service.
	Latency time.Duration
}

func NewLocalAuthenticator(latency time.Duration) *LocalAuthenticator {
	return &LocalAuthenticator{Latency: latency}
}

func (a *LocalAuthenticator) Authenticate(ctx context.Context, email, _ string) (*session.User, error) {
	if err := a.wait(ctx); err != nil {
		return nil, err
	}

	email = strings.TrimSpace(email)
	user := &session.User{
		ID:      uuid.NewSHA1(userNamespace, []byte(strings.ToLower(email))).String(),
		Name:    "Demo User",
		Email:   email,
		Company: "Demo Company",
	}
	if session.IsTestAccount(email) {
		user.Name = "Test User"
		user.Company = "Test Company"
	}
	return user, nil
}

// Register validates req and otherwise accepts it. Nothing is stored.
func (a *LocalAuthenticator) Register(ctx context.Context, req session.RegisterRequest) error {
	if err := ValidateRegistration(req); err != nil {
		return err
	}
	return a.wait(ctx)
}

func (a *LocalAuthenticator) wait(ctx context.Context) error {
	if a.Latency <= 0 {
		return nil
	}
	timer := time.NewTimer(a.Latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", session.ErrServiceUnavailable, ctx.Err())
	}
}
