package cli

import (
	"context"
	"time"
)

const pingTimeout = 3 * time.Second

// Status prints the current session and whether the identity service answers.
func (a *App) Status(ctx context.Context) error {
	m, err := a.sessionFrom(ctx)
	if err != nil {
		return err
	}

	st := m.State()
	if st.User == nil {
		a.println("Not signed in.")
	} else {
		a.printf("Signed in as %s <%s>\n", st.User.Name, st.User.Email)
		a.printf("Company: %s\n", st.User.Company)
		if st.NeedsOnboarding {
			a.println("Onboarding: pending")
		} else {
			a.println("Onboarding: complete")
		}
	}

	if a.pinger == nil {
		a.println("Identity service: offline mode")
		return nil
	}

	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := a.pinger.Ping(pctx); err != nil {
		a.logger.Debug(ctx, "identity ping failed", "error", err)
		a.println("Identity service: unreachable")
		return nil
	}
	a.println("Identity service: online")
	return nil
}
