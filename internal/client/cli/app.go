package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/feedbackdesk/internal/logging"
	"github.com/dmitrijs2005/feedbackdesk/internal/session"
)

// Pinger probes the identity service. A nil Pinger means there is nothing to
// probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

type App struct {
	manager *session.Manager
	pinger  Pinger
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(m *session.Manager, pinger Pinger, logger logging.Logger, in io.Reader, out io.Writer) *App {
	if logger == nil {
		logger = logging.Nop()
	}
	return &App{
		manager: m,
		pinger:  pinger,
		logger:  logger,
		reader:  bufio.NewReader(in),
		out:     &lockedWriter{w: out},
	}
}

// Run restores the session and serves commands until the input ends or the
// user exits.
func (a *App) Run(ctx context.Context) {
	ctx = session.WithManager(ctx, a.manager)

	a.println("Welcome to feedbackdesk (type 'help' for commands)")

	if err := a.manager.Initialize(ctx); err != nil {
		a.println("Could not restore the previous session, please log in again.")
	}

	updates, cancel := a.manager.Subscribe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		a.watchOnboarding(updates)
	}()
	defer func() {
		cancel()
		<-done
	}()

	if st := a.manager.State(); st.User != nil {
		a.printf("Signed in as %s\n", st.User.Email)
	}

	runREPL(ctx, a, a.status, a.reader, a.out)
}

// watchOnboarding prints a hint each time the session starts needing
// onboarding. It returns when updates is closed.
func (a *App) watchOnboarding(updates <-chan session.State) {
	needed := a.manager.NeedsOnboarding()
	if needed {
		a.println(onboardingHint)
	}
	for st := range updates {
		if st.NeedsOnboarding && !needed {
			a.println(onboardingHint)
		}
		needed = st.NeedsOnboarding
	}
}

const onboardingHint = "Your workspace is not set up yet. Type 'onboard' to finish onboarding."

func (a *App) isLoggedIn() bool {
	return a.manager.User() != nil
}

func (a *App) status() string {
	st := a.manager.State()
	if st.User == nil {
		return ""
	}
	if st.NeedsOnboarding {
		return fmt.Sprintf("(%s, onboarding)", st.User.Email)
	}
	return fmt.Sprintf("(%s)", st.User.Email)
}

func (a *App) sessionFrom(ctx context.Context) (*session.Manager, error) {
	m, err := session.FromContext(ctx)
	if err != nil {
		a.logger.Error(ctx, "no session in context", "error", err)
		return nil, err
	}
	return m, nil
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// lockedWriter serialises writes from the REPL and the onboarding watcher.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
