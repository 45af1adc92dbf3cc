package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/feedbackdesk/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/feedbackdesk/internal/logging"
)

// Manager is the single source of truth for who is signed in and whether
// they still need onboarding.
type Manager struct {
	store     metadata.Store
	auth      Authenticator
	registrar Registrar
	logger    logging.Logger

	mu    sync.RWMutex
	state State

	// single slot shared by Login and Register
	busy atomic.Bool

	// writeMu orders Login's persist step against Logout; gen is bumped by
	// every Logout so a Login that started before it does not sign back in.
	writeMu sync.Mutex
	gen     uint64

	subMu   sync.Mutex
	subs    map[int]chan State
	nextSub int
}

// Option customizes a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for recovered failures.
func WithLogger(l logging.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewManager builds a Manager in the loading state. Call Initialize before
// trusting its state to reflect the store.
func NewManager(store metadata.Store, auth Authenticator, registrar Registrar, opts ...Option) *Manager {
	m := &Manager{
		store:     store,
		auth:      auth,
		registrar: registrar,
		logger:    logging.Nop(),
		state:     State{IsLoading: true},
		subs:      make(map[int]chan State),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	m.logger = m.logger.With("component", "session")
	return m
}

// State returns a copy of the current session state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.clone()
}

// User returns a copy of the signed-in user, or nil.
func (m *Manager) User() *User {
	return m.State().User
}

func (m *Manager) IsLoading() bool {
	return m.State().IsLoading
}

func (m *Manager) NeedsOnboarding() bool {
	return m.State().NeedsOnboarding
}

// Initialize restores the session from the store. A user record that cannot
// be decoded is discarded and the session continues unauthenticated. A store
// read failure also leaves a usable unauthenticated session, and is returned
// so the caller can report it.
func (m *Manager) Initialize(ctx context.Context) error {
	user, completed, err := m.readPersisted(ctx)

	m.update(func(s *State) {
		s.User = user
		s.NeedsOnboarding = user != nil && !IsTestAccount(user.Email) && !completed
		s.IsLoading = false
	})

	if err != nil {
		m.logger.Error(ctx, "session restore failed", "error", err)
		return fmt.Errorf("restore session: %w", err)
	}
	if user != nil {
		m.logger.Info(ctx, "session restored", "email", user.Email, "needs_onboarding", m.NeedsOnboarding())
	}
	return nil
}

func (m *Manager) readPersisted(ctx context.Context) (*User, bool, error) {
	raw, err := m.store.Get(ctx, KeyUser)
	if err != nil {
		return nil, false, err
	}
	if raw == nil {
		return nil, false, nil
	}

	user, err := decodeUser(raw)
	if err != nil {
		m.logger.Warn(ctx, "discarding stored user", "error", err)
		if derr := m.store.Delete(ctx, KeyUser); derr != nil {
			m.logger.Error(ctx, "failed to discard stored user", "error", derr)
		}
		return nil, false, nil
	}

	flag, err := m.store.Get(ctx, KeyOnboardingComplete)
	if err != nil {
		return nil, false, err
	}
	return user, flag != nil, nil
}

func decodeUser(raw []byte) (*User, error) {
	var u *User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptedPersistedState, err)
	}
	if u == nil || strings.TrimSpace(u.Email) == "" {
		return nil, fmt.Errorf("%w: user record has no email", ErrCorruptedPersistedState)
	}
	return u, nil
}

// Login authenticates the credentials, persists the user and applies the
// onboarding gate. It reports true on success.
func (m *Manager) Login(ctx context.Context, email, password string) (bool, error) {
	if !m.busy.CompareAndSwap(false, true) {
		return false, ErrOperationInProgress
	}
	defer m.busy.Store(false)

	m.setLoading(true)
	defer m.setLoading(false)

	m.writeMu.Lock()
	startGen := m.gen
	m.writeMu.Unlock()

	email = strings.TrimSpace(email)
	if email == "" {
		return false, fmt.Errorf("%w: email is required", ErrInvalidCredentials)
	}

	user, err := m.auth.Authenticate(ctx, email, password)
	if err != nil {
		m.logger.Warn(ctx, "login rejected", "email", email, "error", err)
		if !errors.Is(err, ErrLoginFailed) {
			err = fmt.Errorf("%w: %w", ErrLoginFailed, err)
		}
		return false, err
	}
	if user == nil {
		return false, fmt.Errorf("%w: identity service returned no user", ErrLoginFailed)
	}

	payload, err := json.Marshal(user)
	if err != nil {
		return false, fmt.Errorf("encode user: %w", err)
	}

	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	if m.gen != startGen {
		m.logger.Info(ctx, "login discarded, signed out meanwhile", "email", user.Email)
		if r, ok := m.auth.(TokenResetter); ok {
			r.ResetToken()
		}
		return false, fmt.Errorf("%w: signed out while the login was running", ErrLoginFailed)
	}

	testAccount := IsTestAccount(user.Email)
	completed := false
	err = m.atomically(ctx, func(ctx context.Context, s metadata.Store) error {
		if err := s.Set(ctx, KeyUser, payload); err != nil {
			return err
		}
		if testAccount {
			return s.Set(ctx, KeyOnboardingComplete, onboardingFlagValue)
		}
		flag, err := s.Get(ctx, KeyOnboardingComplete)
		completed = flag != nil
		return err
	})
	if err != nil {
		m.logger.Error(ctx, "failed to persist session", "email", user.Email, "error", err)
		m.discardPartialLogin(ctx)
		return false, fmt.Errorf("persist session: %w", err)
	}

	m.update(func(s *State) {
		s.User = user.clone()
		s.NeedsOnboarding = !testAccount && !completed
		s.IsLoading = false
	})
	m.logger.Info(ctx, "user signed in", "email", user.Email, "needs_onboarding", !testAccount && !completed)
	return true, nil
}

// Register creates an account without signing in. Failures are always a
// *RegistrationError; it never returns (false, nil).
func (m *Manager) Register(ctx context.Context, name, email, password string) (bool, error) {
	return m.RegisterWithCompany(ctx, RegisterRequest{Name: name, Email: email, Password: password})
}

// RegisterWithCompany is Register with the optional company field. A call
// that overlaps a running Login or Register fails with a *RegistrationError
// that also matches ErrOperationInProgress.
func (m *Manager) RegisterWithCompany(ctx context.Context, req RegisterRequest) (bool, error) {
	if !m.busy.CompareAndSwap(false, true) {
		return false, registrationErrorFrom("Another sign-in or registration is still running, please wait", ErrOperationInProgress)
	}
	defer m.busy.Store(false)

	m.setLoading(true)
	defer m.setLoading(false)

	if err := m.registrar.Register(ctx, req); err != nil {
		m.logger.Warn(ctx, "registration failed", "email", req.Email, "error", err)

		var regErr *RegistrationError
		if errors.As(err, &regErr) {
			return false, regErr
		}
		return false, NewRegistrationError(describeTransportError(err), nil)
	}

	m.logger.Info(ctx, "account registered", "email", req.Email)
	return true, nil
}

func describeTransportError(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "Registration was cancelled"
	case errors.Is(err, context.DeadlineExceeded):
		return "Registration timed out, please try again"
	case errors.Is(err, ErrServiceUnavailable):
		return "Registration service is unavailable, please try again later"
	default:
		return "Registration failed: " + err.Error()
	}
}

// discardPartialLogin removes a user record left behind by a failed
// non-transactional persist, so the next Initialize does not restore it.
func (m *Manager) discardPartialLogin(ctx context.Context) {
	if _, ok := m.store.(metadata.Transactor); ok {
		return
	}
	if err := m.store.Delete(ctx, KeyUser); err != nil {
		m.logger.Error(ctx, "failed to discard partially persisted user", "error", err)
	}
}

// Logout signs the user out and forgets the persisted session. It always
// succeeds; store failures are logged. A Login still waiting on the identity
// service when Logout runs is discarded.
func (m *Manager) Logout(ctx context.Context) {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	m.gen++

	err := m.atomically(ctx, func(ctx context.Context, s metadata.Store) error {
		if err := s.Delete(ctx, KeyUser); err != nil {
			return err
		}
		return s.Delete(ctx, KeyOnboardingComplete)
	})
	if err != nil {
		m.logger.Error(ctx, "failed to clear persisted session", "error", err)
	}

	if r, ok := m.auth.(TokenResetter); ok {
		r.ResetToken()
	}

	var email string
	m.update(func(s *State) {
		if s.User != nil {
			email = s.User.Email
		}
		s.User = nil
		s.NeedsOnboarding = false
	})
	if email != "" {
		m.logger.Info(ctx, "user signed out", "email", email)
	}
}

// CompleteOnboarding clears the onboarding gate and persists the decision.
// Store failures are logged.
func (m *Manager) CompleteOnboarding(ctx context.Context) {
	m.update(func(s *State) {
		s.NeedsOnboarding = false
	})
	if err := m.store.Set(ctx, KeyOnboardingComplete, onboardingFlagValue); err != nil {
		m.logger.Error(ctx, "failed to persist onboarding completion", "error", err)
	}
}

func (m *Manager) atomically(ctx context.Context, fn func(ctx context.Context, s metadata.Store) error) error {
	if tx, ok := m.store.(metadata.Transactor); ok {
		return tx.WithTx(ctx, fn)
	}
	return fn(ctx, m.store)
}

func (m *Manager) setLoading(v bool) {
	m.update(func(s *State) {
		s.IsLoading = v
	})
}

// update applies fn under the lock and publishes the result when it changed.
// NeedsOnboarding is forced off whenever no user is present.
func (m *Manager) update(fn func(s *State)) {
	m.mu.Lock()
	before := m.state
	fn(&m.state)
	if m.state.NeedsOnboarding && m.state.User == nil {
		m.state.NeedsOnboarding = false
	}
	// publishing under mu keeps subscribers in mutation order; sends never block
	if !sameState(before, m.state) {
		m.publish(m.state)
	}
	m.mu.Unlock()
}

func sameState(a, b State) bool {
	if a.IsLoading != b.IsLoading || a.NeedsOnboarding != b.NeedsOnboarding {
		return false
	}
	if a.User == nil || b.User == nil {
		return a.User == b.User
	}
	return *a.User == *b.User
}
