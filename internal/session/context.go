package session

import "context"

type contextKey struct{}

// WithManager returns a copy of ctx that carries m.
func WithManager(ctx context.Context, m *Manager) context.Context {
	return context.WithValue(ctx, contextKey{}, m)
}

// FromContext returns the Manager carried by ctx or ErrAuthenticationUnavailable.
func FromContext(ctx context.Context) (*Manager, error) {
	m, ok := ctx.Value(contextKey{}).(*Manager)
	if !ok || m == nil {
		return nil, ErrAuthenticationUnavailable
	}
	return m, nil
}

// MustFromContext is FromContext for code paths where a missing Manager is a
// programming error. It panics with ErrAuthenticationUnavailable.
func MustFromContext(ctx context.Context) *Manager {
	m, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return m
}
