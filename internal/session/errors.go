package session

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

var (
	// ErrAuthenticationUnavailable means a consumer asked for the session
	// outside a scope that provides one. It signals a wiring bug.
	ErrAuthenticationUnavailable = errors.New("authentication unavailable: no session manager in scope")

	// ErrRegistrationFailed is matched by every *RegistrationError.
	ErrRegistrationFailed = errors.New("registration failed")

	// ErrCorruptedPersistedState is logged when the stored user record cannot
	// be decoded. Initialize recovers from it and never returns it.
	ErrCorruptedPersistedState = errors.New("corrupted persisted session state")

	ErrLoginFailed        = errors.New("login failed")
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrLoginFailed)
	ErrServiceUnavailable = fmt.Errorf("%w: identity service unavailable", ErrLoginFailed)

	ErrOperationInProgress = errors.New("another session operation is in progress")
)

// RegistrationError carries a user-facing message and, when the identity
// service reported them, per-field validation messages keyed by field name.
type RegistrationError struct {
	Message     string
	FieldErrors map[string]string

	cause error
}

func (e *RegistrationError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = ErrRegistrationFailed.Error()
	}
	if len(e.FieldErrors) == 0 {
		return msg
	}

	parts := make([]string, 0, len(e.FieldErrors))
	for _, field := range slices.Sorted(maps.Keys(e.FieldErrors)) {
		parts = append(parts, field+": "+e.FieldErrors[field])
	}
	return msg + " (" + strings.Join(parts, "; ") + ")"
}

func (e *RegistrationError) Is(target error) bool {
	return target == ErrRegistrationFailed
}

// Unwrap returns the sentinel the failure was built from, if any.
func (e *RegistrationError) Unwrap() error {
	return e.cause
}

// FieldError returns the message reported for field, if any.
func (e *RegistrationError) FieldError(field string) (string, bool) {
	msg, ok := e.FieldErrors[field]
	return msg, ok
}

// NewRegistrationError builds a RegistrationError. An empty fieldErrors map
// is normalised to nil.
func NewRegistrationError(message string, fieldErrors map[string]string) *RegistrationError {
	if message == "" {
		message = "Registration failed"
	}
	if len(fieldErrors) == 0 {
		fieldErrors = nil
	}
	return &RegistrationError{Message: message, FieldErrors: fieldErrors}
}

func registrationErrorFrom(message string, cause error) *RegistrationError {
	e := NewRegistrationError(message, nil)
	e.cause = cause
	return e
}
