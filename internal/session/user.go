package session

import (
	"strings"
)

// TestAccountEmail is the designated test identity. It never enters the
// onboarding-needed state.
const TestAccountEmail = "test@test.com"

// Persisted store keys.
const (
	KeyUser               = "user"
	KeyOnboardingComplete = "onboarding_complete"
)

var onboardingFlagValue = []byte("true")

// User is the signed-in account as the dashboard sees it.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Avatar  string `json:"avatar,omitempty"`
}

func (u *User) clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// IsTestAccount reports whether email is the designated test identity.
// Comparison ignores case and surrounding whitespace.
func IsTestAccount(email string) bool {
	return strings.EqualFold(strings.TrimSpace(email), TestAccountEmail)
}

// State is a point-in-time copy of the session.
type State struct {
	User            *User
	IsLoading       bool
	NeedsOnboarding bool
}

// Authenticated reports whether a user is signed in.
func (s State) Authenticated() bool {
	return s.User != nil
}

func (s State) clone() State {
	s.User = s.User.clone()
	return s
}
