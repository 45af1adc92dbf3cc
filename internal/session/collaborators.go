package session

import "context"

// Authenticator verifies credentials and returns the account they belong to.
// Failures should wrap ErrInvalidCredentials or ErrServiceUnavailable.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*User, error)
}

// Registrar creates accounts on the identity service. Failures should be
// *RegistrationError; anything else is normalised by the Manager.
type Registrar interface {
	Register(ctx context.Context, req RegisterRequest) error
}

// TokenResetter is implemented by authenticators that hold credentials
// between calls. Logout calls ResetToken.
type TokenResetter interface {
	ResetToken()
}

// RegisterRequest is the registration payload. Company is optional and only
// sent when set.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Company  string `json:"company,omitempty"`
}
