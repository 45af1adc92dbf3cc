package session

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistrationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *RegistrationError
		want string
	}{
		{name: "message only", err: NewRegistrationError("Email taken", nil), want: "Email taken"},
		{name: "default message", err: NewRegistrationError("", nil), want: "Registration failed"},
		{
			name: "fields sorted",
			err:  NewRegistrationError("Invalid input", map[string]string{"password": "too short", "email": "already in use"}),
			want: "Invalid input (email: already in use; password: too short)",
		},
		{name: "zero value", err: &RegistrationError{}, want: "registration failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestRegistrationError_IsAndFieldLookup(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewRegistrationError("Email taken", map[string]string{"email": "already in use"}))

	assert.ErrorIs(t, err, ErrRegistrationFailed)
	assert.NotErrorIs(t, err, ErrLoginFailed)

	var regErr *RegistrationError
	if assert.True(t, errors.As(err, &regErr)) {
		msg, ok := regErr.FieldError("email")
		assert.True(t, ok)
		assert.Equal(t, "already in use", msg)

		_, ok = regErr.FieldError("name")
		assert.False(t, ok)
	}
}

func TestNewRegistrationError_EmptyFieldsBecomeNil(t *testing.T) {
	assert.Nil(t, NewRegistrationError("x", map[string]string{}).FieldErrors)
}

func TestLoginErrorKinds(t *testing.T) {
	assert.ErrorIs(t, ErrInvalidCredentials, ErrLoginFailed)
	assert.ErrorIs(t, ErrServiceUnavailable, ErrLoginFailed)
	assert.NotErrorIs(t, ErrInvalidCredentials, ErrServiceUnavailable)
}

func TestIsTestAccount(t *testing.T) {
	assert.True(t, IsTestAccount("test@test.com"))
	assert.True(t, IsTestAccount("  TEST@test.COM "))
	assert.False(t, IsTestAccount("test@test.com.au"))
	assert.False(t, IsTestAccount(""))
}
