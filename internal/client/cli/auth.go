package cli

import (
	"context"
	"errors"
	"sort"

	"github.com/dmitrijs2005/feedbackdesk/internal/common"
	"github.com/dmitrijs2005/feedbackdesk/internal/session"
)

// getSimpleText and getPassword are test seams for the interactive input
// helpers.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the account details and creates the account. It does
// not sign in. Field errors reported by the service are printed one per line.
func (a *App) Register(ctx context.Context) error {
	m, err := a.sessionFrom(ctx)
	if err != nil {
		return err
	}

	var req session.RegisterRequest
	if req.Name, err = getSimpleText(a.reader, "Enter your name", a.out); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if req.Company, err = getSimpleText(a.reader, "Enter company (optional)", a.out); err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	req.Password = string(password)
	common.WipeByteArray(password)

	if _, err := m.RegisterWithCompany(ctx, req); err != nil {
		a.reportRegistration(err)
		return err
	}

	a.println("Account created. Type 'login' to sign in.")
	return nil
}

func (a *App) reportRegistration(err error) {
	var regErr *session.RegistrationError
	if !errors.As(err, &regErr) {
		a.println(describeError(err))
		return
	}

	a.println(regErr.Message)
	fields := make([]string, 0, len(regErr.FieldErrors))
	for f := range regErr.FieldErrors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		a.printf("  %s: %s\n", f, regErr.FieldErrors[f])
	}
}

// Login prompts for credentials and signs in.
func (a *App) Login(ctx context.Context) error {
	m, err := a.sessionFrom(ctx)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := m.Login(ctx, email, string(password)); err != nil {
		a.println(describeError(err))
		return err
	}

	user := m.User()
	a.printf("Signed in as %s (%s, %s)\n", user.Name, user.Email, user.Company)
	return nil
}

// Logout signs out. It never fails once a manager is in scope.
func (a *App) Logout(ctx context.Context) error {
	m, err := a.sessionFrom(ctx)
	if err != nil {
		return err
	}
	if m.User() == nil {
		a.println("Not signed in.")
		return nil
	}
	m.Logout(ctx)
	a.println("Signed out.")
	return nil
}

func describeError(err error) string {
	switch {
	case errors.Is(err, session.ErrOperationInProgress):
		return "Another sign-in or registration is still running, please wait."
	case errors.Is(err, session.ErrInvalidCredentials):
		return "Invalid email or password."
	case errors.Is(err, session.ErrServiceUnavailable):
		return "The identity service is unavailable, please try again later."
	case errors.Is(err, session.ErrLoginFailed):
		return "Login failed: " + err.Error()
	default:
		return "Error: " + err.Error()
	}
}
