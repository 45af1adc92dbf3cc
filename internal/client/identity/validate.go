package identity

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/dmitrijs2005/feedbackdesk/internal/session"
)

// ValidateRegistration checks the request before it leaves the client. It
// returns nil or a *session.RegistrationError keyed by JSON field name.
func ValidateRegistration(req session.RegisterRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.Company, validation.Length(0, 200)),
	)
	if err == nil {
		return nil
	}

	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return session.NewRegistrationError(err.Error(), nil)
	}

	fields := make(map[string]string, len(verrs))
	for field, ferr := range verrs {
		fields[field] = ferr.Error()
	}
	return session.NewRegistrationError("Please correct the highlighted fields", fields)
}
