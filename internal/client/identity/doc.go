// Package identity talks to the identity service on behalf of the session
// manager.
//
// HTTPClient implements both session.Authenticator and session.Registrar over
// the service's JSON API (POST /api/auth/register, POST /api/auth/login).
// Requests go through resty on top of a retryablehttp transport and are gated
// by a client-side rate limiter. Registration input is validated locally
// before it is sent, and every failure is reported as a
// *session.RegistrationError carrying the service's message and field errors.
//
// LocalAuthenticator is the offline stand-in: it accepts any credentials and
// derives the display name and company from whether the address is the
// designated test account.
package identity
