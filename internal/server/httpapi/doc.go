// Package httpapi exposes the identity service over HTTP with gin. It serves
// the register, login, profile and health routes the feedbackdesk client
// talks to.
package httpapi
