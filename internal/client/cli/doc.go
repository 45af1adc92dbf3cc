// Package cli provides the interactive feedbackdesk command-line client.
//
// App receives a ready session.Manager, restores the persisted session on
// start and runs a small REPL on top of it:
//
//   - register   create an account (does not sign in)
//   - login      sign in; first-time users are asked to finish onboarding
//   - onboard    walk through onboarding and mark it complete
//   - logout     sign out and forget the persisted session
//   - status     show who is signed in and whether the identity service answers
//   - help, exit
//
// Handlers look the manager up with session.FromContext, the same way any
// other consumer of the session would.
package cli
