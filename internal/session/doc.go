// Package session owns the client's signed-in user and the one-time
// onboarding gate.
//
// A single Manager is built at process start and handed to every consumer,
// either directly or through the context (WithManager / FromContext). Its
// observable state is:
//
//   - User: present iff someone is signed in
//   - IsLoading: true while Initialize, Login or Register is running
//   - NeedsOnboarding: true iff a user is signed in, is not the test
//     account, and has never completed onboarding on this client
//
// Mutations go exclusively through Initialize, Login, Register, Logout and
// CompleteOnboarding. The user record and the onboarding flag are persisted
// in a metadata.Store under the keys KeyUser and KeyOnboardingComplete; when
// the store also implements metadata.Transactor both keys are written in one
// transaction.
//
// Login and Register share a single in-flight slot: a call that arrives while
// another one is running fails with ErrOperationInProgress.
package session
