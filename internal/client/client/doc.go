// Package client assembles the feedbackdesk client's dependencies from
// configuration.
//
// # Overview
//
//  1. Local persistence bootstrap (InitDatabase, RunMigrations): opens the
//     SQLite session store and applies the embedded goose migrations.
//  2. OpenStore: picks the SQLite or in-memory metadata repository for the
//     configured DSN.
//  3. NewBackend: builds the identity collaborators for the configured auth
//     mode, the HTTP identity client for "remote" and the offline
//     authenticator for "local".
//
// The session manager itself lives in package session and receives what this
// package builds through its constructor.
package client
