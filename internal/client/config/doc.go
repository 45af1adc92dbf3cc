// Package config loads runtime configuration for the feedbackdesk client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. Environment variables prefixed with FEEDBACKDESK_.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string     identity service base URL
//	-m string     auth mode: remote or local
//	-s string     session store: SQLite file path or "memory"
//	-t duration   identity request timeout
//	-r int        retries for failed identity requests
//	-b string     log backend: slog or zap
//	-l string     log level
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "10s" or integer
// nanoseconds:
//
//	{
//	  "identity_url": "http://127.0.0.1:8080",
//	  "auth_mode": "remote",
//	  "store_dsn": "feedbackdesk.db",
//	  "request_timeout": "10s",
//	  "retry_max": 2,
//	  "rate_limit": 5,
//	  "local_latency": "300ms",
//	  "log_backend": "zap",
//	  "log_level": "debug"
//	}
//
// # Environment
//
// FEEDBACKDESK_IDENTITY_URL, FEEDBACKDESK_AUTH_MODE, FEEDBACKDESK_STORE_DSN,
// FEEDBACKDESK_REQUEST_TIMEOUT, FEEDBACKDESK_RETRY_MAX,
// FEEDBACKDESK_RATE_LIMIT, FEEDBACKDESK_LOCAL_LATENCY,
// FEEDBACKDESK_LOG_BACKEND and FEEDBACKDESK_LOG_LEVEL.
package config
