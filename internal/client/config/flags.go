package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/feedbackdesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string     identity service base URL
//	-m string     auth mode: remote or local
//	-s string     session store: SQLite file path or "memory"
//	-t duration   identity request timeout
//	-r int        retries for failed identity requests
//	-b string     log backend: slog or zap
//	-l string     log level
//
// os.Args is filtered with flagx.FilterArgs so flags owned by other
// components do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-m", "-s", "-t", "-r", "-b", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.IdentityURL, "a", cfg.IdentityURL, "identity service base URL")
	fs.StringVar(&cfg.AuthMode, "m", cfg.AuthMode, "auth mode (remote|local)")
	fs.StringVar(&cfg.StoreDSN, "s", cfg.StoreDSN, "session store: SQLite file or \"memory\"")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "identity request timeout")
	fs.IntVar(&cfg.RetryMax, "r", cfg.RetryMax, "retries for failed identity requests")
	fs.StringVar(&cfg.LogBackend, "b", cfg.LogBackend, "log backend (slog|zap)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
