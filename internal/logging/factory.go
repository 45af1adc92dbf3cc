package logging

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

const (
	BackendSlog = "slog"
	BackendZap  = "zap"
)

// Options selects the logging backend and its verbosity.
type Options struct {
	Backend     string
	Level       string
	Development bool
}

// New builds a Logger for the requested backend. Output goes to stderr so it
// does not interleave with interactive prompts on stdout.
func New(o Options) (Logger, error) {
	switch strings.ToLower(o.Backend) {
	case "", BackendSlog:
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(defaultLevel(o.Level))); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", o.Level, err)
		}
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
		return NewSlogLogger(slog.New(h)), nil
	case BackendZap:
		zl, err := buildZap(defaultLevel(o.Level), o.Development)
		if err != nil {
			return nil, err
		}
		return NewZapLogger(zl), nil
	default:
		return nil, fmt.Errorf("unknown log backend %q", o.Backend)
	}
}

func defaultLevel(level string) string {
	if level == "" {
		return "info"
	}
	return level
}
