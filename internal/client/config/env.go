package config

import (
	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable name, e.g. FEEDBACKDESK_AUTH_MODE.
const EnvPrefix = "FEEDBACKDESK_"

// parseEnv overlays Config with variables that are set. Unset variables keep
// the current value. Panics on malformed values.
func parseEnv(cfg *Config) {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		panic(err)
	}
}
