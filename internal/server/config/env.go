package config

import "github.com/caarlos0/env/v11"

// EnvPrefix is prepended to every variable name, e.g. FEEDBACKDESK_SERVER_SECRET_KEY.
const EnvPrefix = "FEEDBACKDESK_SERVER_"

func parseEnv(cfg *Config) {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		panic(err)
	}
}
