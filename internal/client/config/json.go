package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/feedbackdesk/internal/flagx"
	"github.com/dmitrijs2005/feedbackdesk/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations may
// be strings like "10s" or integer nanoseconds.
type JsonConfig struct {
	IdentityURL    string          `json:"identity_url"`
	AuthMode       string          `json:"auth_mode"`
	StoreDSN       string          `json:"store_dsn"`
	RequestTimeout timex.Duration  `json:"request_timeout"`
	RetryMax       *int            `json:"retry_max"`
	RateLimit      *float64        `json:"rate_limit"`
	LocalLatency   *timex.Duration `json:"local_latency"`
	LogBackend     string          `json:"log_backend"`
	LogLevel       string          `json:"log_level"`
}

// parseJson overlays Config with values from the file named by -c or
// -config. Fields missing from the file keep their current value. Panics on
// read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	if jc.IdentityURL != "" {
		cfg.IdentityURL = jc.IdentityURL
	}
	if jc.AuthMode != "" {
		cfg.AuthMode = jc.AuthMode
	}
	if jc.StoreDSN != "" {
		cfg.StoreDSN = jc.StoreDSN
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RetryMax != nil {
		cfg.RetryMax = *jc.RetryMax
	}
	if jc.RateLimit != nil {
		cfg.RateLimit = *jc.RateLimit
	}
	if jc.LocalLatency != nil {
		cfg.LocalLatency = jc.LocalLatency.Duration
	}
	if jc.LogBackend != "" {
		cfg.LogBackend = jc.LogBackend
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
