package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/feedbackdesk/internal/flagx"
	"github.com/dmitrijs2005/feedbackdesk/internal/timex"
)

// JsonConfig is the JSON file layout. Durations accept "24h" or integer
// nanoseconds.
type JsonConfig struct {
	ListenAddr            string         `json:"listen_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	BcryptCost            int            `json:"bcrypt_cost"`
	LogBackend            string         `json:"log_backend"`
	LogLevel              string         `json:"log_level"`
}

// parseJson overlays config with the file named by -c or -config. Fields the
// file leaves empty keep their value. Panics on read or decode errors.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.ListenAddr != "" {
		config.ListenAddr = c.ListenAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDuration.Duration > 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.BcryptCost > 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.LogBackend != "" {
		config.LogBackend = c.LogBackend
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
}
