package config

import "time"

// Config holds runtime settings for the banking CLI.
//
// Fields:
//   - BaseURL: base URL of the banking API, including the /api prefix.
//   - RequestTimeout: per-request deadline for API calls.
//   - DataFile: path to the SQLite file holding persisted client state.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	DataFile       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8080/api"
	c.RequestTimeout = 15 * time.Second
	c.DataFile = "digibank.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), command-line flags, and environment variables. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	parseEnv(cfg)
	return cfg
}
