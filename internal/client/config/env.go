package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config with values from environment variables. Unset or
// malformed variables leave the current values in place.
func parseEnv(cfg *Config) {
	if v := os.Getenv("BANK_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("BANK_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("BANK_DATA_FILE"); v != "" {
		cfg.DataFile = v
	}
}
