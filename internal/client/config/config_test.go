package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"testbin"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	require.Equal(t, "http://127.0.0.1:8080/api", cfg.BaseURL)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
	require.Equal(t, "digibank.db", cfg.DataFile)
}

func TestLoadConfig_DefaultsOnly(t *testing.T) {
	resetArgs(t)

	cfg := LoadConfig()
	require.Equal(t, "http://127.0.0.1:8080/api", cfg.BaseURL)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_EnvOverridesFlags(t *testing.T) {
	resetArgs(t, "-a", "http://flags.example.com/api")
	t.Setenv("BANK_API_URL", "http://env.example.com/api")
	t.Setenv("BANK_TIMEOUT", "30")
	t.Setenv("BANK_DATA_FILE", "/tmp/bank.db")

	cfg := LoadConfig()
	require.Equal(t, "http://env.example.com/api", cfg.BaseURL)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.Equal(t, "/tmp/bank.db", cfg.DataFile)
}

func TestParseEnv_MalformedTimeoutIgnored(t *testing.T) {
	t.Setenv("BANK_TIMEOUT", "soon")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
}
