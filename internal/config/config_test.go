package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CURRENCY_REPORT_URL", "")
	t.Setenv("QUOTE_TIMEOUT_MS", "")
	t.Setenv("PORT", "")

	cfg := Load()
	require.Equal(t, "http://currency-report:8100", cfg.CurrencyReportURL)
	require.Equal(t, 5*time.Second, cfg.QuoteTimeout)
	require.Equal(t, 0, cfg.QuoteRetries)
	require.Equal(t, "static", cfg.DataSource)
	require.Equal(t, ":8100", cfg.Addr("8100"))
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CURRENCY_REPORT_URL", "http://localhost:9999")
	t.Setenv("QUOTE_TIMEOUT_MS", "250")
	t.Setenv("QUOTE_RETRIES", "2")
	t.Setenv("PORT", "8300")
	t.Setenv("DATA_SOURCE", "redis")

	cfg := Load()
	require.Equal(t, "http://localhost:9999", cfg.CurrencyReportURL)
	require.Equal(t, 250*time.Millisecond, cfg.QuoteTimeout)
	require.Equal(t, 2, cfg.QuoteRetries)
	require.Equal(t, "redis", cfg.DataSource)
	require.Equal(t, ":8300", cfg.Addr("8100"))
}

func TestLoad_InvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("QUOTE_TIMEOUT_MS", "soon")
	require.Equal(t, 5*time.Second, Load().QuoteTimeout)

	t.Setenv("QUOTE_TIMEOUT_MS", "-10")
	require.Equal(t, 5*time.Second, Load().QuoteTimeout)
}
