package config

import (
	"time"

	"github.com/spf13/viper"

	infraconfig "currency-services/internal/infrastructure/config"
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	Port     string
	// Data source for the rate table and historical series ("static" or "redis")
	DataSource string
	// Upstream quote provider (history service)
	CurrencyReportURL string
	QuoteTimeout      time.Duration
	QuoteRetries      int
	// Redis (seed data)
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	RedisRatesKey   string
	RedisHistoryKey string
}

// Addr returns the listen address, falling back to defPort when PORT is unset.
func (c Config) Addr(defPort string) string {
	if c.Port == "" {
		return ":" + defPort
	}
	return ":" + c.Port
}

func durMS(v *viper.Viper, key string, def time.Duration) time.Duration {
	ms := v.GetInt(key)
	if ms <= 0 {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

// Load reads environment variables and applies defaults.
func Load() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ENV", "local")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATA_SOURCE", "static")
	v.SetDefault("CURRENCY_REPORT_URL", infraconfig.DefaultCurrencyReportURL)
	v.SetDefault("QUOTE_RETRIES", 0)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_RATES_KEY", infraconfig.DefaultRedisRatesKey)
	v.SetDefault("REDIS_HISTORY_KEY", infraconfig.DefaultRedisHistoryKey)

	retries := v.GetInt("QUOTE_RETRIES")
	if retries < 0 {
		retries = 0
	}

	return Config{
		Env:               v.GetString("ENV"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		Port:              v.GetString("PORT"),
		DataSource:        v.GetString("DATA_SOURCE"),
		CurrencyReportURL: v.GetString("CURRENCY_REPORT_URL"),
		QuoteTimeout:      durMS(v, "QUOTE_TIMEOUT_MS", infraconfig.DefaultQuoteTimeout),
		QuoteRetries:      retries,
		RedisAddr:         v.GetString("REDIS_ADDR"),
		RedisPassword:     v.GetString("REDIS_PASSWORD"),
		RedisDB:           v.GetInt("REDIS_DB"),
		RedisRatesKey:     v.GetString("REDIS_RATES_KEY"),
		RedisHistoryKey:   v.GetString("REDIS_HISTORY_KEY"),
	}
}
