package config

import "time"

const (
	DefaultQuotePort         = "8100"
	DefaultHistoryPort       = "8200"
	DefaultCurrencyReportURL = "http://currency-report:8100"
	DefaultQuoteTimeout      = 5 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultRedisRatesKey     = "currency:rates"
	DefaultRedisHistoryKey   = "currency:history"
)
