package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"currency-services/internal/application"
	"currency-services/internal/config"
	"currency-services/internal/domain"
	httpserver "currency-services/internal/infrastructure/http"
	"currency-services/internal/infrastructure/httpx"
	"currency-services/internal/infrastructure/logx"
	"currency-services/internal/infrastructure/provider"
	redisstore "currency-services/internal/infrastructure/redis"
	"currency-services/internal/infrastructure/static"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	DataSourceStatic = "static"
	DataSourceRedis  = "redis"
)

// BuildQuoteAPI wires the currency-report service.
func BuildQuoteAPI(ctx context.Context, cfg config.Config) (http.Handler, error) {
	rates, err := BuildRateTable(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logx.L().Info("rate table loaded", zap.String("source", cfg.DataSource), zap.Int("pairs", rates.Len()))
	svc := application.NewQuoteService(rates)
	return httpserver.NewQuoteRouter(httpserver.NewQuoteServer(svc)), nil
}

// BuildHistoryAPI wires the currency-history service.
func BuildHistoryAPI(ctx context.Context, cfg config.Config) (http.Handler, error) {
	series, err := BuildHistoricalSeries(ctx, cfg, time.Now())
	if err != nil {
		return nil, err
	}
	logx.L().Info("historical series loaded",
		zap.String("source", cfg.DataSource),
		zap.Int("pairs", series.Len()),
		zap.String("currency_report_url", cfg.CurrencyReportURL),
	)
	svc := application.NewHistoryService(series, BuildQuoteSource(cfg),
		application.WithUpstreamTimeout(cfg.QuoteTimeout),
		application.WithLogger(logx.L()),
	)
	return httpserver.NewHistoryRouter(httpserver.NewHistoryServer(svc)), nil
}

// BuildQuoteSource returns the HTTP client for the currency-report service.
func BuildQuoteSource(cfg config.Config) application.QuoteSource {
	client := httpx.New(cfg.QuoteTimeout)
	client.Retries = uint64(cfg.QuoteRetries)
	return &provider.CurrencyReportProvider{BaseURL: cfg.CurrencyReportURL, Client: client}
}

// BuildRateTable loads the rate table from DATA_SOURCE.
func BuildRateTable(ctx context.Context, cfg config.Config) (*static.RateTable, error) {
	switch cfg.DataSource {
	case "", DataSourceStatic:
		return static.NewRateTable(static.DefaultRates()), nil
	case DataSourceRedis:
		var rates map[domain.Pair]float64
		err := withSeed(ctx, cfg, func(s *redisstore.Seed) (err error) {
			rates, err = s.LoadRates(ctx)
			return err
		})
		if err != nil {
			return nil, err
		}
		return static.NewRateTable(rates), nil
	default:
		return nil, fmt.Errorf("unsupported DATA_SOURCE=%q", cfg.DataSource)
	}
}

// BuildHistoricalSeries loads the historical series from DATA_SOURCE. Static
// series are relative to now.
func BuildHistoricalSeries(ctx context.Context, cfg config.Config, now time.Time) (*static.HistoricalSeries, error) {
	switch cfg.DataSource {
	case "", DataSourceStatic:
		return static.NewHistoricalSeries(static.DefaultHistory(now)), nil
	case DataSourceRedis:
		var hist map[domain.Pair][]domain.PricePoint
		err := withSeed(ctx, cfg, func(s *redisstore.Seed) (err error) {
			hist, err = s.LoadHistory(ctx)
			return err
		})
		if err != nil {
			return nil, err
		}
		return static.NewHistoricalSeries(hist), nil
	default:
		return nil, fmt.Errorf("unsupported DATA_SOURCE=%q", cfg.DataSource)
	}
}

// withSeed opens a short-lived Redis client; tables are read once at start.
func withSeed(ctx context.Context, cfg config.Config, fn func(*redisstore.Seed) error) error {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer func() { _ = client.Close() }()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
	}
	return fn(redisstore.New(client, cfg.RedisRatesKey, cfg.RedisHistoryKey))
}
