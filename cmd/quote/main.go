package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"currency-services/internal/bootstrap"
	"currency-services/internal/config"
	infraconfig "currency-services/internal/infrastructure/config"
	httpserver "currency-services/internal/infrastructure/http"
	"currency-services/internal/infrastructure/logx"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

func main() {
	logger := logx.L().With(zap.String("service", "currency-report"))
	defer func() { _ = logger.Sync() }()
	cfg := config.Load()
	addr := cfg.Addr(infraconfig.DefaultQuotePort)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler, err := bootstrap.BuildQuoteAPI(ctx, cfg)
	if err != nil {
		logger.Fatal("bootstrap quote api", zap.Error(err))
	}
	if err := httpserver.Serve(ctx, addr, handler, logger); err != nil {
		logger.Fatal("listen", zap.Error(err))
	}
}
