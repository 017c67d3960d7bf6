package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/labstack/echo"
	"go.uber.org/zap"

	"github.com/gigglywizard/scanner-backend/api"
	"github.com/gigglywizard/scanner-backend/cache"
	"github.com/gigglywizard/scanner-backend/cfg"
	"github.com/gigglywizard/scanner-backend/server"
)

func main() {
	// .env is optional, the environment wins when both are set
	_ = godotenv.Load()

	serviceCfg, err := cfg.New()
	if err != nil {
		panic(err.Error())
	}

	if err := setupSentry(serviceCfg); err != nil {
		panic(err)
	}
	defer sentry.Flush(2 * time.Second)

	logger, err := newLogger(serviceCfg)
	if err != nil {
		panic("cannot init logger")
	}
	logger.Info("Start scanner server...", zap.String("version", cfg.ServerVersion), zap.String("mode", serviceCfg.ServerMode))

	defer func() {
		if err := recover(); err != nil {
			logger.Error("cannot recover", zap.Any("panic", err))
		}
		_ = logger.Sync()
	}()

	srvConfig := server.Config{
		HoneypotURL:     serviceCfg.HoneypotURL,
		HoneypotChainID: serviceCfg.HoneypotChainID,
		ScanTimeout:     serviceCfg.ScanTimeout,

		ExplorerURL: serviceCfg.ExplorerURL,

		CacheAdapter:  cache.Adapter(serviceCfg.CacheEngine),
		CacheURL:      serviceCfg.CacheURL,
		CacheDB:       serviceCfg.CacheDB,
		CachePassword: serviceCfg.CachePassword,
		CacheIsFlush:  serviceCfg.CacheIsFlush,

		SessionTTL: serviceCfg.SessionTTL,

		Logger: logger,
	}
	srv, err := server.New(srvConfig)
	if err != nil {
		logger.Panic("cannot create server instance", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.Run(ctx, serviceCfg.SweepInterval)

	e := echo.New()
	go func() {
		if err := api.Start(e, srv, serviceCfg); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", zap.Error(err))
			cancel()
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
	case <-ctx.Done():
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	// event streams never end on their own, close them before draining
	srv.CloseStreams()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Warn("cannot shutdown http server", zap.Error(err))
	}
	if err := srv.Close(); err != nil {
		logger.Warn("cannot close server", zap.Error(err))
	}
	logger.Info("Scanner server stopped")
}

func setupSentry(sCfg cfg.ScannerConfig) error {
	if sCfg.SentryDSN == "" {
		return nil
	}
	opts := sentry.ClientOptions{
		Dsn:         sCfg.SentryDSN,
		Environment: sCfg.ServerMode,
		Release:     "scanner-backend@" + cfg.ServerVersion,
	}
	return sentry.Init(opts)
}
