// Command numerized serves the numerize JSON API over HTTP.
//
// Configuration comes from the embedded defaults, an optional YAML file
// (-config), a .env file in the working directory and the environment.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/az-ai-labs/numerizer/internal/config"
	"github.com/az-ai-labs/numerizer/internal/logger"
	"github.com/az-ai-labs/numerizer/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	if err := config.LoadDotenv(); err != nil {
		logger.New("info", false).Warn("failed to load .env", zap.Error(err))
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.New("info", false).Fatal("failed to load config", zap.Error(err))
	}

	log := logger.New(cfg.LogLevel, cfg.IsDevelopment())
	defer logger.Sync(log)

	num, err := cfg.Numerizer()
	if err != nil {
		log.Fatal("failed to build numerizer", zap.Error(err))
	}

	srv := &http.Server{
		Addr: cfg.Server.Addr,
		Handler: server.New(num, log, server.Options{
			MaxBodyBytes: cfg.Server.MaxBodyBytes,
			CORSOrigins:  cfg.Server.CORSOrigins,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening",
			zap.String("addr", cfg.Server.Addr),
			zap.Stringer("locale", num.Locale()),
			zap.Stringer("system", num.NumberingSystem()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		log.Info("shutting down gracefully", zap.Stringer("signal", sig))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}
