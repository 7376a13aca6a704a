// Command os4p-server serves the deployment calculator over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/os4p/engine/internal/config"
	"github.com/os4p/engine/internal/engine"
	"github.com/os4p/engine/internal/server"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	listenAddr := flag.String("listen", "", "Listen address (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		bootLogger := config.NewLogger(config.LoggingConfig{})
		bootLogger.Fatal().Err(err).Msg("loading configuration")
	}

	logger := config.NewLogger(cfg.Logging)
	cfg.ApplyEnv(logger)
	if *listenAddr != "" {
		cfg.Server.ListenAddr = *listenAddr
	}

	eng, err := engine.New(cfg.Engine, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid engine configuration")
	}

	srv := server.New(cfg.Server, eng, logger)

	shutdownDone := make(chan struct{})
	go func() {
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
		<-signalChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("shutdown failed")
		}
		close(shutdownDone)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("server failed")
	}
	<-shutdownDone
}
