// Package main runs the super app HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/go-petr/super-app/cmd/httpserver"
	"github.com/go-petr/super-app/internal/middleware"
	"github.com/go-petr/super-app/pkg/configpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	server, err := httpserver.New(config, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	if err := server.Start(); err != nil {
		logger.Fatal().Err(err).Msg("cannot start background jobs")
	}

	srv := &http.Server{
		Addr:    config.ServerAddress,
		Handler: server,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().
			Str("address", config.ServerAddress).
			Str("version", config.AppVersion).
			Msg("SUPER APP SERVER HAS STARTED")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("cannot start server")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	server.Stop(shutdownCtx)

	logger.Info().Msg("server stopped")
}
