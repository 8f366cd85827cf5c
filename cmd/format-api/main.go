package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sjsage522/formatworker/config"
	"sjsage522/formatworker/internal/format"
	"sjsage522/formatworker/logger"
	"sjsage522/formatworker/services/api"

	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	logger.Init()
	log := logger.Default

	cfg := config.LoadConfig()

	brands, err := format.LoadBrandMatcher(cfg.BrandsFile)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.BrandsFile).Msg("Failed to load brands")
	}

	router := api.SetupRouter(cfg.IsProduction(), api.NewHandler(brands))
	server := &http.Server{
		Addr:              cfg.APIAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().
			Str("addr", cfg.APIAddr).
			Int("brands", brands.Len()).
			Msg("Starting format API")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
