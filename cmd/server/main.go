package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/poetis/backend/config"
	httpDelivery "github.com/poetis/backend/internal/delivery/http"
	"github.com/poetis/backend/internal/domain"
	"github.com/poetis/backend/internal/infrastructure/cache"
	"github.com/poetis/backend/internal/infrastructure/filterstore"
	"github.com/poetis/backend/internal/infrastructure/history"
	"github.com/poetis/backend/internal/infrastructure/poeapi"
	"github.com/poetis/backend/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogger(cfg.Logging)

	log.Info().
		Str("environment", cfg.Server.Environment).
		Str("port", cfg.Server.Port).
		Msg("Starting Poetis Backend v1.0.0")

	// Initialize infrastructure dependencies
	filters, err := filterstore.NewStore(cfg.Filter.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Filter.Path).Msg("Failed to load filter document")
	}
	log.Info().Str("path", filters.Path()).Msg("Filter document loaded")

	inventoryCache := cache.NewInventoryCache(time.Minute)
	defer inventoryCache.Close()
	log.Info().Dur("ttl", cfg.Inventory.CacheTTL).Msg("Inventory cache ready")

	client := poeapi.NewClient(poeapi.Settings{
		BaseURL:     cfg.Inventory.BaseURL,
		AccountName: cfg.Inventory.AccountName,
		League:      cfg.Inventory.League,
		SessionID:   cfg.Inventory.SessionID,
		RequestRate: cfg.Inventory.RequestRate,
	})
	log.Info().
		Str("base_url", cfg.Inventory.BaseURL).
		Str("account", cfg.Inventory.AccountName).
		Str("league", cfg.Inventory.League).
		Float64("request_rate", cfg.Inventory.RequestRate).
		Msg("Stash API configured")

	var scanHistory domain.ScanRepository
	if cfg.History.Type == "postgres" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		repo, err := history.NewPostgresRepository(ctx, cfg.History.DSN, cfg.History.MaxConnections)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to history database")
		}
		defer repo.Close()
		scanHistory = repo
		log.Info().Msg("Scan history stored in PostgreSQL")
	} else {
		log.Info().Msg("Scan history disabled")
	}

	// Initialize usecase layer
	scanService := usecase.NewScanService(
		client,
		inventoryCache,
		filters,
		scanHistory,
		usecase.ScanServiceConfig{
			CacheTTL:        cfg.Inventory.CacheTTL,
			MinMatches:      cfg.Scan.MinMatches,
			AllowIdentified: cfg.Recipe.AllowIdentified,
			FillGreedy:      cfg.Recipe.FillGreedy,
			MaxSets:         cfg.Recipe.MaxSets,
		},
	)

	log.Info().
		Int("min_matches", cfg.Scan.MinMatches).
		Bool("allow_identified", cfg.Recipe.AllowIdentified).
		Bool("fill_greedy", cfg.Recipe.FillGreedy).
		Int("max_sets", cfg.Recipe.MaxSets).
		Msg("Scan defaults")

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(scanService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("Server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shut down")
	}
	log.Info().Msg("Server stopped")
}

// setupLogger configures the global zerolog logger
func setupLogger(cfg config.LoggingConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
		return
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
