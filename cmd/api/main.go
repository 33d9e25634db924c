package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/nearbycare/internal/adapters/providers/places"
	"github.com/zatekoja/nearbycare/internal/adapters/ratelimit"
	"github.com/zatekoja/nearbycare/internal/api/handlers"
	"github.com/zatekoja/nearbycare/internal/api/routes"
	"github.com/zatekoja/nearbycare/internal/application/services"
	"github.com/zatekoja/nearbycare/internal/domain/providers"
	"github.com/zatekoja/nearbycare/internal/infrastructure/clients/redis"
	"github.com/zatekoja/nearbycare/internal/infrastructure/observability"
	"github.com/zatekoja/nearbycare/pkg/config"
	"github.com/zatekoja/nearbycare/pkg/secrets"
)

func main() {
	// Pull credentials from Vault into the environment before reading config
	vaultResult, vaultErr := secrets.ApplyVaultSecrets(context.Background(), secrets.LoadVaultConfigFromEnv())

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)

	log.Info().
		Str("version", cfg.OTEL.ServiceVersion).
		Str("env", cfg.Env).
		Str("places_provider", cfg.Places.Provider).
		Msg("Starting nearby care API")

	if vaultErr != nil {
		log.Warn().Err(vaultErr).Msg("Failed to load secrets from Vault")
	} else if vaultResult.Enabled {
		log.Info().Strs("loaded", vaultResult.Loaded).Strs("skipped", vaultResult.Skipped).Msg("Vault secrets applied")
	}

	// Set up context for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			observability.ExportLogs()
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(shutdownCtx); err != nil {
					log.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized successfully")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize metrics")
	}

	// Rate limiting needs Redis; without it requests are not throttled
	var rateLimiter providers.RateLimiter
	if cfg.Redis.Enabled && cfg.RateLimit.Enabled {
		redisClient, err := redis.NewClient(ctx, &cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable; rate limiting disabled")
		} else {
			defer redisClient.Close()
			rateLimiter = ratelimit.NewRedisRateLimiter(redisClient, cfg.RateLimit.RequestsPerWindow, cfg.RateLimit.Window)
			log.Info().
				Int("requests", cfg.RateLimit.RequestsPerWindow).
				Dur("window", cfg.RateLimit.Window).
				Msg("Rate limiting enabled")
		}
	}

	var placesProvider providers.PlacesProvider
	switch cfg.Places.Provider {
	case "mock":
		log.Warn().Msg("Using fixture places provider")
		placesProvider = places.NewMockPlacesProvider()
	default:
		placesProvider = places.NewGooglePlacesProviderWithOptions(
			cfg.Places.APIKey,
			cfg.Places.BaseURL,
			&http.Client{Timeout: cfg.Places.HTTPTimeout},
		)
	}

	if cfg.Places.APIKey == "" {
		log.Warn().Str("setting", config.PlacesAPIKeyEnv).Msg("Places credential is not set; searches will fail")
	}

	nearbyService := services.NewNearbyCareService(placesProvider, services.NearbyCareOptions{
		Categories:     cfg.Places.Categories,
		RadiusMeters:   cfg.Places.RadiusMeters,
		Language:       cfg.Places.Language,
		DetailCap:      cfg.Places.DetailCap,
		MaxConcurrency: cfg.Places.MaxConcurrency,
	}, metrics)

	nearbyHandler := handlers.NewNearbyHandler(nearbyService, cfg.Places.APIKey, config.PlacesAPIKeyEnv)

	router := routes.NewRouter(nearbyHandler, rateLimiter, metrics)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", serverAddr).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Server shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
