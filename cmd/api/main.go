package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/nursecare/backend/internal/adapters/cache"
	"github.com/zatekoja/nursecare/backend/internal/adapters/catalog"
	"github.com/zatekoja/nursecare/backend/internal/adapters/events"
	"github.com/zatekoja/nursecare/backend/internal/adapters/memory"
	"github.com/zatekoja/nursecare/backend/internal/adapters/notifications"
	"github.com/zatekoja/nursecare/backend/internal/adapters/providers/geolocation"
	"github.com/zatekoja/nursecare/backend/internal/api/handlers"
	"github.com/zatekoja/nursecare/backend/internal/api/middleware"
	"github.com/zatekoja/nursecare/backend/internal/api/routes"
	"github.com/zatekoja/nursecare/backend/internal/application/services"
	"github.com/zatekoja/nursecare/backend/internal/domain/entities"
	"github.com/zatekoja/nursecare/backend/internal/domain/providers"
	"github.com/zatekoja/nursecare/backend/internal/infrastructure/clients/redis"
	"github.com/zatekoja/nursecare/backend/internal/infrastructure/observability"
	"github.com/zatekoja/nursecare/backend/pkg/clock"
	"github.com/zatekoja/nursecare/backend/pkg/config"
	"github.com/zatekoja/nursecare/backend/pkg/retry"
)

const (
	sessionIdleTTL = 30 * time.Minute
	sweepInterval  = time.Minute

	catalogWarmInterval = 5 * time.Minute
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.App.Env)
	logger := observability.GetLogger()

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
			logger.Info().Str("endpoint", cfg.OTEL.Endpoint).Msg("OpenTelemetry initialized")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize metrics")
	}

	// Redis backs the cache and event bus when enabled; otherwise both stay in process
	var (
		cacheProvider providers.CacheProvider
		eventBus      providers.EventBus
		redisPinger   handlers.Pinger
	)
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(ctx, &cfg.Redis, retry.DefaultConfig())
		if err != nil {
			logger.Fatal().Err(err).Str("addr", cfg.Redis.RedisAddr()).Msg("Failed to initialize Redis client")
		}
		defer redisClient.Close()

		cacheProvider = cache.NewRedisAdapter(redisClient, "nursecare:")
		eventBus = events.NewRedisEventBus(redisClient)
		redisPinger = redisClient
		logger.Info().Str("addr", cfg.Redis.RedisAddr()).Msg("Redis client initialized")
	} else {
		cacheProvider = cache.NewMemoryAdapter()
		eventBus = events.NewMemoryEventBus()
		logger.Info().Msg("Redis disabled, using in-memory cache and event bus")
	}

	// Initialize adapters
	catalogRepo := catalog.NewCachedCatalogAdapter(catalog.NewStaticCatalogAdapter(), cacheProvider)
	bookingRepo := memory.NewBookingAdapter(catalog.DemoBookings())

	// Keep the catalog cache hot
	services.NewCatalogWarmer(catalogRepo).StartPeriodicWarming(ctx, catalogWarmInterval)

	// Initialize services
	catalogService := services.NewCatalogService(catalogRepo)
	bookingService := services.NewBookingService(bookingRepo, eventBus, metrics)
	translator := services.NewTranslator()
	locationFactory := geolocation.NewFactory(cfg.Geolocation)

	sessionService := services.NewSessionService(
		catalogService,
		bookingService,
		translator,
		clock.NewReal(),
		metrics,
		locationFactory,
		notifications.NewLogSink(),
		services.SessionConfig{
			DefaultLanguage:   entities.ParseLanguage(cfg.App.DefaultLanguage),
			LocationTimeout:   cfg.Geolocation.Timeout,
			ConfirmationDelay: cfg.Booking.ConfirmationDelay,
			Emergency: services.EmergencyConfig{
				SearchDelay: cfg.Emergency.SearchDelay,
				Surcharge:   cfg.Emergency.Surcharge,
			},
		},
	)

	// Initialize handlers
	sseHandler := handlers.NewSSEHandler(eventBus)
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit, metrics)

	router := routes.NewRouter(
		routes.Handlers{
			Health:      handlers.NewHealthHandler(redisPinger, sessionService, sseHandler),
			Catalog:     handlers.NewCatalogHandler(catalogService),
			Session:     handlers.NewSessionHandler(sessionService),
			Cart:        handlers.NewCartHandler(sessionService),
			BookingFlow: handlers.NewBookingFlowHandler(sessionService),
			Booking:     handlers.NewBookingHandler(bookingService, sessionService),
			Emergency:   handlers.NewEmergencyHandler(sessionService),
			Location:    handlers.NewLocationHandler(sessionService),
			Translation: handlers.NewTranslationHandler(translator),
			SSE:         sseHandler,
		},
		middleware.NewCacheMiddleware(cacheProvider, metrics),
		rateLimiter,
		metrics,
		cfg.Server.AllowedOrigins,
	)

	// Expire idle sessions and forget quiet clients
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sessionService.Sweep(ctx, sessionIdleTTL)
				rateLimiter.Prune()
			}
		}
	}()

	// WriteTimeout stays zero so booking streams are not cut off
	server := &http.Server{
		Addr:        cfg.Server.Addr(),
		Handler:     router.SetupRoutes(),
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 120 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().Str("addr", server.Addr).Str("geolocation", cfg.Geolocation.Provider).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("Server shutting down")
	cancel()

	// Close the event bus first so open streams end and Shutdown does not wait on them
	if err := eventBus.Close(); err != nil {
		logger.Error().Err(err).Msg("Error closing event bus")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Error during server shutdown")
	}

	logger.Info().Msg("Server stopped")
}
