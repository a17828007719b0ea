package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/aashray-care/aashray-backend/internal/adapters/cache"
	"github.com/aashray-care/aashray-backend/internal/adapters/database"
	"github.com/aashray-care/aashray-backend/internal/adapters/events"
	"github.com/aashray-care/aashray-backend/internal/adapters/notifications"
	"github.com/aashray-care/aashray-backend/internal/api/handlers"
	"github.com/aashray-care/aashray-backend/internal/api/routes"
	"github.com/aashray-care/aashray-backend/internal/application/services"
	"github.com/aashray-care/aashray-backend/internal/domain/providers"
	"github.com/aashray-care/aashray-backend/internal/domain/repositories"
	"github.com/aashray-care/aashray-backend/internal/infrastructure/clients/postgres"
	"github.com/aashray-care/aashray-backend/internal/infrastructure/clients/redis"
	"github.com/aashray-care/aashray-backend/internal/infrastructure/observability"
	"github.com/aashray-care/aashray-backend/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger(cfg.App.ServiceName, cfg.App.Environment)
	logger := observability.GetLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		otelShutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := otelShutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
			logger.Info().Msg("OpenTelemetry initialized")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize metrics")
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()
	logger.Info().Msg("PostgreSQL client initialized")

	// Initialize Redis client. The application works without it, at the cost
	// of caching and event publication.
	var cacheProvider providers.CacheProvider
	var eventBus providers.EventBus
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		logger.Warn().Err(err).Msg("Redis unavailable, continuing without cache and event bus")
	} else {
		defer redisClient.Close()
		cacheProvider = cache.NewRedisAdapter(redisClient)
		eventBus = events.NewRedisEventBus(redisClient)
		logger.Info().Msg("Redis client initialized")
	}

	// Initialize adapters
	baseProviderAdapter := database.NewProviderAdapter(pgClient)
	var providerAdapter repositories.ProviderRepository
	if cacheProvider != nil {
		providerAdapter = database.NewCachedProviderAdapter(baseProviderAdapter, cacheProvider)
	} else {
		providerAdapter = baseProviderAdapter
	}

	bookingAdapter := database.NewBookingAdapter(pgClient)
	reviewAdapter := database.NewReviewAdapter(pgClient)
	relativeAdapter := database.NewRelativeAdapter(pgClient)
	contactAdapter := database.NewEmergencyContactAdapter(pgClient)
	userAdapter := database.NewUserAdapter(pgClient)

	// Initialize SMS notifier
	var notifier providers.Notifier
	if cfg.SMS.Mock {
		notifier = notifications.NewMockNotifier()
		logger.Info().Msg("Using mock SMS notifier")
	} else {
		notifier, err = notifications.NewSMSGatewayNotifier(&cfg.SMS)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to initialize SMS gateway")
		}
	}

	// Initialize services
	notificationLog := services.NewNotificationLog(sqlx.NewDb(pgClient.DB(), "postgres"))
	notificationService := services.NewNotificationService(notifier, contactAdapter, notificationLog)
	delegationService := services.NewDelegationService(relativeAdapter)
	ratingService := services.NewRatingService(reviewAdapter, providerAdapter)
	bookingService := services.NewBookingService(
		bookingAdapter,
		providerAdapter,
		userAdapter,
		delegationService,
		notificationService,
		eventBus,
	)
	reviewService := services.NewReviewService(reviewAdapter, ratingService, eventBus)
	providerService := services.NewProviderService(providerAdapter)
	relativeService := services.NewRelativeService(relativeAdapter, userAdapter)
	contactService := services.NewEmergencyContactService(contactAdapter)
	userService := services.NewUserService(userAdapter)

	// Initialize handlers
	bookingHandler := handlers.NewBookingHandler(bookingService)
	providerHandler := handlers.NewProviderHandler(providerService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	relativeHandler := handlers.NewRelativeHandler(relativeService)
	emergencyHandler := handlers.NewEmergencyHandler(contactService, notificationService, userService)
	userHandler := handlers.NewUserHandler(userService)
	streamHandler := handlers.NewStreamHandler(eventBus)

	// Set up router
	router := routes.NewRouter(
		bookingHandler,
		providerHandler,
		reviewHandler,
		relativeHandler,
		emergencyHandler,
		userHandler,
		streamHandler,
		cfg.Identity.JWTSecret,
		metrics,
	)
	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().Str("addr", serverAddr).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Error during server shutdown")
	}

	if eventBus != nil {
		if err := eventBus.Close(); err != nil {
			logger.Error().Err(err).Msg("Error closing event bus")
		}
	}

	logger.Info().Msg("Server stopped")
}
