package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"fare/internal/app"
	"fare/internal/config"
	"fare/internal/handler"
	"fare/internal/maps"
	internalRedis "fare/internal/redis"
	"fare/internal/repository/postgres"
	"fare/internal/service"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before database so we can instrument DB).
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s (with DB instrumentation)", cfg.NewRelic.AppName)
		}
	}

	// Initialize database with New Relic instrumentation.
	db, err := app.NewDatabase(ctx, cfg.Database, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to PostgreSQL")

	// Initialize Redis with New Relic instrumentation.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Connected to Redis")

	// Initialize the mapping API client only when a credential is present.
	// No credential is a normal configuration state: quotes then use the
	// local route fallbacks.
	var distanceClient service.DistanceClient
	var placeSearcher service.PlaceSearcher
	if cfg.Maps.APIKey != "" {
		distanceService, err := maps.NewDistanceService(cfg.Maps.APIKey)
		if err != nil {
			log.Printf("maps client unavailable, using route fallbacks: %v", err)
		} else {
			distanceClient = distanceService
			log.Println("Google Maps live routing enabled")
		}
		placesService, err := maps.NewPlacesService(cfg.Maps.APIKey)
		if err != nil {
			log.Printf("places client unavailable, using location directory: %v", err)
		} else {
			placeSearcher = placesService
		}
	} else {
		log.Println("No maps API key configured, using route fallbacks")
	}

	// Wire dependencies.
	server := wireServer(db, redisClient, distanceClient, placeSearcher, nrApp, cfg)

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(db *sql.DB, redisClient *redis.Client, distanceClient service.DistanceClient, placeSearcher service.PlaceSearcher, nrApp *newrelic.Application, cfg *config.Config) *http.Server {
	// Initialize Redis stores.
	tierCache := internalRedis.NewTierCacheStore(redisClient)

	// Initialize repositories.
	subscriptionRepo := postgres.NewSubscriptionRepository(db)
	rideRepo := postgres.NewRideRepository(db)

	// Initialize services.
	pricingService := service.NewPricingService()
	estimator := service.NewRouteEstimator(distanceClient)
	quoteService := service.NewQuoteService(estimator, pricingService, subscriptionRepo, rideRepo, tierCache, cfg.Quote.UpstreamTimeout)
	locationService := service.NewLocationService(placeSearcher, service.NewLocationDirectory())

	// Initialize handlers.
	quoteHandler := handler.NewQuoteHandler(quoteService)
	rideHandler := handler.NewRideHandler(quoteService)
	categoryHandler := handler.NewCategoryHandler(pricingService)
	locationHandler := handler.NewLocationHandler(locationService)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		QuoteHandler:    quoteHandler,
		RideHandler:     rideHandler,
		CategoryHandler: categoryHandler,
		LocationHandler: locationHandler,
		RedisClient:     redisClient,
		NewRelicApp:     nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
