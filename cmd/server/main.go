package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"github.com/augustintsang/gigaml-takehome/internal/app"
	"github.com/augustintsang/gigaml-takehome/internal/config"
	"github.com/augustintsang/gigaml-takehome/internal/handler"
	"github.com/augustintsang/gigaml-takehome/internal/service"
	"github.com/augustintsang/gigaml-takehome/internal/store"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before Redis so we can instrument it).
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
			log.Printf("New Relic enabled: app=%s", cfg.NewRelic.AppName)
		}
	}

	// Initialize Redis with New Relic instrumentation. A nil client means
	// Redis is disabled and idempotency caching is off.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
		log.Println("Connected to Redis")
	}

	// Wire dependencies.
	server, simService := wireServer(redisClient, nrApp, cfg)

	// Optional background clock driving the simulation.
	runCtx, stopAutoTick := context.WithCancel(context.Background())
	defer stopAutoTick()
	if cfg.Sim.AutoTick {
		log.Printf("auto-tick enabled: interval=%s", cfg.Sim.TickInterval)
		go simService.RunAutoTick(runCtx, cfg.Sim.TickInterval)
	}

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

	stopAutoTick()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server along with
// the simulation service, which the caller may drive on a background clock.
func wireServer(redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) (*http.Server, *service.SimService) {
	// All state lives in a single in-memory store.
	st := store.New()

	// Initialize services.
	matcher := service.NewMatcher()
	driverService := service.NewDriverService(st)
	riderService := service.NewRiderService(st)
	rideService := service.NewRideService(st, matcher)
	simService := service.NewSimService(st)

	// Initialize handlers.
	driverHandler := handler.NewDriverHandler(driverService)
	riderHandler := handler.NewRiderHandler(riderService)
	rideHandler := handler.NewRideHandler(rideService)
	simHandler := handler.NewSimHandler(simService)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		DriverHandler: driverHandler,
		RiderHandler:  riderHandler,
		RideHandler:   rideHandler,
		SimHandler:    simHandler,
		AllowedOrigin: cfg.Server.AllowedOrigin,
		RedisClient:   redisClient,
		NewRelicApp:   nrApp,
	})

	// Create HTTP server.
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return server, simService
}
