package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"careercompass-jobs/internal/aggregator"
	"careercompass-jobs/internal/api/routes"
	"careercompass-jobs/internal/cache"
	"careercompass-jobs/internal/config"
	"careercompass-jobs/internal/location"
	"careercompass-jobs/internal/logging"
	"careercompass-jobs/internal/recommend"
	"careercompass-jobs/internal/sources"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseLogging()

	logger := logging.GetGlobalLogger()
	logger.Info("Starting CareerCompass Jobs API")

	// Build the recommendation pipeline
	resolver := location.NewResolver()
	clients := sources.NewClients(cfg)
	for _, client := range clients {
		logger.Info("Job source configured", map[string]interface{}{
			"source":    client.Name(),
			"available": client.Available(),
		})
	}

	agg := aggregator.New(cfg, clients, resolver)
	profileCache := cache.NewProfileCache(cfg.Cache.ProfileTTL)
	userCache := cache.NewUserCache(cfg.Cache.UserTTL)

	// Redis is optional; the user tier survives without it.
	var redisClient *cache.RedisClient
	if cfg.Redis.URL != "" {
		redisClient = cache.NewRedisClient(cfg)
		pingCtx, cancel := context.WithTimeout(context.Background(), cfg.Redis.Timeout)
		if err := redisClient.Ping(pingCtx); err != nil {
			logger.Warn("Redis unavailable, user cache tier is memory-only", map[string]interface{}{
				"error": err.Error(),
			})
			redisClient = nil
		} else {
			logger.Info("Redis connected for user cache tier")
			defer redisClient.Close()
		}
		cancel()
	}

	svc := recommend.NewService(cfg, agg, resolver, profileCache, userCache, redisClient)

	// Periodic cache sweeps complement the lazy eviction at lookup time.
	sweepDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(cfg.Cache.CleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				profileCache.Sweep()
				userCache.Sweep()
			case <-sweepDone:
				return
			}
		}
	}()

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Setup routes
	routes.SetupRoutes(e, cfg, svc, agg, redisClient)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")
		close(sweepDone)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{
				"error": err.Error(),
			})
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil {
		logger.Fatal("Server failed to start", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
