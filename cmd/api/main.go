package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dnd-character-api/internal/clients/srd"
	"github.com/KirkDiggler/dnd-character-api/internal/config"
	"github.com/KirkDiggler/dnd-character-api/internal/handlers/api"
	"github.com/KirkDiggler/dnd-character-api/internal/repositories/characters"
	"github.com/KirkDiggler/dnd-character-api/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Create SRD API client
	srdClient, err := srd.New(&srd.Config{
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	})
	if err != nil {
		log.Fatalf("Failed to create SRD client: %v", err)
	}

	providerConfig := &services.ProviderConfig{
		SRDClient: srdClient,
	}

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	// Try to connect to Redis, fall back to in-memory storage
	redisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if pingErr := redisClient.Ping(pingCtx).Err(); pingErr != nil {
		cancel()
		log.Printf("Failed to connect to Redis at %s: %v", cfg.Redis.Addr, pingErr)
		log.Println("Falling back to in-memory repositories")
		redisClient = nil
	} else {
		cancel()
		log.Printf("Connected to Redis at %s", cfg.Redis.Addr)
		providerConfig.CharacterRepository = characters.NewRedisRepository(&characters.RedisRepoConfig{
			Client:   redisClient,
			DraftTTL: cfg.Redis.DraftTTL,
		})
	}

	// Create service provider
	serviceProvider, err := services.NewProvider(providerConfig)
	if err != nil {
		log.Fatalf("Failed to create services: %v", err)
	}

	// Create API handler and router
	handler, err := api.NewHandler(&api.HandlerConfig{
		ServiceProvider: serviceProvider,
	})
	if err != nil {
		log.Fatalf("Failed to create handler: %v", err)
	}

	router := gin.Default()
	handler.RegisterRoutes(router)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Listening on :%s", cfg.Server.Port)
		if serveErr := server.ListenAndServe(); serveErr != nil && serveErr != http.ErrServerClosed {
			log.Fatalf("Server error: %v", serveErr)
		}
	}()

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}

	// Clean up Redis connection if we have one
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}
}
