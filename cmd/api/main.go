package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/recipeshelf/backend/config"
	"github.com/recipeshelf/backend/internal/api"
	"github.com/recipeshelf/backend/internal/database"
	"github.com/recipeshelf/backend/internal/router"
	"github.com/recipeshelf/backend/internal/server"
	"github.com/recipeshelf/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis is optional: without it the write endpoints run unthrottled.
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Redis unavailable, rate limiting disabled: %v", err)
		redisClient = nil
	}

	s3Config, err := config.NewS3Config(context.Background())
	if err != nil {
		log.Fatalf("Failed to configure S3: %v", err)
	}

	imageService := service.NewImageService(s3Config)
	recipeService := service.NewRecipeService(db, imageService)
	reviewService := service.NewReviewService(db)
	authService := service.NewAuthService(db, cfg.JWTSecret)

	recipeHandler := api.NewRecipeHandler(recipeService, reviewService)
	authHandler := api.NewAuthHandler(authService)

	engine := router.SetupRouter(recipeHandler, authHandler, authService, redisClient, cfg.AllowedOrigins)
	srv := server.New(engine, cfg.ServerHost+":"+cfg.ServerPort)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Printf("Starting server on %s:%s...", cfg.ServerHost, cfg.ServerPort)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
