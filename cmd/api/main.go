package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campusarena/backend/config"
	"github.com/campusarena/backend/internal/database"
	"github.com/campusarena/backend/internal/server"
	"github.com/campusarena/backend/internal/service"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Connect application database
	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Database error: %v", err)
	}

	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Fatalf("Migration error: %v", err)
	}

	// Connect Redis
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Redis error: %v", err)
	}

	// Elevated store for the admin endpoints; optional
	var elevated service.StudentLister
	if cfg.ServiceDatabaseURL != "" {
		adminStore, err := database.NewAdminStore(cfg.ServiceDatabaseURL)
		if err != nil {
			log.Fatalf("Service database error: %v", err)
		}
		defer adminStore.Close()
		elevated = adminStore
	} else {
		log.Printf("SERVICE_DATABASE_URL not set; admin endpoints will report a configuration error")
	}

	// Create and start server
	srv := server.New(cfg, db, redisClient, elevated)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or error
	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	// Gracefully shutdown the server
	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
