package main

import (
	"context"
	"flag"
	"log"

	"github.com/campusarena/backend/config"
	"github.com/campusarena/backend/internal/database"
)

// promote-admin grants the admin flag to an existing student. It is the only
// way the flag changes; nothing in the API surface can set it.
func main() {
	email := flag.String("email", "", "email of the student to promote")
	flag.Parse()

	if *email == "" {
		log.Fatal("usage: promote-admin -email <address>")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	if cfg.ServiceDatabaseURL == "" {
		log.Fatal("SERVICE_DATABASE_URL must be set to promote admins")
	}

	store, err := database.NewAdminStore(cfg.ServiceDatabaseURL)
	if err != nil {
		log.Fatalf("Service database error: %v", err)
	}
	defer store.Close()

	if err := store.PromoteByEmail(context.Background(), *email); err != nil {
		log.Fatalf("Promotion error: %v", err)
	}

	log.Printf("%s is now an admin", *email)
}
