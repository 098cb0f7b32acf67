package main

import (
	"flag"
	"log"

	"github.com/campusarena/backend/config"
	"github.com/campusarena/backend/internal/database"
)

func main() {
	dir := flag.String("dir", "migrations", "directory containing migration files")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Database error: %v", err)
	}

	if err := database.RunMigrations(db, *dir); err != nil {
		log.Fatalf("Migration error: %v", err)
	}

	log.Println("Migrations applied")
}
