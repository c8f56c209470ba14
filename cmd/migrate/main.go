package main

import (
	"fmt"
	"os"

	"sitedesk/internal/database"
	"sitedesk/internal/logger"
	"sitedesk/internal/seed"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Migration error: %v", err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: migrate <up|seed>")
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	command := os.Args[1]

	switch command {
	case "up":
		if err := dbManager.Migrate(); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		logger.Get().Info("Migrations applied successfully")

	case "seed":
		if err := dbManager.Migrate(); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		if err := seed.Run(dbManager.DB()); err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
		logger.Get().Info("Demo data seeded")

	default:
		return fmt.Errorf("unknown command: %s (use up or seed)", command)
	}

	return nil
}
