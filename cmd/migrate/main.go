package main

import (
	"budget_bloom/internal/config" // Custom import path (Config)
	"budget_bloom/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus"
)

// Main entry point for migration
func main() {
	cfg, err := config.LoadConfig() // Load configuration
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	gdb, err := db.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	migrateErr := db.Migrate(gdb)
	// Close before any fatal exit, which would skip deferred calls
	if err := db.Close(gdb); err != nil {
		logrus.WithField("error", err.Error()).Error("Failed to close database")
	}
	if migrateErr != nil {
		logrus.Fatalf("migration failed: %v", migrateErr) // Log fatal error if migration fails
	}
}
