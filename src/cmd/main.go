package main

import (
	"pagetrace-service/src/config"
	"pagetrace-service/src/database"
	"pagetrace-service/src/recorder"
	"pagetrace-service/src/server"
)

const (
	// Define the environment variable prefix as a constant
	SERVICE_PREFIX = "PAGETRACE"
)

func main() {
	// Load configuration from environment with the defined prefix
	cfg := config.NewConfig(SERVICE_PREFIX)

	// Get the logger from the config
	logger := cfg.Logger

	// Make Database connection with the loaded config and handle any errors
	db, err := database.ConnectToDB(cfg)
	if err != nil {
		logger.Fatalf("❌ DATABASE FATAL ERROR: Failed to connect to the database: %v", err)
	}
	cfg.DB = db

	// Register the page request recorder here, once, so its lifetime is tied
	// to the server's lifetime. Additional completion listeners would be
	// passed alongside it.
	rec := recorder.NewRecorder(db, logger)

	// Pass db and the registered listeners to the server
	server.StartServer(cfg, db, rec)
}
