package server

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"pagetrace-service/src/config"
	"pagetrace-service/src/recorder"
	"pagetrace-service/src/route"
)

// StartServer initializes routes and starts the HTTP server with graceful shutdown
func StartServer(cfg *config.Config, db *sql.DB, listeners ...recorder.Listener) {
	// Get the logger from the config
	logger := cfg.Logger

	// Initialize routes with the database connection and the registered
	// cycle-completion listeners
	r := route.NewRoutes(cfg, db, listeners...)

	// Set up the HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServicePort),
		Handler: r.Routes(),
	}

	// Log server initialization success
	logger.Info("✅ HTTP server setup completed successfully")

	// Run server in a goroutine
	go func() {
		logger.Info(fmt.Sprintf("✅ %s is running on port: %s", cfg.ServiceName, cfg.ServicePort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("❌ Server failed to start: %v", err)
		}
	}()

	// Call graceful shutdown
	GracefulShutdown(srv, 5*time.Second, logger)
}
