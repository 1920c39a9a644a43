package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "car-rental-system/internal/api/http"
	"car-rental-system/internal/config"
	"car-rental-system/internal/jobs"
	"car-rental-system/internal/logger"
	"car-rental-system/internal/repository"
	"car-rental-system/internal/repository/file"
	"car-rental-system/internal/repository/postgres"
	"car-rental-system/internal/scheduler"
	"car-rental-system/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Car Rental Server...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Rental configuration",
		"retention_days", cfg.Rental.RetentionDays,
		"id_format", cfg.Rental.IDFormat,
		"unique_ids", cfg.Rental.UniqueIDs)

	// Build the manager and its roster
	manager := service.NewManager(service.OptionsFromConfig(cfg.Rental)...)
	if err := loadRoster(cfg, manager); err != nil {
		logger.Error("Failed to load roster", "error", err)
		log.Fatalf("Failed to load roster: %v", err)
	}
	summary := manager.Summary()
	logger.Info("Roster loaded", "vehicles", summary.TotalVehicles, "customers", summary.TotalCustomers)

	fleet := service.NewGuarded(manager)

	// Initialize Job Runner and Scheduler
	jobRunner := jobs.NewJobRunner(fleet, cfg)
	cronScheduler, err := scheduler.NewScheduler(jobRunner)
	if err != nil {
		logger.Error("Failed to initialize scheduler", "error", err)
		log.Fatalf("Failed to initialize scheduler: %v", err)
	}
	cronScheduler.Start()

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.NewHandler(fleet))
	srv := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	cronScheduler.Stop()
	logger.Info("Server stopped. Goodbye!")
}

// loadRoster fills the manager from postgres, the roster files, or the
// sample data, in that order of preference.
func loadRoster(cfg *config.Config, m *service.Manager) error {
	ctx := context.Background()

	var repo repository.RosterRepository
	switch {
	case cfg.Database.Enabled:
		logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database)
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("failed to ping database: %w", err)
		}
		logger.Info("Database connection established")
		repo = postgres.NewStore(db)
	case cfg.Roster.VehiclesFile != "" && cfg.Roster.CustomersFile != "":
		logger.Info("Loading roster files", "vehicles", cfg.Roster.VehiclesFile, "customers", cfg.Roster.CustomersFile)
		repo = file.NewStore(cfg.Roster.VehiclesFile, cfg.Roster.CustomersFile)
	}

	if repo != nil {
		if err := service.LoadRoster(ctx, repo, m); err != nil {
			return err
		}
	}
	if cfg.Roster.LoadSampleData {
		logger.Info("Loading sample data")
		return service.LoadSampleData(m)
	}
	return nil
}
