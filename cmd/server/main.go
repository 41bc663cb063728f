package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpapi "github.com/SHIV24116/Quick-Teams-web-app/internal/api/http"
	"github.com/SHIV24116/Quick-Teams-web-app/internal/config"
	"github.com/SHIV24116/Quick-Teams-web-app/internal/jobs"
	"github.com/SHIV24116/Quick-Teams-web-app/internal/logger"
	"github.com/SHIV24116/Quick-Teams-web-app/internal/repository/postgres"
	"github.com/SHIV24116/Quick-Teams-web-app/internal/scheduler"
	"github.com/SHIV24116/Quick-Teams-web-app/internal/security"
	"github.com/SHIV24116/Quick-Teams-web-app/internal/service"
	"github.com/SHIV24116/Quick-Teams-web-app/internal/storage"

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
	logger.Info("Starting Quick Teams backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Apply schema
	if err := postgres.RunMigrations(db); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	// Initialize Photo Storage
	photoStorage, err := storage.NewLocalStorage(cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize photo storage", "error", err)
		log.Fatalf("Failed to initialize photo storage: %v", err)
	}
	logger.Info("Photo storage initialized", "upload_dir", cfg.Storage.UploadDir)

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
		cfg.SMTP.Enabled,
	)

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	profileSvc := service.NewProfileService(store.UserRepository, store.GroupRepository, photoStorage)
	matchSvc := service.NewMatchService(store.UserRepository)
	teamSvc := service.NewTeamService(
		store.ConnectionRequestRepository,
		store.GroupRepository,
		store.UserRepository,
		emailSvc,
		cfg.Matching.ClearAvailabilityOnTeamUp,
	)

	// Initialize HTTP handlers
	maxFileSize := cfg.Storage.MaxFileSize * 1024 * 1024
	router := httpapi.NewRouter(httpapi.Handlers{
		Auth:  httpapi.NewAuthHandler(authSvc),
		User:  httpapi.NewUserHandler(profileSvc, maxFileSize),
		Match: httpapi.NewMatchHandler(matchSvc),
		Team:  httpapi.NewTeamHandler(teamSvc),
	}, tokenManager)

	// Start the scheduler
	jobRunner := jobs.NewJobRunner(db, store, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	server := &http.Server{
		Addr:    cfg.GetServerAddress(),
		Handler: router,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	if err := server.Close(); err != nil {
		logger.Error("Error closing HTTP server", "error", err)
	}
}
