package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"

	httpapi "closetshare-backend/internal/api/http"
	"closetshare-backend/internal/config"
	"closetshare-backend/internal/logger"
	"closetshare-backend/internal/repository/postgres"
	"closetshare-backend/internal/security"
	"closetshare-backend/internal/service"
	"closetshare-backend/internal/storage"

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
	logger.Info("Starting ClosetShare Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
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

	if err := postgres.EnsureSchema(context.Background(), db); err != nil {
		logger.Error("Failed to apply database schema", "error", err)
		log.Fatalf("Failed to apply database schema: %v", err)
	}

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	authMiddleware := httpapi.NewAuthMiddleware(tokenManager)

	// Initialize Storage Service
	logger.Info("Using local receipt storage", "upload_dir", cfg.Storage.UploadDir)
	blobStore, err := storage.NewLocalStorageService(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize receipt storage", "error", err)
		log.Fatalf("Failed to initialize receipt storage: %v", err)
	}

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	outfitSvc := service.NewOutfitService(store.OutfitRepository, store.UserRepository)
	rentalSvc := service.NewRentalService(
		store.RentalRepository,
		store.OutfitRepository,
		store.UserRepository,
	)
	querySvc := service.NewRentalQueryService(
		store.RentalRepository,
		store.RentalHistoryRepository,
	)

	// Initialize HTTP handlers
	router := httpapi.NewRouter(httpapi.RouterDeps{
		Auth:    httpapi.NewAuthHandler(authSvc),
		Outfits: httpapi.NewOutfitHandler(outfitSvc),
		Rentals: httpapi.NewRentalHandler(rentalSvc, querySvc, blobStore, cfg.Storage.MaxFileSize),
		Files:   httpapi.NewFileHandler(blobStore),
		AuthMW:  authMiddleware,
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
