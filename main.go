package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/webfolio/contact-backend/config"
	"github.com/webfolio/contact-backend/db"
	"github.com/webfolio/contact-backend/handlers"
	"github.com/webfolio/contact-backend/logger"
	"github.com/webfolio/contact-backend/router"
	"github.com/webfolio/contact-backend/services"
	"github.com/webfolio/contact-backend/store/postgres"
)

const version = "1.0.0"

func main() {
	// Initialize logger
	logger.InitLogger()
	log := logger.GetLogger()
	defer func() { _ = logger.Close() }()

	// Load configuration; the process refuses to start without the required
	// environment variables.
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Infow("Configuration loaded",
		"database", logger.MaskConnectionString(cfg.Database.URL),
		"frontend_url", cfg.Server.FrontendURL)

	// Connect to the message store
	ctx := context.Background()
	poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to parse database config: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	// Apply schema migrations
	if err := db.RunMigrations(cfg.Database.URL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Wire the intake pipeline: store, notifier, orchestration
	messageStore := postgres.NewMessageStore(pool)
	emailService := services.NewEmailService(&cfg.Email)
	intakeService := services.NewIntakeService(
		messageStore,
		emailService,
		cfg.Email.FromAddress,
		cfg.Email.ToAddress,
	)

	contactHandler := handlers.NewContactHandler(intakeService)
	healthHandler := handlers.NewHealthHandler(services.NewHealthService(pool, version))

	r := router.SetupRouter(router.Dependencies{
		Config:         cfg,
		ContactHandler: contactHandler,
		HealthHandler:  healthHandler,
	})

	log.Infof("Starting server on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
