package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"invoice-api/config"
	"invoice-api/internal/api/handlers"
	"invoice-api/internal/app"
	"invoice-api/internal/auth"
	"invoice-api/internal/database"
	"invoice-api/internal/server"
	"invoice-api/internal/services"
	"invoice-api/internal/storage/postgres"

	_ "invoice-api/docs" // Generated swagger docs (swag init)

	"github.com/go-playground/validator"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// @title           Invoice API
// @version         1.0
// @description     CRUD backend for managing invoices with server-computed totals, short codes and payment due dates.

// @host      localhost:8000
// @BasePath  /api
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "invoice-api").Logger()
	zerolog.TimeFieldFormat = time.RFC3339

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if !cfg.IsProduction() {
		logger = logger.Level(zerolog.DebugLevel).Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	if err := database.Migrate(cfg.DB.MigrateURL(), logger); err != nil {
		logger.Fatal().Err(err).Msg("Failed to migrate database")
	}

	dbPool, err := database.NewConnectionPool(cfg.DB, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer dbPool.Close()

	validate := validator.New()
	handlers.RegisterFieldNames(validate)

	invoiceRepo := postgres.NewInvoiceRepo(dbPool, logger)
	invoiceService := services.NewInvoiceService(invoiceRepo, logger)

	application := &app.Application{
		Config:         cfg,
		Logger:         logger,
		DBPool:         dbPool,
		Validator:      validate,
		InvoiceService: invoiceService,
		TokenVerifier:  auth.NewGoogleVerifier(),
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			logger.Error().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	logger.Info().Msg("Gracefully shutting down")
}
