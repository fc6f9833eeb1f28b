// main.go
package main

import (
	"log"

	"bite-reviews/cmd"
	"bite-reviews/internal/data/repository"
	"bite-reviews/internal/wire"
	"bite-reviews/pkg/database"
	"bite-reviews/pkg/mailer"
	"bite-reviews/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database. Missing store configuration is fatal: nothing
	// works without the reviews table.
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Notification config is non-fatal; placeholder values fail silently
	// on send and submissions still succeed.
	if config.Email.ServiceID == "default_service" {
		logger.Warn("Email notification config missing, sends will fail against placeholder service")
	}

	notifier := mailer.NewEmailJSNotifier(config.Email, logger)

	// Initialize repositories and wire all dependencies
	repos := repository.NewRepository(db, logger)
	app := wire.Wiring(repos, config, notifier, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
