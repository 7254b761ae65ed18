// main.go
package main

import (
	"context"
	"log"
	"time"

	"arte-booking/cmd"
	"arte-booking/internal/data/repository"
	"arte-booking/internal/queue"
	"arte-booking/internal/wire"
	"arte-booking/pkg/database"
	"arte-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.Name, config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("db_driver", config.Database.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	// Initialize repositories
	var repos *repository.Repository
	switch config.Database.Driver {
	case "memory":
		logger.Warn("Using in-memory booking store, bookings are lost on restart")
		repos = repository.NewMemoryRepository(logger)

	default:
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Database connected successfully")

		if config.Database.AutoMigrate {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			err := database.Migrate(ctx, db)
			cancel()
			if err != nil {
				// reads degrade and writes fail until the schema exists
				logger.Error("Failed to apply schema", zap.Error(err))
			} else {
				logger.Info("Schema applied")
			}
		}

		repos = repository.NewRepository(db, logger)
	}

	// Rate limiter store, optional
	rdb, err := database.InitRedis(config.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, rate limiting disabled", zap.Error(err))
	}
	if rdb != nil {
		defer rdb.Close()
	}

	// Wire all dependencies
	app := wire.Wiring(wire.Deps{
		Repo:      repos,
		Redis:     rdb,
		Publisher: queue.NewPublisher(config.Queue.URL, logger),
	}, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
	}
}
