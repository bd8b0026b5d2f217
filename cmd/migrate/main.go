package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/financespro/backend/internal/infrastructure/config"
	"github.com/financespro/backend/internal/infrastructure/logger"
	"github.com/financespro/backend/internal/infrastructure/persistence"
	"github.com/financespro/backend/internal/infrastructure/persistence/models"
	"go.uber.org/zap"
)

func main() {
	var logLevel string
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	log.Info("Running schema migration",
		zap.String("database", cfg.Database.DBName),
		zap.String("host", cfg.Database.Host),
	)

	err = db.DB.AutoMigrate(
		&models.UserModel{},
		&models.ClientModel{},
		&models.ServiceModel{},
		&models.InvoiceModel{},
		&models.InvoiceSequenceModel{},
	)
	if err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}

	log.Info("Migration completed")
}
