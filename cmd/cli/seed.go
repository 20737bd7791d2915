package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ryangandev/CST480-Library/config"
	"github.com/ryangandev/CST480-Library/db"
	"github.com/ryangandev/CST480-Library/pkg/logger"
	"github.com/ryangandev/CST480-Library/pkg/seeder"
)

func main() {
	_ = godotenv.Load()

	// load configurations
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("failed to initialize: %v ", err)
	}

	// logger
	logr, err := logger.NewLogger(string(cfg.GetAppEnv()))
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logr.Sync()

	dbConn, err := db.NewSqliteDb(cfg)
	if err != nil {
		logr.Fatal("failed to connect to database", zap.Error(err))
	}
	defer dbConn.Close()

	if err := db.RunMigrations(dbConn); err != nil {
		logr.Fatal("migrations failed", zap.Error(err))
	}

	if err := seeder.Seed(dbConn); err != nil {
		logr.Fatal("seeding failed", zap.Error(err))
	}

	logr.Info("Seeder finished successfully")
	os.Exit(0)
}
