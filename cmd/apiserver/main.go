package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ryangandev/CST480-Library/config"
	"github.com/ryangandev/CST480-Library/db"
	"github.com/ryangandev/CST480-Library/internal/auth"
	"github.com/ryangandev/CST480-Library/internal/server"
	"github.com/ryangandev/CST480-Library/internal/session"
	"github.com/ryangandev/CST480-Library/internal/store"
	"github.com/ryangandev/CST480-Library/pkg/logger"
)

// @title Library Catalog API
// @version 1.0
// @description REST API for a small library catalog: books, authors, and
// @description cookie-session authentication with per-author book ownership.
// @host localhost:3000
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	// load configurations
	conf, err := config.New()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// logger
	logr, err := logger.NewLogger(string(conf.GetAppEnv()))
	if err != nil {
		log.Fatalf("failed to initialize zap logger: %v", err)
	}
	defer logr.Sync()

	// db
	conn, err := db.NewSqliteDb(conf)
	if err != nil {
		return err
	}
	defer conn.Close()

	// run migrations
	if err := db.RunMigrations(conn); err != nil {
		return err
	}

	dataStore := store.New(conn)

	// sessions live in process memory: a restart logs everyone out
	registry := session.NewMemoryRegistry()
	limiter := auth.NewLoginLimiter(conf.LoginRateLimit, conf.LoginRateWindow)
	authenticator := auth.NewAuthenticator(dataStore.Users, registry, limiter, logr)

	// create and start server
	svr := server.New(conf, logr, dataStore, registry, authenticator)
	if err := svr.Start(ctx); err != nil {
		return err
	}

	logr.Info("apiserver stopped", zap.String("app", conf.GetAppName()))
	return nil
}
