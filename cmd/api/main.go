package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kanthalloor/governance-portal/internal/api"
	mongodb "github.com/kanthalloor/governance-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/kanthalloor/governance-portal/internal/infrastructure/db/redis"
	"github.com/kanthalloor/governance-portal/internal/pkg/config"
	"github.com/kanthalloor/governance-portal/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure mongodb indexes")
	}

	e := api.NewRouter(cfg, db, rdb, log)

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("env", cfg.Env).
			Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close error")
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongodb disconnect error")
	}

	log.Info().Msg("server stopped")
}

// ensureIndexes creates the unique and query indexes each repository relies
// on. Index creation is idempotent, so running it at every startup is safe.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	indexCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := mongodb.NewAccountRepository(db).EnsureIndexes(indexCtx); err != nil {
		return err
	}
	if err := mongodb.NewProfileRepository(db).EnsureIndexes(indexCtx); err != nil {
		return err
	}
	return mongodb.NewApplicationRepository(db).EnsureIndexes(indexCtx)
}
