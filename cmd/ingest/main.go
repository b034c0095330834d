package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/partassist/internal/adapter/catalog"
	"github.com/seu-repo/partassist/internal/adapter/storage/postgres"
	"github.com/seu-repo/partassist/pkg/config"
)

// ingest loads the built-in parts catalog into PostgreSQL. Safe to run
// repeatedly; existing parts are upserted.
func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}
	if cfg.Database.URL == "" {
		logger.Fatal("database.url is required for ingest")
	}

	db, err := postgres.NewConnection(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer postgres.Close(db)

	if err := postgres.RunMigrations(db); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	repo := postgres.NewCatalogRepository(db, logger).(*postgres.CatalogRepository)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	parts := catalog.Seed()
	for _, part := range parts {
		if err := repo.SavePart(ctx, part); err != nil {
			logger.Fatal("Failed to save part", zap.String("part_number", part.PartNumber), zap.Error(err))
		}
	}

	logger.Info("Catalog ingest complete", zap.Int("parts", len(parts)))
}
