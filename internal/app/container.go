package app

import (
	"context"
	"log"
	"time"

	"vitrine/internal/config"
	"vitrine/internal/database"
	dbpostgres "vitrine/internal/database/postgres"
	"vitrine/internal/database/seeder"
	"vitrine/internal/infrastructure/cache"
)

type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redisCache := cache.NewRedis(logger)

	if cfg.App.RunSeeders {
		if err := seeder.Default().Run(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		if logger != nil {
			logger.Printf("[Seed] catalog seeders completed")
		}
		// seeded rows may differ from what cached pages were built on
		if err := redisCache.InvalidateCatalog(ctx); err != nil && logger != nil {
			logger.Printf("[Seed] catalog cache invalidation failed: %v", err)
		}
	}

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  redisCache,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
