package main

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/user-profiles-backend/internal/business/profiles"
	"github.com/SergeyKozhin/user-profiles-backend/internal/config"
	"github.com/SergeyKozhin/user-profiles-backend/internal/database"
	db_favorites "github.com/SergeyKozhin/user-profiles-backend/internal/database/favorites"
	"github.com/SergeyKozhin/user-profiles-backend/internal/favorites"
	"github.com/SergeyKozhin/user-profiles-backend/internal/favorites/fake"
	"github.com/SergeyKozhin/user-profiles-backend/internal/pkg/placeholder"
	"github.com/SergeyKozhin/user-profiles-backend/internal/redis"
	"github.com/SergeyKozhin/user-profiles-backend/internal/sqlite"
	"github.com/SergeyKozhin/user-profiles-backend/internal/variants"
)

func newFavoritesRepository(ctx context.Context) (favorites.Repository, error) {
	switch backend := config.FavoritesBackend(); backend {
	case "redis":
		pool := redis.NewRedisPool(logger)
		return redis.NewFavoritesRepository(pool, logger), nil

	case "postgres":
		db, err := database.NewPGX(ctx, config.PostgresURL())
		if err != nil {
			return nil, fmt.Errorf("init postgres: %w", err)
		}
		if err := database.EnsureSchema(ctx, db); err != nil {
			return nil, fmt.Errorf("init postgres schema: %w", err)
		}
		return db_favorites.NewStore(db, db_favorites.NewRepository()), nil

	case "sqlite":
		db, err := sqlite.Open(ctx, config.SqlitePath(), logger)
		if err != nil {
			return nil, fmt.Errorf("init sqlite: %w", err)
		}
		return sqlite.NewFavoritesRepository(db), nil

	case "memory":
		logger.Warnw("Favorites are kept in memory and lost on exit")
		return fake.NewRepository(), nil

	default:
		return nil, fmt.Errorf("unknown favorites backend %q", backend)
	}
}

// newService builds the service the commands run against. Tests replace it.
var newService = newProfilesService

func newProfilesService(ctx context.Context) (*profiles.Service, error) {
	favoritesRepository, err := newFavoritesRepository(ctx)
	if err != nil {
		return nil, err
	}

	registry := variants.Default()
	if path := config.VariantsPath(); path != "" {
		registry, err = variants.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load variants: %w", err)
		}
	}

	users := placeholder.NewClient(config.UsersURL(), config.FetchTimeout())

	return profiles.NewService(logger, users, favoritesRepository, registry), nil
}
