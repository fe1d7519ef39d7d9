package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/SergeyKozhin/user-profiles-backend/internal/favorites"
	"github.com/SergeyKozhin/user-profiles-backend/internal/model"
	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"
)

// FavoritesRepository stores every favorite set as a JSON array string under its variant key.
type FavoritesRepository struct {
	pool   *redis.Pool
	logger *zap.SugaredLogger
}

func NewFavoritesRepository(pool *redis.Pool, logger *zap.SugaredLogger) *FavoritesRepository {
	return &FavoritesRepository{
		pool:   pool,
		logger: logger,
	}
}

func (r *FavoritesRepository) Load(ctx context.Context, key string) (model.FavoriteSet, error) {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("get connection: %w", err)
	}
	defer r.closeConn(conn)

	raw, err := redis.Bytes(redis.DoContext(conn, ctx, "GET", key))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return model.FavoriteSet{}, nil
		}
		return nil, fmt.Errorf("GET %s: %w", key, err)
	}

	return favorites.Decode(raw)
}

func (r *FavoritesRepository) Save(ctx context.Context, key string, set model.FavoriteSet) error {
	raw, err := favorites.Encode(set)
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}

	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer r.closeConn(conn)

	if _, err := redis.DoContext(conn, ctx, "SET", key, raw); err != nil {
		return fmt.Errorf("SET %s: %w", key, err)
	}

	return nil
}

func (r *FavoritesRepository) closeConn(conn redis.Conn) {
	if err := conn.Close(); err != nil {
		r.logger.Warnw("Failed closing redis connection", "err", err)
	}
}
