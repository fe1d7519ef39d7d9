package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/user-profiles-backend/internal/favorites"
	"github.com/SergeyKozhin/user-profiles-backend/internal/model"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type FavoritesRepository struct {
	db *sql.DB
}

func NewFavoritesRepository(db *sql.DB) *FavoritesRepository {
	return &FavoritesRepository{db: db}
}

func (r *FavoritesRepository) Load(ctx context.Context, key string) (model.FavoriteSet, error) {
	qb := builder.
		Select("ids").
		From(favoritesTable).
		Where(sq.Eq{"storage_key": key}).
		RunWith(r.db)

	var raw string
	if err := qb.QueryRowContext(ctx).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.FavoriteSet{}, nil
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return favorites.Decode([]byte(raw))
}

func (r *FavoritesRepository) Save(ctx context.Context, key string, set model.FavoriteSet) error {
	raw, err := favorites.Encode(set)
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}

	qb := builder.
		Insert(favoritesTable).
		Columns("storage_key", "ids").
		Values(key, string(raw)).
		Suffix("ON CONFLICT (storage_key) DO UPDATE SET ids = excluded.ids, updated_at = CURRENT_TIMESTAMP").
		RunWith(r.db)

	if _, err := qb.ExecContext(ctx); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
