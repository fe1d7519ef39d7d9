package favorites

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/user-profiles-backend/internal/database"
	"github.com/SergeyKozhin/user-profiles-backend/internal/model"
)

func (*Repository) SaveFavorites(ctx context.Context, q database.Queryable, key string, set model.FavoriteSet) error {
	ids := []int64(set)
	if ids == nil {
		ids = []int64{}
	}

	qb := database.PSQL.
		Insert(database.FavoritesTable).
		Columns("storage_key", "ids").
		Values(key, ids).
		Suffix("on conflict (storage_key) do update set ids = excluded.ids, updated_at = now()")

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
