package favorites

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/user-profiles-backend/internal/database"
	"github.com/SergeyKozhin/user-profiles-backend/internal/model"
	"github.com/jackc/pgx/v4"
)

func (*Repository) GetFavorites(ctx context.Context, q database.Queryable, key string) (model.FavoriteSet, error) {
	qb := baseQuery.
		Where(sq.Eq{"storage_key": key})

	dto := &favoritesDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToFavoriteSet(dto), nil
}
