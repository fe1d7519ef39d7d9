package favorites

import (
	"context"
	"errors"

	"github.com/SergeyKozhin/user-profiles-backend/internal/database"
	"github.com/SergeyKozhin/user-profiles-backend/internal/model"
)

// Store binds the repository to a database handle.
type Store struct {
	db   database.Queryable
	repo *Repository
}

func NewStore(db database.Queryable, repo *Repository) *Store {
	return &Store{
		db:   db,
		repo: repo,
	}
}

func (s *Store) Load(ctx context.Context, key string) (model.FavoriteSet, error) {
	set, err := s.repo.GetFavorites(ctx, s.db, key)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			return model.FavoriteSet{}, nil
		}
		return nil, err
	}

	return set, nil
}

func (s *Store) Save(ctx context.Context, key string, set model.FavoriteSet) error {
	return s.repo.SaveFavorites(ctx, s.db, key, set)
}
