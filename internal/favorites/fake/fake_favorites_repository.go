package fake

import (
	"context"
	"sync"

	"github.com/SergeyKozhin/user-profiles-backend/internal/favorites"
	"github.com/SergeyKozhin/user-profiles-backend/internal/model"
)

// Repository keeps encoded favorite sets in memory, the way a browser keeps them in local storage.
type Repository struct {
	Items map[string][]byte
	// LoadErr and SaveErr, when set, are returned by the matching operation.
	LoadErr error
	SaveErr error

	mu    sync.Mutex
	saves int
}

func NewRepository() *Repository {
	return &Repository{
		Items: make(map[string][]byte),
	}
}

func (r *Repository) Load(ctx context.Context, key string) (model.FavoriteSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.LoadErr != nil {
		return nil, r.LoadErr
	}

	return favorites.Decode(r.Items[key])
}

func (r *Repository) Save(ctx context.Context, key string, set model.FavoriteSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.SaveErr != nil {
		return r.SaveErr
	}

	raw, err := favorites.Encode(set)
	if err != nil {
		return err
	}
	r.Items[key] = raw
	r.saves++

	return nil
}

func (r *Repository) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.saves
}

func (r *Repository) Raw(key string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return string(r.Items[key])
}

func (r *Repository) Set(key, raw string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Items[key] = []byte(raw)
}
