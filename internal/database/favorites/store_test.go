package favorites

import (
	"context"
	"os"
	"testing"

	"github.com/SergeyKozhin/user-profiles-backend/internal/database"
	"github.com/SergeyKozhin/user-profiles-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	url := os.Getenv("TEST_POSTGRES_URL")
	if url == "" {
		t.Skip("TEST_POSTGRES_URL is not set")
	}

	ctx := context.Background()
	db, err := database.NewPGX(ctx, url)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, database.EnsureSchema(ctx, db))
	_, err = db.ExecRaw(ctx, "delete from "+database.FavoritesTable+" where storage_key like 'test-%'")
	require.NoError(t, err)

	return NewStore(db, NewRepository())
}

func TestStore_LoadAbsent(t *testing.T) {
	store := newTestStore(t)

	set, err := store.Load(context.Background(), "test-absent")
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestStore_SaveOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "test-favorites", model.FavoriteSet{1, 2}))
	require.NoError(t, store.Save(ctx, "test-favorites", model.FavoriteSet{2}))

	set, err := store.Load(ctx, "test-favorites")
	require.NoError(t, err)
	assert.Equal(t, model.FavoriteSet{2}, set)

	require.NoError(t, store.Save(ctx, "test-favorites", nil))
	set, err = store.Load(ctx, "test-favorites")
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestMapToFavoriteSet(t *testing.T) {
	set := mapToFavoriteSet(&favoritesDTO{StorageKey: "favorites", IDs: []int64{3, 3, 1}})
	assert.Equal(t, model.FavoriteSet{3, 1}, set)
}
