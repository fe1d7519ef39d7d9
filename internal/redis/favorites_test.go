package redis

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/SergeyKozhin/user-profiles-backend/internal/model"
	"github.com/gomodule/redigo/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memConn answers the GET and SET commands the repository issues.
type memConn struct {
	mu    *sync.Mutex
	store map[string][]byte
}

func (c *memConn) Close() error { return nil }
func (c *memConn) Err() error   { return nil }

func (c *memConn) Do(cmd string, args ...interface{}) (interface{}, error) {
	return c.DoContext(context.Background(), cmd, args...)
}

func (c *memConn) DoContext(_ context.Context, cmd string, args ...interface{}) (interface{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch cmd {
	case "":
		return nil, nil
	case "GET":
		v, ok := c.store[args[0].(string)]
		if !ok {
			return nil, nil
		}
		return v, nil
	case "SET":
		c.store[args[0].(string)] = args[1].([]byte)
		return "OK", nil
	}

	return nil, fmt.Errorf("unsupported command %q", cmd)
}

func (c *memConn) Send(string, ...interface{}) error { return nil }
func (c *memConn) Flush() error                      { return nil }
func (c *memConn) Receive() (interface{}, error)     { return nil, nil }

func (c *memConn) ReceiveContext(context.Context) (interface{}, error) { return nil, nil }

func newTestRepository() (*FavoritesRepository, map[string][]byte) {
	store := make(map[string][]byte)
	mu := &sync.Mutex{}
	pool := &redis.Pool{
		Dial: func() (redis.Conn, error) {
			return &memConn{mu: mu, store: store}, nil
		},
	}

	return NewFavoritesRepository(pool, zap.NewNop().Sugar()), store
}

func TestFavoritesRepository_LoadAbsent(t *testing.T) {
	repo, _ := newTestRepository()

	set, err := repo.Load(context.Background(), "advanced-favorites")
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestFavoritesRepository_SaveLoad(t *testing.T) {
	repo, store := newTestRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "favorites", model.FavoriteSet{4, 1}))
	assert.Equal(t, "[4,1]", string(store["favorites"]))

	set, err := repo.Load(ctx, "favorites")
	require.NoError(t, err)
	assert.Equal(t, model.FavoriteSet{4, 1}, set)

	other, err := repo.Load(ctx, "basic-favorites")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestFavoritesRepository_LoadCorrupt(t *testing.T) {
	repo, store := newTestRepository()
	store["favorites"] = []byte("not json")

	set, err := repo.Load(context.Background(), "favorites")
	assert.Error(t, err)
	assert.Empty(t, set)
}
