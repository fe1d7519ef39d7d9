package profiles

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyKozhin/user-profiles-backend/internal/favorites/fake"
	"github.com/SergeyKozhin/user-profiles-backend/internal/model"
	"github.com/SergeyKozhin/user-profiles-backend/internal/variants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeFetcher struct {
	mu    sync.Mutex
	users []*model.User
	err   error
	calls atomic.Int32
	// gate, when set, blocks GetUsers until closed.
	gate chan struct{}
}

func (f *fakeFetcher) GetUsers(ctx context.Context) ([]*model.User, error) {
	f.calls.Add(1)

	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}

	res := make([]*model.User, len(f.users))
	for i, u := range f.users {
		c := *u
		res[i] = &c
	}
	return res, nil
}

func (f *fakeFetcher) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.err = err
}

func newTestSession(t *testing.T, variantName string) (*Session, *fakeFetcher, *fake.Repository) {
	t.Helper()

	variant, err := variants.Default().Get(variantName)
	require.NoError(t, err)

	fetcher := &fakeFetcher{users: testUsers()}
	repo := fake.NewRepository()

	return NewSession(variant, zap.NewNop().Sugar(), fetcher, repo), fetcher, repo
}

func TestSession_ViewBootstrapsOnce(t *testing.T) {
	session, fetcher, _ := newTestSession(t, variants.Advanced)
	ctx := context.Background()

	assert.Equal(t, model.SessionStateIdle, session.State())

	view, err := session.View(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.SessionStateReady, session.State())
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(view.Users))
	assert.Equal(t, 4, view.Total)
	assert.Empty(t, view.Summary)
	assert.Nil(t, view.Empty)

	for _, u := range view.Users {
		assert.False(t, u.Liked)
	}

	_, err = session.View(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, fetcher.calls.Load())
}

func TestSession_BootstrapRestoresFavorites(t *testing.T) {
	session, _, repo := newTestSession(t, variants.Advanced)
	repo.Set("advanced-favorites", "[2]")
	repo.Set("favorites", "[1,3]")

	require.NoError(t, session.Bootstrap(context.Background()))
	assert.Equal(t, model.FavoriteSet{2}, session.Favorites())

	require.NoError(t, session.SetFilter(model.UsersFilter{FavoritesOnly: true}))
	view, err := session.View(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids(view.Users))
	assert.Equal(t, "Showing 1 of 4 users (favorites only)", view.Summary)
}

func TestSession_CorruptFavoritesStartEmpty(t *testing.T) {
	session, _, repo := newTestSession(t, variants.Basic)
	repo.Set("favorites", "{not json")

	require.NoError(t, session.Bootstrap(context.Background()))
	assert.Empty(t, session.Favorites())
	assert.Equal(t, model.SessionStateReady, session.State())
}

func TestSession_FavoritesLoadErrorStartsEmpty(t *testing.T) {
	session, _, repo := newTestSession(t, variants.Basic)
	repo.LoadErr = errors.New("connection refused")

	require.NoError(t, session.Bootstrap(context.Background()))
	assert.Empty(t, session.Favorites())
}

func TestSession_FetchFailureAndRetry(t *testing.T) {
	session, fetcher, _ := newTestSession(t, variants.Advanced)
	ctx := context.Background()
	fetcher.setErr(errors.New("HTTP error! status: 500"))

	_, err := session.View(ctx)
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, LoadErrorMessage, loadErr.Message)
	assert.Equal(t, model.SessionStateError, session.State())

	// no automatic retry
	_, err = session.View(ctx)
	require.Error(t, err)
	assert.EqualValues(t, 1, fetcher.calls.Load())

	_, err = session.ToggleFavorite(ctx, 1)
	assert.True(t, errors.As(err, &loadErr))

	fetcher.setErr(nil)
	require.NoError(t, session.Retry(ctx))
	assert.EqualValues(t, 2, fetcher.calls.Load())

	view, err := session.View(ctx)
	require.NoError(t, err)
	assert.Len(t, view.Users, 4)
}

func TestSession_ConcurrentBootstrapSharesFetch(t *testing.T) {
	session, fetcher, _ := newTestSession(t, variants.Advanced)
	fetcher.gate = make(chan struct{})

	var wg sync.WaitGroup
	errs := make(chan error, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := session.View(context.Background())
			errs <- err
		}()
	}

	require.Eventually(t, func() bool {
		return session.State() == model.SessionStateLoading
	}, time.Second, time.Millisecond)
	close(fetcher.gate)
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.EqualValues(t, 1, fetcher.calls.Load())
}

func TestSession_ToggleFavoritePersists(t *testing.T) {
	session, _, repo := newTestSession(t, variants.Advanced)
	ctx := context.Background()
	require.NoError(t, session.Bootstrap(ctx))

	added, err := session.ToggleFavorite(ctx, 2)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, "[2]", repo.Raw("advanced-favorites"))

	added, err = session.ToggleFavorite(ctx, 4)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, "[2,4]", repo.Raw("advanced-favorites"))

	added, err = session.ToggleFavorite(ctx, 2)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, "[4]", repo.Raw("advanced-favorites"))
	assert.Equal(t, 3, repo.Saves())
}

func TestSession_ToggleFavoriteSaveError(t *testing.T) {
	session, _, repo := newTestSession(t, variants.Basic)
	ctx := context.Background()
	require.NoError(t, session.Bootstrap(ctx))
	repo.SaveErr = errors.New("disk full")

	added, err := session.ToggleFavorite(ctx, 1)
	assert.Error(t, err)
	assert.True(t, added)
	assert.Equal(t, model.FavoriteSet{1}, session.Favorites())
}

func TestSession_ToggleFavoriteBeforeLoad(t *testing.T) {
	session, _, _ := newTestSession(t, variants.Basic)

	_, err := session.ToggleFavorite(context.Background(), 1)
	assert.ErrorIs(t, err, model.ErrNotLoaded)
}

func TestSession_EmptyStateAndClearSearch(t *testing.T) {
	session, _, _ := newTestSession(t, variants.Advanced)
	ctx := context.Background()

	session.SetSearch("zzz")
	view, err := session.View(ctx)
	require.NoError(t, err)
	assert.Empty(t, view.Users)
	require.NotNil(t, view.Empty)
	assert.Equal(t, "No Search Results", view.Empty.Title)
	assert.Equal(t, `No users found matching "zzz"`, view.Empty.Subtitle)
	assert.Equal(t, []EmptyAction{EmptyActionClearSearch}, view.Empty.Actions)
	assert.Equal(t, "Showing 0 of 4 users", view.Summary)

	session.ClearSearch()
	view, err = session.View(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(view.Users))
	assert.Nil(t, view.Empty)
}

func TestSession_EmptyFavoritesAndShowAll(t *testing.T) {
	session, _, _ := newTestSession(t, variants.Advanced)
	ctx := context.Background()

	require.NoError(t, session.SetFilter(model.UsersFilter{FavoritesOnly: true}))
	view, err := session.View(ctx)
	require.NoError(t, err)
	require.NotNil(t, view.Empty)
	assert.Equal(t, "No Favorites", view.Empty.Title)
	assert.Equal(t, "You haven't added any favorites yet", view.Empty.Subtitle)
	assert.Equal(t, []EmptyAction{EmptyActionShowAll}, view.Empty.Actions)

	session.ShowAll()
	view, err = session.View(ctx)
	require.NoError(t, err)
	assert.Len(t, view.Users, 4)
}

func TestSession_NoUsersEmptyState(t *testing.T) {
	session, fetcher, _ := newTestSession(t, variants.Basic)
	fetcher.users = nil

	view, err := session.View(context.Background())
	require.NoError(t, err)
	require.NotNil(t, view.Empty)
	assert.Equal(t, "No Users Found", view.Empty.Title)
	assert.Empty(t, view.Empty.Actions)
}

func TestSession_FavoritesFilterDisabled(t *testing.T) {
	session, _, _ := newTestSession(t, variants.Basic)

	err := session.SetFilter(model.UsersFilter{FavoritesOnly: true})
	assert.ErrorIs(t, err, model.ErrFeatureDisabled)
}

func TestSession_LikeEditDelete(t *testing.T) {
	session, _, _ := newTestSession(t, variants.Advanced)
	ctx := context.Background()

	before, err := session.View(ctx)
	require.NoError(t, err)

	liked, err := session.ToggleLike(2)
	require.NoError(t, err)
	assert.True(t, liked.Liked)
	assert.False(t, before.Users[1].Liked, "earlier views must not change")

	upd := &model.UserUpdate{
		Name:     "Ervin H.",
		Username: "Antonette",
		Email:    "ervin@example.com",
		Phone:    "010-692-6593",
		Website:  "anastasia.net",
		Address:  model.Address{Street: "Victor Plains", Suite: "Suite 879", City: "Wisokyburgh", Zipcode: "90566-7771"},
		Company:  model.Company{Name: "Deckow-Crist"},
	}
	updated, err := session.Update(2, upd)
	require.NoError(t, err)
	assert.Equal(t, "Ervin H.", updated.Name)
	assert.True(t, updated.Liked, "edit keeps the liked flag")

	require.NoError(t, session.Delete(1))
	view, err := session.View(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 4}, ids(view.Users))
	assert.Equal(t, 3, view.Total)

	assert.ErrorIs(t, session.Delete(1), model.ErrNoRecord)
	_, err = session.ToggleLike(42)
	assert.ErrorIs(t, err, model.ErrNoRecord)
	_, err = session.Update(42, upd)
	assert.ErrorIs(t, err, model.ErrNoRecord)
}

func TestSession_RetryDiscardsLocalEdits(t *testing.T) {
	session, _, _ := newTestSession(t, variants.Advanced)
	ctx := context.Background()
	require.NoError(t, session.Bootstrap(ctx))

	_, err := session.ToggleLike(1)
	require.NoError(t, err)
	require.NoError(t, session.Delete(3))

	require.NoError(t, session.Retry(ctx))
	view, err := session.View(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(view.Users))
	assert.False(t, view.Users[0].Liked)
}

func TestSession_MutationsDisabled(t *testing.T) {
	session, _, _ := newTestSession(t, variants.PortalBasic)
	require.NoError(t, session.Bootstrap(context.Background()))

	_, err := session.ToggleLike(1)
	assert.ErrorIs(t, err, model.ErrFeatureDisabled)
	_, err = session.Update(1, &model.UserUpdate{})
	assert.ErrorIs(t, err, model.ErrFeatureDisabled)
	assert.ErrorIs(t, session.Delete(1), model.ErrFeatureDisabled)
}

func TestSession_ToggleDarkMode(t *testing.T) {
	session, _, _ := newTestSession(t, variants.Basic)

	assert.False(t, session.DarkMode())
	assert.True(t, session.ToggleDarkMode())
	assert.False(t, session.ToggleDarkMode())
}

func TestSession_EnsureDoesNotRetry(t *testing.T) {
	session, fetcher, _ := newTestSession(t, variants.Advanced)
	ctx := context.Background()

	require.NoError(t, session.Ensure(ctx))
	require.NoError(t, session.Ensure(ctx))
	assert.EqualValues(t, 1, fetcher.calls.Load())

	fetcher.setErr(errors.New("HTTP error! status: 503"))
	require.Error(t, session.Retry(ctx))

	var loadErr *LoadError
	require.ErrorAs(t, session.Ensure(ctx), &loadErr)
	assert.Equal(t, LoadErrorMessage, loadErr.Message)
	assert.EqualValues(t, 2, fetcher.calls.Load())
}
