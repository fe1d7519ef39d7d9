package profiles

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/SergeyKozhin/user-profiles-backend/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const LoadErrorMessage = "Failed to load users. Please try again later."

type usersFetcher interface {
	GetUsers(ctx context.Context) ([]*model.User, error)
}

type favoritesRepository interface {
	Load(ctx context.Context, key string) (model.FavoriteSet, error)
	Save(ctx context.Context, key string, set model.FavoriteSet) error
}

// LoadError is returned by Session while its last bootstrap failed.
type LoadError struct {
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

type bootstrapCall struct {
	done chan struct{}
	err  error
}

// Session holds the state of one variant: the fetched users, the favorite set, the current
// filter and the display preference. Users are never modified in place, edits replace the
// pointer, so slices handed out by View stay valid.
type Session struct {
	variant   *model.Variant
	logger    *zap.SugaredLogger
	users     usersFetcher
	favorites favoritesRepository

	mu          sync.Mutex
	state       model.SessionState
	loadErr     error
	records     []*model.User
	favoriteSet model.FavoriteSet
	filter      model.UsersFilter
	darkMode    bool
	inflight    *bootstrapCall
}

func NewSession(variant *model.Variant, logger *zap.SugaredLogger, users usersFetcher, favorites favoritesRepository) *Session {
	return &Session{
		variant:     variant,
		logger:      logger.With("variant", variant.Name),
		users:       users,
		favorites:   favorites,
		state:       model.SessionStateIdle,
		favoriteSet: model.FavoriteSet{},
	}
}

func (s *Session) Variant() *model.Variant {
	c := *s.variant
	return &c
}

func (s *Session) State() model.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Bootstrap fetches the users and restores the favorite set concurrently.
// A favorites restore failure falls back to an empty set. Concurrent callers
// wait for the bootstrap already in flight instead of fetching again.
func (s *Session) Bootstrap(ctx context.Context) error {
	return s.load(ctx, true)
}

// Retry re-runs the bootstrap, discarding local edits the way a page reload does.
func (s *Session) Retry(ctx context.Context) error {
	return s.load(ctx, true)
}

// Ensure loads the session on first use and reports the outcome of the last bootstrap.
func (s *Session) Ensure(ctx context.Context) error {
	return s.load(ctx, false)
}

// load starts a bootstrap unless one is in flight. Without force, a session that already
// finished loading reports its outcome instead.
func (s *Session) load(ctx context.Context, force bool) error {
	s.mu.Lock()
	if call := s.inflight; call != nil {
		s.mu.Unlock()
		select {
		case <-call.done:
			return call.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if !force {
		switch s.state {
		case model.SessionStateReady:
			s.mu.Unlock()
			return nil
		case model.SessionStateError:
			err := s.loadErr
			s.mu.Unlock()
			return err
		}
	}

	call := &bootstrapCall{done: make(chan struct{})}
	s.inflight = call
	s.state = model.SessionStateLoading
	s.loadErr = nil
	s.mu.Unlock()

	s.logger.Debugw("loading users")

	var (
		records   []*model.User
		favorites model.FavoriteSet
		g         errgroup.Group
	)

	g.Go(func() error {
		users, err := s.users.GetUsers(ctx)
		if err != nil {
			return err
		}

		records = make([]*model.User, 0, len(users))
		for _, u := range users {
			records = append(records, u.WithLiked(false))
		}
		return nil
	})

	g.Go(func() error {
		favorites = s.restoreFavorites(ctx)
		return nil
	})

	err := g.Wait()

	s.mu.Lock()
	s.favoriteSet = favorites
	if err != nil {
		s.logger.Errorw("failed to load users", "err", err)
		err = &LoadError{Message: LoadErrorMessage, Err: err}
		s.state = model.SessionStateError
		s.loadErr = err
		s.records = nil
	} else {
		s.logger.Infow("loaded users", "count", len(records), "favorites", len(favorites))
		s.state = model.SessionStateReady
		s.records = records
	}
	s.inflight = nil
	s.mu.Unlock()

	call.err = err
	close(call.done)

	return err
}

func (s *Session) restoreFavorites(ctx context.Context) model.FavoriteSet {
	set, err := s.favorites.Load(ctx, s.variant.FavoritesKey)
	if err != nil {
		s.logger.Warnw("failed to restore favorites, starting with an empty set", "key", s.variant.FavoritesKey, "err", err)
		return model.FavoriteSet{}
	}
	if set == nil {
		set = model.FavoriteSet{}
	}

	return set
}

// View returns the visible users for the current filter, loading them on first use.
func (s *Session) View(ctx context.Context) (*View, error) {
	if err := s.Ensure(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.readyLocked(); err != nil {
		return nil, err
	}

	return newView(s.Variant(), s.records, s.favoriteSet, s.filter, s.darkMode), nil
}

func (s *Session) readyLocked() error {
	switch s.state {
	case model.SessionStateReady:
		return nil
	case model.SessionStateError:
		return s.loadErr
	default:
		return model.ErrNotLoaded
	}
}

func (s *Session) Filter() model.UsersFilter {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filter
}

// SetFilter replaces the current search and favorites-only settings.
func (s *Session) SetFilter(filter model.UsersFilter) error {
	if filter.FavoritesOnly && !s.variant.FavoritesFilter {
		return model.ErrFeatureDisabled
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.filter = filter
	return nil
}

func (s *Session) SetSearch(search string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filter.Search = search
}

// ClearSearch is the "Clear Search" action of the empty state.
func (s *Session) ClearSearch() {
	s.SetSearch("")
}

// ShowAll is the "Show All Users" action of the empty state.
func (s *Session) ShowAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filter.FavoritesOnly = false
}

func (s *Session) Favorites() model.FavoriteSet {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.favoriteSet.Clone()
}

// ToggleFavorite flips id in the favorite set and persists the result.
// The new set is kept in memory even when persisting fails.
func (s *Session) ToggleFavorite(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.readyLocked(); err != nil {
		return false, err
	}

	s.favoriteSet = ToggleFavorite(s.favoriteSet, id)
	added := s.favoriteSet.Contains(id)

	if err := s.favorites.Save(ctx, s.variant.FavoritesKey, s.favoriteSet); err != nil {
		return added, fmt.Errorf("save favorites: %w", err)
	}

	return added, nil
}

func (s *Session) User(id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.readyLocked(); err != nil {
		return nil, err
	}

	i := s.indexLocked(id)
	if i < 0 {
		return nil, model.ErrNoRecord
	}

	return s.records[i], nil
}

// ToggleLike flips the liked flag of a user and returns the updated user.
func (s *Session) ToggleLike(id int64) (*model.User, error) {
	return s.replace(id, func(u *model.User) *model.User {
		return u.WithLiked(!u.Liked)
	})
}

// Update replaces the editable fields of a user. Validation is up to the caller.
func (s *Session) Update(id int64, upd *model.UserUpdate) (*model.User, error) {
	if upd == nil {
		return nil, errors.New("nil update")
	}

	return s.replace(id, func(u *model.User) *model.User {
		return u.WithUpdate(upd)
	})
}

func (s *Session) Delete(id int64) error {
	if !s.variant.Mutations {
		return model.ErrFeatureDisabled
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.readyLocked(); err != nil {
		return err
	}

	i := s.indexLocked(id)
	if i < 0 {
		return model.ErrNoRecord
	}

	records := make([]*model.User, 0, len(s.records)-1)
	records = append(records, s.records[:i]...)
	records = append(records, s.records[i+1:]...)
	s.records = records

	return nil
}

func (s *Session) replace(id int64, fn func(u *model.User) *model.User) (*model.User, error) {
	if !s.variant.Mutations {
		return nil, model.ErrFeatureDisabled
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.readyLocked(); err != nil {
		return nil, err
	}

	i := s.indexLocked(id)
	if i < 0 {
		return nil, model.ErrNoRecord
	}

	records := make([]*model.User, len(s.records))
	copy(records, s.records)
	records[i] = fn(records[i])
	s.records = records

	return records[i], nil
}

func (s *Session) indexLocked(id int64) int {
	for i, u := range s.records {
		if u.ID == id {
			return i
		}
	}

	return -1
}

func (s *Session) DarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.darkMode
}

// ToggleDarkMode flips the display preference and returns the new value. It is not persisted.
func (s *Session) ToggleDarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.darkMode = !s.darkMode
	return s.darkMode
}
