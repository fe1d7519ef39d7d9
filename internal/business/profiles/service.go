package profiles

import (
	"context"
	"sync"

	"github.com/SergeyKozhin/user-profiles-backend/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type variantRegistry interface {
	Get(name string) (*model.Variant, error)
	List() []*model.Variant
}

// Service keeps one Session per variant, created on first use.
type Service struct {
	logger    *zap.SugaredLogger
	users     usersFetcher
	favorites favoritesRepository
	variants  variantRegistry

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewService(logger *zap.SugaredLogger, users usersFetcher, favorites favoritesRepository, variants variantRegistry) *Service {
	return &Service{
		logger:    logger,
		users:     users,
		favorites: favorites,
		variants:  variants,
		sessions:  make(map[string]*Session),
	}
}

func (s *Service) Variants() []*model.Variant {
	return s.variants.List()
}

// Session returns the session of the named variant or an error wrapping model.ErrUnknownVariant.
func (s *Service) Session(name string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[name]; ok {
		return session, nil
	}

	variant, err := s.variants.Get(name)
	if err != nil {
		return nil, err
	}

	session := NewSession(variant, s.logger, s.users, s.favorites)
	s.sessions[name] = session

	return session, nil
}

// Warmup bootstraps every variant concurrently. Failures are left in the sessions'
// error state for the retry action and are not returned.
func (s *Service) Warmup(ctx context.Context) {
	var g errgroup.Group

	for _, v := range s.variants.List() {
		session, err := s.Session(v.Name)
		if err != nil {
			s.logger.Errorw("failed to create session", "variant", v.Name, "err", err)
			continue
		}

		g.Go(func() error {
			_ = session.Bootstrap(ctx)
			return nil
		})
	}

	_ = g.Wait()
}
