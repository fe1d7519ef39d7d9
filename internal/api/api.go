package api

import (
	"net/http"

	"github.com/SergeyKozhin/user-profiles-backend/internal/business/profiles"
	"github.com/SergeyKozhin/user-profiles-backend/internal/model"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Api struct {
	handler http.Handler
	logger  *zap.SugaredLogger

	profiles profilesService
}

type profilesService interface {
	Session(name string) (*profiles.Session, error)
	Variants() []*model.Variant
}

func NewApi(
	logger *zap.SugaredLogger,
	profiles profilesService,
) (*Api, error) {
	a := &Api{
		logger:   logger,
		profiles: profiles,
	}
	a.setupHandler()

	return a, nil
}

func (a *Api) setupHandler() {
	middleware.DefaultLogger = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.logger.Debugw(r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"protocol", r.Proto,
				"method", r.Method,
				"request_id", middleware.GetReqID(r.Context()),
			)
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewMux()

	r.Use(middleware.RequestID, middleware.Logger, middleware.Recoverer, middleware.StripSlashes)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/variants", a.getVariantsHandler)

	r.Route("/variants/{variant}", func(r chi.Router) {
		r.Use(a.sessionCtx)

		r.Get("/", a.getSessionStateHandler)
		r.Post("/reload", a.reloadHandler)
		r.Post("/dark-mode", a.toggleDarkModeHandler)

		r.Route("/filter", func(r chi.Router) {
			r.Put("/", a.setFilterHandler)
			r.Post("/clear-search", a.clearSearchHandler)
			r.Post("/show-all", a.showAllHandler)
		})

		r.With(a.loadedSession).Get("/favorites", a.getFavoritesHandler)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", a.getUsersHandler)

			r.With(a.loadedSession, a.userIDCtx).Route("/{userID}", func(r chi.Router) {
				r.Get("/", a.getUserHandler)
				r.Put("/", a.updateUserHandler)
				r.Delete("/", a.deleteUserHandler)
				r.Post("/like", a.toggleLikeHandler)
				r.Post("/favorite", a.toggleFavoriteHandler)
			})
		})
	})

	a.handler = r
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}
