package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/SergeyKozhin/user-profiles-backend/internal/business/profiles"
	"github.com/SergeyKozhin/user-profiles-backend/internal/model"
	"github.com/go-chi/chi/v5"
)

type contextKey string

const (
	contextKeySession = contextKey("session")
	contextKeyUserID  = contextKey("user_id")
)

var (
	errCantRetrieveSession = errors.New("can't retrieve session from context")
	errCantRetrieveUserID  = errors.New("can't retrieve user id from context")
)

func (a *Api) sessionCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "variant")

		session, err := a.profiles.Session(name)
		if err != nil {
			switch {
			case errors.Is(err, model.ErrUnknownVariant):
				a.notFoundResponse(w, r)
			default:
				a.serverErrorResponse(w, r, fmt.Errorf("get session %q: %w", name, err))
			}
			return
		}

		sessionCtx := context.WithValue(r.Context(), contextKeySession, session)
		next.ServeHTTP(w, r.WithContext(sessionCtx))
	})
}

// loadedSession bootstraps the session before handlers that work on loaded users.
func (a *Api) loadedSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionFromContext(r)
		if !ok {
			a.serverErrorResponse(w, r, errCantRetrieveSession)
			return
		}

		if err := session.Ensure(context.WithoutCancel(r.Context())); err != nil {
			a.sessionErrorResponse(w, r, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (a *Api) userIDCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
		if err != nil {
			a.notFoundResponse(w, r)
			return
		}

		idCtx := context.WithValue(r.Context(), contextKeyUserID, id)
		next.ServeHTTP(w, r.WithContext(idCtx))
	})
}

func sessionFromContext(r *http.Request) (*profiles.Session, bool) {
	session, ok := r.Context().Value(contextKeySession).(*profiles.Session)
	return session, ok
}

func userIDFromContext(r *http.Request) (int64, bool) {
	id, ok := r.Context().Value(contextKeyUserID).(int64)
	return id, ok
}
