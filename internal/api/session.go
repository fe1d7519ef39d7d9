package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/SergeyKozhin/user-profiles-backend/internal/business/profiles"
	"github.com/SergeyKozhin/user-profiles-backend/internal/model"
)

func (a *Api) getSessionStateHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveSession)
		return
	}

	resp := &struct {
		Variant  *variantResp `json:"variant"`
		State    string       `json:"state"`
		DarkMode bool         `json:"dark_mode"`
	}{
		Variant:  mapToVariantResp(session.Variant()),
		State:    session.State().String(),
		DarkMode: session.DarkMode(),
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

// reloadHandler is the retry action of the error state. The fetch is detached from the
// request so a dropped client does not leave the session in the error state.
func (a *Api) reloadHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveSession)
		return
	}

	if err := session.Retry(context.WithoutCancel(r.Context())); err != nil {
		a.sessionErrorResponse(w, r, err)
		return
	}

	a.writeView(w, r, session)
}

func (a *Api) toggleDarkModeHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveSession)
		return
	}

	darkMode := session.ToggleDarkMode()

	message := "Light mode activated"
	if darkMode {
		message = "Dark mode activated"
	}

	resp := &struct {
		DarkMode bool   `json:"dark_mode"`
		Message  string `json:"message"`
	}{
		DarkMode: darkMode,
		Message:  message,
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) setFilterHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveSession)
		return
	}

	req := &struct {
		Search        string `json:"search"`
		FavoritesOnly bool   `json:"favorites_only"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if err := session.SetFilter(model.UsersFilter{
		Search:        req.Search,
		FavoritesOnly: req.FavoritesOnly,
	}); err != nil {
		a.sessionErrorResponse(w, r, err)
		return
	}

	a.writeView(w, r, session)
}

func (a *Api) clearSearchHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveSession)
		return
	}

	session.ClearSearch()
	a.writeView(w, r, session)
}

func (a *Api) showAllHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveSession)
		return
	}

	session.ShowAll()
	a.writeView(w, r, session)
}

// writeView renders the visible users of the session, loading them on first use.
func (a *Api) writeView(w http.ResponseWriter, r *http.Request, session *profiles.Session) {
	view, err := session.View(context.WithoutCancel(r.Context()))
	if err != nil {
		a.sessionErrorResponse(w, r, fmt.Errorf("view: %w", err))
		return
	}

	if err := a.writeJSON(w, http.StatusOK, mapToUsersResp(view), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
