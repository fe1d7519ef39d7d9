package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/SergeyKozhin/user-profiles-backend/internal/model"
)

func (a *Api) getFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveSession)
		return
	}

	favorites := session.Favorites()
	if favorites == nil {
		favorites = model.FavoriteSet{}
	}

	resp := &struct {
		IDs   []int64 `json:"ids"`
		Count int     `json:"count"`
	}{
		IDs:   favorites,
		Count: len(favorites),
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) toggleFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveSession)
		return
	}

	id, ok := userIDFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUserID)
		return
	}

	added, err := session.ToggleFavorite(context.WithoutCancel(r.Context()), id)
	if err != nil {
		a.sessionErrorResponse(w, r, fmt.Errorf("toggle favorite %d: %w", id, err))
		return
	}

	message := "Removed from favorites"
	if added {
		message = "Added to favorites"
	}

	resp := &struct {
		ID             int64  `json:"id"`
		Favorite       bool   `json:"favorite"`
		FavoritesCount int    `json:"favorites_count"`
		Message        string `json:"message"`
	}{
		ID:             id,
		Favorite:       added,
		FavoritesCount: len(session.Favorites()),
		Message:        message,
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
