package profiles

import (
	"fmt"

	"github.com/SergeyKozhin/user-profiles-backend/internal/model"
)

type EmptyAction string

const (
	EmptyActionClearSearch EmptyAction = "clear_search"
	EmptyActionShowAll     EmptyAction = "show_all"
)

// EmptyState describes what to render when no user is visible.
type EmptyState struct {
	Title    string
	Subtitle string
	Actions  []EmptyAction
}

// View is a snapshot of a session as the front-end renders it.
type View struct {
	Variant   *model.Variant
	Users     []*model.User
	Total     int
	Favorites model.FavoriteSet
	Filter    model.UsersFilter
	DarkMode  bool
	// Summary is set only while a search or the favorites filter is active.
	Summary string
	Empty   *EmptyState
}

func newView(variant *model.Variant, users []*model.User, favorites model.FavoriteSet, filter model.UsersFilter, darkMode bool) *View {
	visible := Filter(users, filter.Search, filter.FavoritesOnly, favorites)

	v := &View{
		Variant:   variant,
		Users:     visible,
		Total:     len(users),
		Favorites: favorites.Clone(),
		Filter:    filter,
		DarkMode:  darkMode,
	}

	if filter.Search != "" || filter.FavoritesOnly {
		v.Summary = fmt.Sprintf("Showing %d of %d users", len(visible), len(users))
		if filter.FavoritesOnly {
			v.Summary += " (favorites only)"
		}
	}

	if len(visible) == 0 {
		v.Empty = emptyState(filter)
	}

	return v
}

func emptyState(filter model.UsersFilter) *EmptyState {
	s := &EmptyState{}

	switch {
	case filter.Search != "":
		s.Title = "No Search Results"
		s.Subtitle = fmt.Sprintf(`No users found matching "%s"`, filter.Search)
	case filter.FavoritesOnly:
		s.Title = "No Favorites"
		s.Subtitle = "You haven't added any favorites yet"
	default:
		s.Title = "No Users Found"
		s.Subtitle = "There are currently no users to display."
	}

	if filter.Search != "" {
		s.Actions = append(s.Actions, EmptyActionClearSearch)
	}
	if filter.FavoritesOnly {
		s.Actions = append(s.Actions, EmptyActionShowAll)
	}

	return s
}
