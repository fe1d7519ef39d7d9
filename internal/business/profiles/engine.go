package profiles

import (
	"strings"

	"github.com/SergeyKozhin/user-profiles-backend/internal/model"
)

// Filter returns the users visible for the given search and favorites settings, in input order.
// A user is kept when the search is empty or is a case-insensitive substring of its name,
// email or company name, and, with favoritesOnly, when its id is in favorites.
// Neither users nor favorites are modified.
func Filter(users []*model.User, search string, favoritesOnly bool, favorites model.FavoriteSet) []*model.User {
	search = strings.ToLower(search)

	var index map[int64]struct{}
	if favoritesOnly {
		index = favorites.Index()
	}

	res := make([]*model.User, 0, len(users))
	for _, u := range users {
		if !matches(u, search) {
			continue
		}
		if favoritesOnly {
			if _, ok := index[u.ID]; !ok {
				continue
			}
		}
		res = append(res, u)
	}

	return res
}

func matches(u *model.User, lowered string) bool {
	if lowered == "" {
		return true
	}

	return strings.Contains(strings.ToLower(u.Name), lowered) ||
		strings.Contains(strings.ToLower(u.Email), lowered) ||
		strings.Contains(strings.ToLower(u.Company.Name), lowered)
}

// ToggleFavorite returns a new set without id if it was present, or with id appended otherwise.
func ToggleFavorite(favorites model.FavoriteSet, id int64) model.FavoriteSet {
	if favorites.Contains(id) {
		res := make(model.FavoriteSet, 0, len(favorites))
		for _, v := range favorites {
			if v != id {
				res = append(res, v)
			}
		}
		return res
	}

	res := make(model.FavoriteSet, len(favorites), len(favorites)+1)
	copy(res, favorites)
	return append(res, id)
}
