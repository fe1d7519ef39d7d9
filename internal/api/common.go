package api

import (
	"github.com/SergeyKozhin/user-profiles-backend/internal/business/profiles"
	"github.com/SergeyKozhin/user-profiles-backend/internal/model"
)

type addressResp struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
}

type companyResp struct {
	Name string `json:"name"`
}

type userResp struct {
	ID       int64       `json:"id"`
	Name     string      `json:"name"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Phone    string      `json:"phone"`
	Website  string      `json:"website"`
	Address  addressResp `json:"address"`
	Company  companyResp `json:"company"`
	Liked    bool        `json:"liked"`
	Favorite bool        `json:"favorite"`
}

func mapToUserResp(user *model.User, favorites model.FavoriteSet) *userResp {
	return &userResp{
		ID:       user.ID,
		Name:     user.Name,
		Username: user.Username,
		Email:    user.Email,
		Phone:    user.Phone,
		Website:  user.Website,
		Address: addressResp{
			Street:  user.Address.Street,
			Suite:   user.Address.Suite,
			City:    user.Address.City,
			Zipcode: user.Address.Zipcode,
		},
		Company: companyResp{
			Name: user.Company.Name,
		},
		Liked:    user.Liked,
		Favorite: favorites.Contains(user.ID),
	}
}

type emptyResp struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Actions  []string `json:"actions"`
}

type usersResp struct {
	Variant        string      `json:"variant"`
	Title          string      `json:"title"`
	Users          []*userResp `json:"users"`
	Shown          int         `json:"shown"`
	Total          int         `json:"total"`
	FavoritesCount int         `json:"favorites_count"`
	Search         string      `json:"search"`
	FavoritesOnly  bool        `json:"favorites_only"`
	DarkMode       bool        `json:"dark_mode"`
	Summary        string      `json:"summary,omitempty"`
	Empty          *emptyResp  `json:"empty,omitempty"`
}

func mapToUsersResp(view *profiles.View) *usersResp {
	users := mapSlice(view.Users, func(u *model.User) *userResp {
		return mapToUserResp(u, view.Favorites)
	})

	resp := &usersResp{
		Variant:        view.Variant.Name,
		Title:          view.Variant.Title,
		Users:          users,
		Shown:          len(view.Users),
		Total:          view.Total,
		FavoritesCount: len(view.Favorites),
		Search:         view.Filter.Search,
		FavoritesOnly:  view.Filter.FavoritesOnly,
		DarkMode:       view.DarkMode,
		Summary:        view.Summary,
	}

	if view.Empty != nil {
		actions := make([]string, len(view.Empty.Actions))
		for i, act := range view.Empty.Actions {
			actions[i] = string(act)
		}
		resp.Empty = &emptyResp{
			Title:    view.Empty.Title,
			Subtitle: view.Empty.Subtitle,
			Actions:  actions,
		}
	}

	return resp
}

type variantResp struct {
	Name            string `json:"name"`
	Title           string `json:"title"`
	FavoritesKey    string `json:"favorites_key"`
	FavoritesFilter bool   `json:"favorites_filter"`
	Mutations       bool   `json:"mutations"`
}

func mapToVariantResp(v *model.Variant) *variantResp {
	return &variantResp{
		Name:            v.Name,
		Title:           v.Title,
		FavoritesKey:    v.FavoritesKey,
		FavoritesFilter: v.FavoritesFilter,
		Mutations:       v.Mutations,
	}
}
