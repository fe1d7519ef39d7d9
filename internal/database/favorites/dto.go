package favorites

import (
	"github.com/SergeyKozhin/user-profiles-backend/internal/model"
)

type favoritesDTO struct {
	StorageKey string
	IDs        []int64 `db:"ids"`
}

func mapToFavoriteSet(dto *favoritesDTO) model.FavoriteSet {
	res := make(model.FavoriteSet, 0, len(dto.IDs))
	seen := make(map[int64]struct{}, len(dto.IDs))
	for _, id := range dto.IDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		res = append(res, id)
	}

	return res
}
