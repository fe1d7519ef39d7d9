package favorites

import (
	"github.com/SergeyKozhin/user-profiles-backend/internal/database"
)

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select(
		"storage_key",
		"ids",
	).
	From(database.FavoritesTable)
