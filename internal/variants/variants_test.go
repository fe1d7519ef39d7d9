package variants

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SergeyKozhin/user-profiles-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	r := Default()

	list := r.List()
	require.Len(t, list, 3)
	assert.Equal(t, []string{Basic, PortalBasic, Advanced}, []string{list[0].Name, list[1].Name, list[2].Name})

	basic, err := r.Get(Basic)
	require.NoError(t, err)
	assert.Equal(t, "favorites", basic.FavoritesKey)
	assert.False(t, basic.FavoritesFilter)
	assert.False(t, basic.Mutations)

	portal, err := r.Get(PortalBasic)
	require.NoError(t, err)
	assert.Equal(t, "basic-favorites", portal.FavoritesKey)

	advanced, err := r.Get(Advanced)
	require.NoError(t, err)
	assert.Equal(t, "advanced-favorites", advanced.FavoritesKey)
	assert.True(t, advanced.FavoritesFilter)
	assert.True(t, advanced.Mutations)
}

func TestGet_Unknown(t *testing.T) {
	_, err := Default().Get("premium")
	assert.ErrorIs(t, err, model.ErrUnknownVariant)
}

func TestGet_ReturnsCopy(t *testing.T) {
	r := Default()

	v, err := r.Get(Basic)
	require.NoError(t, err)
	v.FavoritesKey = "changed"

	again, err := r.Get(Basic)
	require.NoError(t, err)
	assert.Equal(t, "favorites", again.FavoritesKey)
}

func TestLoad_EmptyPath(t *testing.T) {
	r, err := Load("")
	require.NoError(t, err)
	assert.Len(t, r.List(), 3)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "variants.yaml")
	data := `
variants:
  - name: basic
    title: Profiles
    favorites_key: favorites
    favorites_filter: true
  - name: team
    favorites_key: team-favorites
    mutations: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	r, err := Load(path)
	require.NoError(t, err)
	require.Len(t, r.List(), 4)

	basic, err := r.Get(Basic)
	require.NoError(t, err)
	assert.Equal(t, "Profiles", basic.Title)
	assert.True(t, basic.FavoritesFilter)

	team, err := r.Get("team")
	require.NoError(t, err)
	assert.Equal(t, "User Profiles", team.Title)
	assert.True(t, team.Mutations)
	assert.Equal(t, "team", r.List()[3].Name)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "bad yaml", data: "variants: ["},
		{name: "bad name", data: "variants:\n  - name: Bad Name\n    favorites_key: k\n"},
		{name: "missing key", data: "variants:\n  - name: team\n"},
		{name: "shared key", data: "variants:\n  - name: team\n    favorites_key: advanced-favorites\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "variants.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0o600))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
