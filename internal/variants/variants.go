package variants

import (
	"fmt"
	"os"
	"regexp"

	"github.com/SergeyKozhin/user-profiles-backend/internal/model"
	"gopkg.in/yaml.v3"
)

const (
	Basic       = "basic"
	PortalBasic = "portal-basic"
	Advanced    = "advanced"
)

var nameRX = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Registry is an ordered, read-only set of variants.
type Registry struct {
	byName map[string]*model.Variant
	order  []string
}

func Default() *Registry {
	r := &Registry{byName: make(map[string]*model.Variant)}
	r.put(&model.Variant{
		Name:         Basic,
		Title:        "User Profiles",
		FavoritesKey: "favorites",
	})
	r.put(&model.Variant{
		Name:         PortalBasic,
		Title:        "Assignment 1 - Basic User Profiles",
		FavoritesKey: "basic-favorites",
	})
	r.put(&model.Variant{
		Name:            Advanced,
		Title:           "Assignment 2 - Advanced User Profiles",
		FavoritesKey:    "advanced-favorites",
		FavoritesFilter: true,
		Mutations:       true,
	})

	return r
}

type fileDTO struct {
	Variants []variantDTO `yaml:"variants"`
}

type variantDTO struct {
	Name            string `yaml:"name"`
	Title           string `yaml:"title"`
	FavoritesKey    string `yaml:"favorites_key"`
	FavoritesFilter bool   `yaml:"favorites_filter"`
	Mutations       bool   `yaml:"mutations"`
}

// Load returns the default registry with the variants from the YAML file at path
// added or replaced by name. An empty path returns the defaults.
func Load(path string) (*Registry, error) {
	r := Default()
	if path == "" {
		return r, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read variants file: %w", err)
	}

	if err := r.merge(data); err != nil {
		return nil, fmt.Errorf("variants file %s: %w", path, err)
	}

	return r, nil
}

func (r *Registry) merge(data []byte) error {
	var file fileDTO
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	keys := make(map[string]string, len(r.byName))
	for _, v := range r.byName {
		keys[v.FavoritesKey] = v.Name
	}

	for i, d := range file.Variants {
		if !nameRX.MatchString(d.Name) {
			return fmt.Errorf("variant #%d: invalid name %q", i+1, d.Name)
		}
		if d.FavoritesKey == "" {
			return fmt.Errorf("variant %q: favorites_key must be provided", d.Name)
		}
		if owner, ok := keys[d.FavoritesKey]; ok && owner != d.Name {
			return fmt.Errorf("variant %q: favorites_key %q already used by %q", d.Name, d.FavoritesKey, owner)
		}
		if old, ok := r.byName[d.Name]; ok {
			delete(keys, old.FavoritesKey)
		}
		keys[d.FavoritesKey] = d.Name

		title := d.Title
		if title == "" {
			title = "User Profiles"
		}
		r.put(&model.Variant{
			Name:            d.Name,
			Title:           title,
			FavoritesKey:    d.FavoritesKey,
			FavoritesFilter: d.FavoritesFilter,
			Mutations:       d.Mutations,
		})
	}

	return nil
}

func (r *Registry) put(v *model.Variant) {
	if _, ok := r.byName[v.Name]; !ok {
		r.order = append(r.order, v.Name)
	}
	r.byName[v.Name] = v
}

func (r *Registry) Get(name string) (*model.Variant, error) {
	v, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownVariant, name)
	}

	c := *v
	return &c, nil
}

func (r *Registry) List() []*model.Variant {
	res := make([]*model.Variant, len(r.order))
	for i, name := range r.order {
		c := *r.byName[name]
		res[i] = &c
	}

	return res
}
