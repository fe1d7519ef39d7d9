// Package favorites holds the storage format shared by the favorite set backends:
// a JSON array of numeric user ids stored under a per-variant key.
package favorites

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SergeyKozhin/user-profiles-backend/internal/model"
)

var ErrCorrupt = errors.New("corrupt favorites payload")

// Repository is a key-value store of favorite sets. Load of an absent key returns an empty set.
type Repository interface {
	Load(ctx context.Context, key string) (model.FavoriteSet, error)
	Save(ctx context.Context, key string, set model.FavoriteSet) error
}

// Decode parses a stored payload. An absent payload yields an empty set and no error.
// Duplicated ids are dropped keeping the first occurrence.
func Decode(raw []byte) (model.FavoriteSet, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return model.FavoriteSet{}, nil
	}

	var ids []int64
	if err := json.Unmarshal(raw, &ids); err != nil {
		return model.FavoriteSet{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	res := make(model.FavoriteSet, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		res = append(res, id)
	}

	return res, nil
}

func Encode(set model.FavoriteSet) ([]byte, error) {
	if set == nil {
		set = model.FavoriteSet{}
	}

	return json.Marshal([]int64(set))
}
