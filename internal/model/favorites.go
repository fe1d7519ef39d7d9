package model

// FavoriteSet is a set of user ids kept in insertion order.
type FavoriteSet []int64

func (f FavoriteSet) Contains(id int64) bool {
	for _, v := range f {
		if v == id {
			return true
		}
	}

	return false
}

func (f FavoriteSet) Index() map[int64]struct{} {
	res := make(map[int64]struct{}, len(f))
	for _, id := range f {
		res[id] = struct{}{}
	}

	return res
}

func (f FavoriteSet) Clone() FavoriteSet {
	res := make(FavoriteSet, len(f))
	copy(res, f)
	return res
}
