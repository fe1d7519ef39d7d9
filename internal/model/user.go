package model

type Address struct {
	Street  string
	Suite   string
	City    string
	Zipcode string
}

type Company struct {
	Name string
}

// UserUpdate holds the fields editable from the edit form.
type UserUpdate struct {
	Name     string
	Username string
	Email    string
	Phone    string
	Website  string
	Address  Address
	Company  Company
}

type User struct {
	ID    int64
	Liked bool
	UserUpdate
}

// WithUpdate returns a copy of u with the editable fields replaced.
func (u *User) WithUpdate(upd *UserUpdate) *User {
	return &User{
		ID:         u.ID,
		Liked:      u.Liked,
		UserUpdate: *upd,
	}
}

// WithLiked returns a copy of u with the liked flag set.
func (u *User) WithLiked(liked bool) *User {
	c := *u
	c.Liked = liked
	return &c
}

type UsersFilter struct {
	Search        string
	FavoritesOnly bool
}
