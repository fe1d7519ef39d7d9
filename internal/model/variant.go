package model

// Variant describes one of the profile front-ends served by the backend.
type Variant struct {
	Name         string
	Title        string
	FavoritesKey string
	// FavoritesFilter enables the favorites-only toggle.
	FavoritesFilter bool
	// Mutations enables like, edit and delete.
	Mutations bool
}

type SessionState int

const (
	SessionStateIdle SessionState = iota
	SessionStateLoading
	SessionStateReady
	SessionStateError
)

func (s SessionState) String() string {
	switch s {
	case SessionStateIdle:
		return "idle"
	case SessionStateLoading:
		return "loading"
	case SessionStateReady:
		return "ready"
	case SessionStateError:
		return "error"
	default:
		return "unknown"
	}
}
