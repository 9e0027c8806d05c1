package entity

// Player is a seated peer as seen from outside the session.
type Player struct {
	ID      string `json:"id"`
	Ordinal int    `json:"ordinal"`
	Mark    string `json:"mark,omitempty"`
}
