package entity

import (
	"errors"
	"time"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

type Snapshot struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Size      int       `json:"size"`
	Board     string    `json:"board"`
	Turn      string    `json:"player_turn"`
	Status    string    `json:"status"`
	Winner    string    `json:"winner,omitempty"`
	Moves     int       `json:"moves"`
	Players   []*Player `json:"players,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Match is a finished game kept in the history.
type Match struct {
	GameID     string    `json:"game_id"`
	Kind       string    `json:"kind"`
	Winner     string    `json:"winner"`
	Board      string    `json:"board"`
	Moves      int       `json:"moves"`
	FinishedAt time.Time `json:"finished_at"`
}
