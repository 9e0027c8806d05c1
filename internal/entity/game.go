package entity

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/boardnet/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	PlayerTie = "-"
)

const (
	KindTicTacToe = "tictactoe"
	KindOthello   = "othello"
)

type Game struct {
	ID     string
	Kind   string
	Board  *Board
	Turn   Cell
	Status string
	Winner Cell
	Draw   bool
	Moves  int
}

func NewGame(id, kind string, size int) *Game {
	return &Game{
		ID:     id,
		Kind:   kind,
		Board:  NewBoard(size),
		Turn:   X,
		Status: StatusWaiting,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// Finish - ends the game. Empty winner means a draw.
func (that *Game) Finish(winner Cell) {
	that.Status = StatusFinished
	that.Winner = winner
	that.Draw = winner == Empty
}

// Result - "X", "O", PlayerTie, or empty while the game is not finished.
func (that *Game) Result() string {
	switch {
	case !that.IsFinished():
		return ""
	case that.Draw:
		return PlayerTie
	default:
		return that.Winner.String()
	}
}

// Snapshot - read-only copy of the game for storage and status endpoints.
func (that *Game) Snapshot(players []*Player) *Snapshot {
	return &Snapshot{
		ID:        that.ID,
		Kind:      that.Kind,
		Size:      that.Board.Size(),
		Board:     that.Board.String(),
		Turn:      that.Turn.String(),
		Status:    that.Status,
		Winner:    that.Result(),
		Moves:     that.Moves,
		Players:   players,
		UpdatedAt: time.Now().UTC(),
	}
}
