package entity

import (
	"testing"

	"github.com/rocketscienceinc/boardnet/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}

		assert.NoError(t, game.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameIsNotStarted when game is waiting", func(t *testing.T) {
		game := &Game{Status: StatusWaiting}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameIsNotStarted)
	})

	t.Run("Returns ErrGameFinished when game is finished", func(t *testing.T) {
		game := &Game{Status: StatusFinished}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		game := &Game{Status: "unknown"}

		err := game.ConfirmOngoingState()

		require.ErrorIs(t, err, ErrUnknownGameStatus)
	})
}

func TestGame_Result(t *testing.T) {
	t.Run("Empty while ongoing", func(t *testing.T) {
		game := NewGame("1", KindTicTacToe, 3)
		game.Status = StatusOngoing

		assert.Equal(t, "", game.Result())
	})

	t.Run("Winner mark", func(t *testing.T) {
		game := NewGame("1", KindTicTacToe, 3)
		game.Finish(O)

		assert.Equal(t, "O", game.Result())
		assert.False(t, game.Draw)
	})

	t.Run("Tie", func(t *testing.T) {
		game := NewGame("1", KindTicTacToe, 3)
		game.Finish(Empty)

		assert.Equal(t, PlayerTie, game.Result())
		assert.True(t, game.Draw)
	})
}

func TestGame_Snapshot(t *testing.T) {
	// Given: an ongoing game with one move made
	game := NewGame("42", KindTicTacToe, 3)
	game.Status = StatusOngoing
	require.NoError(t, game.Board.Place(1, 1, X))
	game.Turn = O
	game.Moves = 1

	// When: a snapshot is taken
	players := []*Player{{ID: "a", Ordinal: 1, Mark: "X"}}
	snap := game.Snapshot(players)

	// Then: it mirrors the game
	assert.Equal(t, "42", snap.ID)
	assert.Equal(t, KindTicTacToe, snap.Kind)
	assert.Equal(t, 3, snap.Size)
	assert.Equal(t, "EEEEXEEEE", snap.Board)
	assert.Equal(t, "O", snap.Turn)
	assert.Equal(t, StatusOngoing, snap.Status)
	assert.Equal(t, 1, snap.Moves)
	assert.Equal(t, players, snap.Players)
	assert.False(t, snap.UpdatedAt.IsZero())
}
