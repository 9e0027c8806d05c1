package othello

import (
	"strings"
	"testing"

	"github.com/rocketscienceinc/boardnet/internal/apperror"
	"github.com/rocketscienceinc/boardnet/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// When: a new othello game is created
	game := NewGameController().NewGame("g1")

	// Then: the centre holds two discs of each colour and black moves first
	assert.Equal(t, entity.KindOthello, game.Kind)
	assert.Equal(t, Size, game.Board.Size())
	assert.Equal(t, White, game.Board.At(3, 3))
	assert.Equal(t, White, game.Board.At(4, 4))
	assert.Equal(t, Black, game.Board.At(3, 4))
	assert.Equal(t, Black, game.Board.At(4, 3))
	assert.Equal(t, Black, game.Turn)

	black, white := Count(game.Board)
	assert.Equal(t, 2, black)
	assert.Equal(t, 2, white)
}

func TestGameController_MakeTurn(t *testing.T) {
	controller := NewGameController()

	t.Run("Places a disc without flipping", func(t *testing.T) {
		// Given: a fresh ongoing game
		game := controller.NewGame("g1")
		game.Status = entity.StatusOngoing
		before := game.Board.Clone()

		// When: black plays next to a white disc
		err := controller.MakeTurn(game, Black, 2, 3)

		// Then: only the target cell changed and white moves next
		require.NoError(t, err)
		for i := range game.Board.Len() {
			if i == game.Board.Index(2, 3) {
				assert.Equal(t, Black, game.Board.AtIndex(i))
				continue
			}
			assert.Equal(t, before.AtIndex(i), game.Board.AtIndex(i))
		}
		assert.Equal(t, White, game.Turn)
	})

	t.Run("Rejects occupied cells and wrong turn", func(t *testing.T) {
		game := controller.NewGame("g1")
		game.Status = entity.StatusOngoing

		assert.ErrorIs(t, controller.MakeTurn(game, Black, 3, 3), apperror.ErrCellOccupied)
		assert.ErrorIs(t, controller.MakeTurn(game, White, 0, 0), apperror.ErrNotYourTurn)
		assert.ErrorIs(t, controller.MakeTurn(game, Black, 8, 0), apperror.ErrInvalidCell)
	})

	t.Run("Last disc finishes the game", func(t *testing.T) {
		// Given: a board with one empty cell, black leading
		layout := []byte(strings.Repeat("X", 40) + strings.Repeat("O", 24))
		layout[63] = 'E'
		board, err := entity.ParseBoard(Size, string(layout))
		require.NoError(t, err)

		game := controller.NewGame("g1")
		game.Board = board
		game.Status = entity.StatusOngoing
		game.Turn = White

		// When: white fills the last cell
		require.NoError(t, controller.MakeTurn(game, White, 7, 7))

		// Then: black wins on discs
		assert.True(t, game.IsFinished())
		assert.Equal(t, Black, game.Winner)
	})
}

func TestCheckFinished(t *testing.T) {
	t.Run("Not finished while a cell is empty", func(t *testing.T) {
		_, finished := CheckFinished(NewGameController().NewGame("g").Board)

		assert.False(t, finished)
	})

	t.Run("Equal discs is a draw", func(t *testing.T) {
		board, err := entity.ParseBoard(Size, strings.Repeat("XO", 32))
		require.NoError(t, err)

		winner, finished := CheckFinished(board)

		assert.True(t, finished)
		assert.Equal(t, entity.Empty, winner)
	})
}
