package entity

import (
	"testing"

	"github.com/rocketscienceinc/boardnet/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_Place(t *testing.T) {
	t.Run("Only the targeted cell changes", func(t *testing.T) {
		for _, size := range []int{3, 8} {
			for row := range size {
				for col := range size {
					// Given: a board with a few marks already set
					board := NewBoard(size)
					require.NoError(t, board.Place(0, 0, O))
					require.NoError(t, board.Place(size-1, size-1, X))
					before := board.Clone()

					// When: X is placed at (row, col)
					err := board.Place(row, col, X)

					// Then: the target holds X and every other cell is untouched
					require.NoError(t, err)
					for i := range board.Len() {
						if i == board.Index(row, col) {
							assert.Equal(t, X, board.AtIndex(i))
							continue
						}
						assert.Equal(t, before.AtIndex(i), board.AtIndex(i), "cell %d changed", i)
					}
				}
			}
		}
	})

	t.Run("Overwrites an occupied cell", func(t *testing.T) {
		// Given: a cell held by O
		board := NewBoard(3)
		require.NoError(t, board.Place(1, 1, O))

		// When: X is placed on the same cell
		err := board.Place(1, 1, X)

		// Then: the overwrite succeeds
		require.NoError(t, err)
		assert.Equal(t, X, board.At(1, 1))
	})

	t.Run("Rejects cells outside the grid", func(t *testing.T) {
		board := NewBoard(3)

		assert.ErrorIs(t, board.Place(3, 0, X), apperror.ErrInvalidCell)
		assert.ErrorIs(t, board.Place(0, -1, X), apperror.ErrInvalidCell)
		assert.Equal(t, "EEEEEEEEE", board.String())
	})
}

func TestBoard_String(t *testing.T) {
	t.Run("Row-major scan", func(t *testing.T) {
		// Given: X in the top right corner and O in the bottom left corner
		board := NewBoard(3)
		require.NoError(t, board.Place(0, 2, X))
		require.NoError(t, board.Place(2, 0, O))

		// Then: the string lists rows top to bottom
		assert.Equal(t, "EEXEEEOEE", board.String())
	})

	t.Run("Parse reproduces the layout", func(t *testing.T) {
		layouts := []struct {
			size int
			s    string
		}{
			{3, "EEEEEEEEE"},
			{3, "XOXOXOOXO"},
			{3, "XEEEOEEEX"},
			{8, "EEEEEEEEEEEEEEEEEEEEEEEEEEEOXEEEEEEXOEEEEEEEEEEEEEEEEEEEEEEEEEEE"},
		}

		for _, layout := range layouts {
			board, err := ParseBoard(layout.size, layout.s)
			require.NoError(t, err)
			assert.Equal(t, layout.s, board.String())
		}
	})

	t.Run("Parse rejects bad input", func(t *testing.T) {
		_, err := ParseBoard(3, "XOX")
		require.ErrorIs(t, err, ErrBoardLength)

		_, err = ParseBoard(3, "XOXOXOOXZ")
		require.ErrorIs(t, err, ErrUnknownMarker)
	})
}

func TestBoard_Count(t *testing.T) {
	board, err := ParseBoard(3, "XOXEEOXEE")
	require.NoError(t, err)

	assert.Equal(t, 3, board.Count(X))
	assert.Equal(t, 2, board.Count(O))
	assert.Equal(t, 4, board.Count(Empty))
	assert.False(t, board.IsFull())
}

func TestCell_Opponent(t *testing.T) {
	assert.Equal(t, O, X.Opponent())
	assert.Equal(t, X, O.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())
}
