package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/boardnet/internal/apperror"
)

// Cell is the content of one board square.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

var (
	ErrBoardLength   = errors.New("board string has wrong length")
	ErrUnknownMarker = errors.New("unknown cell marker")
)

// Byte - returns the wire character for the cell.
func (that Cell) Byte() byte {
	switch that {
	case X:
		return 'X'
	case O:
		return 'O'
	default:
		return 'E'
	}
}

func (that Cell) String() string {
	return string(that.Byte())
}

// Opponent - returns the other player's mark. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// ParseCell - parses a wire character, 'E' is the empty cell.
func ParseCell(b byte) (Cell, error) {
	switch b {
	case 'X':
		return X, nil
	case 'O':
		return O, nil
	case 'E':
		return Empty, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrUnknownMarker, b)
	}
}

// Board is a square grid stored in row-major order.
type Board struct {
	size  int
	cells []Cell
}

func NewBoard(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

// ParseBoard - rebuilds a board from its row-major string form.
func ParseBoard(size int, s string) (*Board, error) {
	if len(s) != size*size {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrBoardLength, len(s), size*size)
	}

	board := NewBoard(size)
	for i := range len(s) {
		cell, err := ParseCell(s[i])
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		board.cells[i] = cell
	}

	return board, nil
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) Len() int {
	return len(that.cells)
}

func (that *Board) Contains(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}

func (that *Board) Index(row, col int) int {
	return row*that.size + col
}

func (that *Board) At(row, col int) Cell {
	return that.cells[that.Index(row, col)]
}

func (that *Board) AtIndex(i int) Cell {
	return that.cells[i]
}

// Place - overwrites the cell unconditionally. Only the bounds are checked.
func (that *Board) Place(row, col int, cell Cell) error {
	if !that.Contains(row, col) {
		return fmt.Errorf("%w: (%d,%d)", apperror.ErrInvalidCell, row, col)
	}

	that.cells[that.Index(row, col)] = cell

	return nil
}

func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == Empty {
			return false
		}
	}

	return true
}

func (that *Board) Count(cell Cell) int {
	n := 0
	for _, c := range that.cells {
		if c == cell {
			n++
		}
	}

	return n
}

func (that *Board) Clone() *Board {
	clone := NewBoard(that.size)
	copy(clone.cells, that.cells)

	return clone
}

// String - row-major scan, one character per cell.
func (that *Board) String() string {
	var sb strings.Builder
	sb.Grow(len(that.cells))

	for _, cell := range that.cells {
		sb.WriteByte(cell.Byte())
	}

	return sb.String()
}
