package othello

import (
	"fmt"

	"github.com/rocketscienceinc/boardnet/internal/apperror"
	"github.com/rocketscienceinc/boardnet/internal/entity"
)

const Size = 8

// Black is X and moves first, White is O.
const (
	Black = entity.X
	White = entity.O
)

type GameController struct{}

func NewGameController() *GameController {
	return &GameController{}
}

func (that *GameController) Kind() string {
	return entity.KindOthello
}

// NewGame - 8x8 board with the four centre discs in the starting position.
func (that *GameController) NewGame(id string) *entity.Game {
	game := entity.NewGame(id, entity.KindOthello, Size)
	game.Turn = Black

	setup(game.Board)

	return game
}

func setup(board *entity.Board) {
	mid := Size / 2

	_ = board.Place(mid-1, mid-1, White)
	_ = board.Place(mid, mid, White)
	_ = board.Place(mid-1, mid, Black)
	_ = board.Place(mid, mid-1, Black)
}

// MakeTurn - places a disc for the side to move on any empty cell. No discs are flipped.
func (that *GameController) MakeTurn(game *entity.Game, mark entity.Cell, row, col int) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	switch {
	case !game.Board.Contains(row, col):
		return fmt.Errorf("invalid turn: %w", apperror.ErrInvalidCell)
	case game.Turn != mark:
		return fmt.Errorf("invalid turn: %w", apperror.ErrNotYourTurn)
	case game.Board.At(row, col) != entity.Empty:
		return fmt.Errorf("invalid turn: %w", apperror.ErrCellOccupied)
	}

	if err := game.Board.Place(row, col, mark); err != nil {
		return fmt.Errorf("failed to place disc: %w", err)
	}
	game.Moves++

	if winner, finished := CheckFinished(game.Board); finished {
		game.Finish(winner)
		return nil
	}

	game.Turn = mark.Opponent()

	return nil
}

// Count - number of black and white discs on the board.
func Count(board *entity.Board) (int, int) {
	return board.Count(Black), board.Count(White)
}

// CheckFinished - the game ends when the board is full; more discs wins, equal counts draw.
func CheckFinished(board *entity.Board) (entity.Cell, bool) {
	if !board.IsFull() {
		return entity.Empty, false
	}

	black, white := Count(board)
	switch {
	case black > white:
		return Black, true
	case white > black:
		return White, true
	default:
		return entity.Empty, true
	}
}
