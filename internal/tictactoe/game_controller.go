package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/boardnet/internal/apperror"
	"github.com/rocketscienceinc/boardnet/internal/entity"
)

const Size = 3

// WinCombos - the 8 lines of the board as row-major indexes: 3 rows, 3 columns, 2 diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type GameController struct{}

func NewGameController() *GameController {
	return &GameController{}
}

func (that *GameController) Kind() string {
	return entity.KindTicTacToe
}

func (that *GameController) NewGame(id string) *entity.Game {
	return entity.NewGame(id, entity.KindTicTacToe, Size)
}

// MakeTurn - validates and applies a move, then evaluates the outcome.
func (that *GameController) MakeTurn(game *entity.Game, mark entity.Cell, row, col int) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	if err := validateMove(game, mark, row, col); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	if err := game.Board.Place(row, col, mark); err != nil {
		return fmt.Errorf("failed to place mark: %w", err)
	}
	game.Moves++

	updateGameStatus(game, mark)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, mark entity.Cell, row, col int) error {
	if !game.Board.Contains(row, col) {
		return apperror.ErrInvalidCell
	}

	if game.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if game.Board.At(row, col) != entity.Empty {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(game *entity.Game, mark entity.Cell) {
	if winner, finished := CheckFinished(game.Board); finished {
		game.Finish(winner)
		return
	}

	game.Turn = mark.Opponent()
}

// IsComplete - all three cells of the combo hold the same non-empty mark.
func IsComplete(board *entity.Board, combo [3]int) bool {
	a, b, c := board.AtIndex(combo[0]), board.AtIndex(combo[1]), board.AtIndex(combo[2])

	return a != entity.Empty && a == b && b == c
}

// CheckFinished - returns the winner of the first complete combo. With no complete combo the
// game is finished only when no cell is empty, which is a draw (winner Empty).
func CheckFinished(board *entity.Board) (entity.Cell, bool) {
	for _, combo := range WinCombos {
		if IsComplete(board, combo) {
			return board.AtIndex(combo[0]), true
		}
	}

	// the game will continue until all the squares are full
	if !board.IsFull() {
		return entity.Empty, false
	}

	return entity.Empty, true
}
