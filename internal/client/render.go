package client

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/boardnet/internal/entity"
	"github.com/rocketscienceinc/boardnet/internal/othello"
	"github.com/rocketscienceinc/boardnet/internal/protocol"
	"github.com/rocketscienceinc/boardnet/internal/tictactoe"
)

// Renderer - draws GAME_DATA updates on a terminal.
type Renderer struct {
	out *termenv.Output

	xColor termenv.Color
	oColor termenv.Color
}

func NewRenderer(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	out := termenv.NewOutput(w, opts...)

	return &Renderer{
		out:    out,
		xColor: out.Color("1"),
		oColor: out.Color("4"),
	}
}

// Draw - clears the screen and prints the update.
func (that *Renderer) Draw(data protocol.GameData) {
	that.out.ClearScreen()
	_, _ = fmt.Fprint(that.out, that.Render(data))
}

func (that *Renderer) Render(data protocol.GameData) string {
	board, err := parseBoard(data.Board)
	if err != nil {
		return fmt.Sprintf("unreadable board %q: %v\n", data.Board, err)
	}

	var sb strings.Builder

	sb.WriteString("   ")
	for col := range board.Size() {
		fmt.Fprintf(&sb, " %d", col)
	}
	sb.WriteByte('\n')

	for row := range board.Size() {
		fmt.Fprintf(&sb, " %d ", row)
		for col := range board.Size() {
			sb.WriteByte(' ')
			sb.WriteString(that.cell(board.At(row, col)))
		}
		sb.WriteByte('\n')
	}

	if board.Size() == othello.Size {
		black, white := othello.Count(board)
		fmt.Fprintf(&sb, "black (X) %d  white (O) %d\n", black, white)
	}

	me := data.SymbolFor()
	fmt.Fprintf(&sb, "You are %s (player %d). %s\n", that.cell(me), data.Ordinal, that.status(data, board, me))

	return sb.String()
}

func (that *Renderer) status(data protocol.GameData, board *entity.Board, me entity.Cell) string {
	if !data.Finished {
		turn := entity.O
		if data.XTurn {
			turn = entity.X
		}

		if turn == me {
			return that.out.String("Your turn.").Bold().String()
		}

		return "Waiting for " + turn.String() + "."
	}

	switch winner := outcome(board); winner {
	case entity.Empty:
		return "Draw. Type new to play again."
	case me:
		return that.out.String("You win!").Bold().String() + " Type new to play again."
	default:
		return winner.String() + " wins. Type new to play again."
	}
}

func (that *Renderer) cell(cell entity.Cell) string {
	switch cell {
	case entity.X:
		return that.out.String("X").Foreground(that.xColor).Bold().String()
	case entity.O:
		return that.out.String("O").Foreground(that.oColor).Bold().String()
	default:
		return "."
	}
}

// parseBoard - the board size follows from the length of the serialized board.
func parseBoard(s string) (*entity.Board, error) {
	size := int(math.Sqrt(float64(len(s))))

	return entity.ParseBoard(size, s)
}

func outcome(board *entity.Board) entity.Cell {
	if board.Size() == othello.Size {
		winner, _ := othello.CheckFinished(board)
		return winner
	}

	winner, _ := tictactoe.CheckFinished(board)
	return winner
}
