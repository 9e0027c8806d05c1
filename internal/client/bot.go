package client

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/boardnet/internal/entity"
	"github.com/rocketscienceinc/boardnet/internal/protocol"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// Bot - plays a random empty cell whenever it is its turn.
type Bot struct {
	rng *rand.Rand
}

func NewBot(seed uint64) *Bot {
	return &Bot{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), //nolint: gosec // it's ok
	}
}

// MakeTurn - click frame for a random empty cell.
func (that *Bot) MakeTurn(data protocol.GameData) ([]byte, error) {
	board, err := parseBoard(data.Board)
	if err != nil {
		return nil, fmt.Errorf("bot failed to read board: %w", err)
	}

	availableCells := make([]int, 0, board.Len())
	for i := range board.Len() {
		if board.AtIndex(i) == entity.Empty {
			availableCells = append(availableCells, i)
		}
	}

	if len(availableCells) == 0 {
		return nil, ErrNoAvailableMoves
	}

	chosenCell := availableCells[that.rng.IntN(len(availableCells))]
	row, col := chosenCell/board.Size(), chosenCell%board.Size()

	return protocol.EncodeInput(protocol.CursorToken(row, col), protocol.TokenPress, protocol.TokenRelease), nil
}

func myTurn(data protocol.GameData) bool {
	return !data.Finished && data.XTurn == data.YouAreX
}

// retryFrames - a click is sent again when the board has not changed after this many frames.
// The host ignores clicks until an opponent is seated, and the frame does not carry that status.
const retryFrames = 5

// answer - the state the bot last clicked on.
type answer struct {
	board   string
	ordinal int
	frames  int
}

func (that *answer) due(data protocol.GameData) bool {
	if !myTurn(data) {
		return false
	}

	if data.Board != that.board || data.Ordinal != that.ordinal {
		return true
	}

	that.frames++

	return that.frames >= retryFrames
}

func (that *answer) sent(data protocol.GameData) {
	that.board, that.ordinal, that.frames = data.Board, data.Ordinal, 0
}

// PlayBot - draws every changed update and answers when it is the bot's turn.
func PlayBot(ctx context.Context, peer *Client, bot *Bot, renderer *Renderer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	updates := make(chan protocol.GameData)
	readErr := make(chan error, 1)
	go func() {
		readErr <- peer.ReadLoop(ctx, updates)
	}()

	var (
		last     protocol.GameData
		answered answer
	)
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			return err
		case data := <-updates:
			if data != last {
				renderer.Draw(data)
				last = data
			}

			if !answered.due(data) {
				continue
			}

			frame, err := bot.MakeTurn(data)
			if err != nil {
				continue
			}

			if err = peer.Send(frame); err != nil {
				return err
			}
			answered.sent(data)
		}
	}
}
