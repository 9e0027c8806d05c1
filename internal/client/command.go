package client

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/boardnet/internal/protocol"
)

var (
	ErrQuit           = errors.New("quit")
	ErrUnknownCommand = errors.New("unknown command")
)

const Help = "commands: <row> <col> to move, x or o to pick a symbol, new for a new game, q to quit"

// ParseCommand - turns a line typed by the player into an input frame.
func ParseCommand(line string) ([]byte, error) {
	fields := strings.Fields(strings.ToLower(line))

	switch {
	case len(fields) == 0:
		return nil, ErrUnknownCommand
	case len(fields) == 1 && (fields[0] == "q" || fields[0] == "quit"):
		return nil, ErrQuit
	case len(fields) == 1 && fields[0] == "x":
		return protocol.EncodeInput("X"), nil
	case len(fields) == 1 && fields[0] == "o":
		return protocol.EncodeInput("O"), nil
	case len(fields) == 1 && fields[0] == "new":
		return protocol.EncodeInput(protocol.TokenNewGame), nil
	case len(fields) == 2:
		row, rowErr := strconv.Atoi(fields[0])
		col, colErr := strconv.Atoi(fields[1])
		if rowErr != nil || colErr != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
		}

		return protocol.EncodeInput(protocol.CursorToken(row, col), protocol.TokenPress, protocol.TokenRelease), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
	}
}
