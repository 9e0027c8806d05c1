package protocol

import (
	"strconv"
	"strings"

	"github.com/rocketscienceinc/boardnet/internal/entity"
)

type CommandKind int

const (
	CommandPress CommandKind = iota + 1
	CommandRelease
	CommandCursor
	CommandSymbol
	CommandNewGame
)

func (that CommandKind) String() string {
	switch that {
	case CommandPress:
		return "press"
	case CommandRelease:
		return "release"
	case CommandCursor:
		return "cursor"
	case CommandSymbol:
		return "symbol"
	case CommandNewGame:
		return "new_game"
	default:
		return "unknown"
	}
}

// Command is one input token decoded from a peer frame.
type Command struct {
	Kind   CommandKind
	Row    int
	Col    int
	Symbol entity.Cell
}

// ParseInput - decodes the tokens after the first one. Tokens that match nothing are dropped.
func ParseInput(frame string) []Command {
	tokens := split(frame)
	if len(tokens) < 2 {
		return nil
	}

	commands := make([]Command, 0, len(tokens)-1)
	for _, token := range tokens[1:] {
		if command, ok := parseToken(strings.TrimSpace(token)); ok {
			commands = append(commands, command)
		}
	}

	return commands
}

func parseToken(token string) (Command, bool) {
	switch {
	case token == "X":
		return Command{Kind: CommandSymbol, Symbol: entity.X}, true
	case token == "O":
		return Command{Kind: CommandSymbol, Symbol: entity.O}, true
	case token == TokenNewGame:
		return Command{Kind: CommandNewGame}, true
	case strings.Contains(token, pressSuffix):
		return Command{Kind: CommandPress}, true
	case strings.Contains(token, releaseSuffix):
		return Command{Kind: CommandRelease}, true
	}

	row, col, ok := strings.Cut(token, ":")
	if !ok {
		return Command{}, false
	}

	r, err := strconv.Atoi(row)
	if err != nil {
		return Command{}, false
	}

	c, err := strconv.Atoi(col)
	if err != nil {
		return Command{}, false
	}

	return Command{Kind: CommandCursor, Row: r, Col: c}, true
}
