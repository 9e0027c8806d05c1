// Package protocol is the text codec spoken between the host and its peers.
//
// Every frame is one line of comma separated ASCII tokens ending with '\n'. The first token is
// the frame kind.
package protocol

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/boardnet/internal/entity"
)

const (
	TagGameData = "GAME_DATA"
	TagInput    = "INPUT"
	TagReject   = "REJECT"

	Separator = ","
	Delimiter = '\n'
)

const (
	TokenPress   = "LEFT_DOWN"
	TokenRelease = "LEFT_UP"
	TokenNewGame = "NEW_GAME"

	pressSuffix   = "_DOWN"
	releaseSuffix = "_UP"
)

const RejectFull = "full"

var (
	ErrUnexpectedTag = errors.New("unexpected frame tag")
	ErrMalformed     = errors.New("malformed frame")
)

// GameData is the per-peer state pushed on every tick.
type GameData struct {
	Board    string
	XTurn    bool
	Finished bool
	YouAreX  bool
	Ordinal  int
}

// Encode - GAME_DATA,<board>,<xTurn>,<finished>,<youAreX>,<ordinal>,
func (that GameData) Encode() []byte {
	var sb strings.Builder

	sb.WriteString(TagGameData)
	for _, field := range []string{
		that.Board,
		strconv.FormatBool(that.XTurn),
		strconv.FormatBool(that.Finished),
		strconv.FormatBool(that.YouAreX),
		strconv.Itoa(that.Ordinal),
	} {
		sb.WriteString(Separator)
		sb.WriteString(field)
	}
	sb.WriteString(Separator)
	sb.WriteByte(Delimiter)

	return []byte(sb.String())
}

// SymbolFor - peer's symbol from the youAreX flag.
func (that GameData) SymbolFor() entity.Cell {
	if that.YouAreX {
		return entity.X
	}
	return entity.O
}

func DecodeGameData(frame string) (GameData, error) {
	tokens := split(frame)
	if len(tokens) == 0 || tokens[0] != TagGameData {
		return GameData{}, ErrUnexpectedTag
	}

	// the trailing separator leaves an empty last token
	if len(tokens) > 6 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) != 6 {
		return GameData{}, fmt.Errorf("%w: %d fields", ErrMalformed, len(tokens))
	}

	var (
		data GameData
		err  error
	)

	data.Board = tokens[1]
	if data.XTurn, err = strconv.ParseBool(tokens[2]); err != nil {
		return GameData{}, fmt.Errorf("%w: turn: %w", ErrMalformed, err)
	}
	if data.Finished, err = strconv.ParseBool(tokens[3]); err != nil {
		return GameData{}, fmt.Errorf("%w: finished: %w", ErrMalformed, err)
	}
	if data.YouAreX, err = strconv.ParseBool(tokens[4]); err != nil {
		return GameData{}, fmt.Errorf("%w: symbol: %w", ErrMalformed, err)
	}
	if data.Ordinal, err = strconv.Atoi(tokens[5]); err != nil {
		return GameData{}, fmt.Errorf("%w: ordinal: %w", ErrMalformed, err)
	}

	return data, nil
}

// EncodeReject - REJECT,<reason>
func EncodeReject(reason string) []byte {
	return []byte(TagReject + Separator + reason + string(Delimiter))
}

// EncodeInput - INPUT,<token>[,<token>...]
func EncodeInput(tokens ...string) []byte {
	return []byte(TagInput + Separator + strings.Join(tokens, Separator) + string(Delimiter))
}

// CursorToken - "<row>:<col>"
func CursorToken(row, col int) string {
	return strconv.Itoa(row) + ":" + strconv.Itoa(col)
}

// Tag - kind of the frame.
func Tag(frame string) string {
	tag, _, _ := strings.Cut(strings.TrimSpace(frame), Separator)
	return tag
}

func split(frame string) []string {
	frame = strings.TrimRight(frame, "\r\n")
	if frame == "" {
		return nil
	}

	return strings.Split(frame, Separator)
}
