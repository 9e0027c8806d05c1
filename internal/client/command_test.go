package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	t.Run("Move", func(t *testing.T) {
		frame, err := ParseCommand(" 1   2 ")

		require.NoError(t, err)
		assert.Equal(t, "INPUT,1:2,LEFT_DOWN,LEFT_UP\n", string(frame))
	})

	t.Run("Symbols and new game", func(t *testing.T) {
		for line, want := range map[string]string{
			"x":   "INPUT,X\n",
			"O":   "INPUT,O\n",
			"new": "INPUT,NEW_GAME\n",
		} {
			frame, err := ParseCommand(line)

			require.NoError(t, err, line)
			assert.Equal(t, want, string(frame), line)
		}
	})

	t.Run("Quit", func(t *testing.T) {
		_, err := ParseCommand("q")
		assert.ErrorIs(t, err, ErrQuit)

		_, err = ParseCommand("QUIT")
		assert.ErrorIs(t, err, ErrQuit)
	})

	t.Run("Unknown", func(t *testing.T) {
		for _, line := range []string{"", "hello", "1", "a b", "1 2 3"} {
			_, err := ParseCommand(line)

			assert.ErrorIs(t, err, ErrUnknownCommand, line)
		}
	})
}
