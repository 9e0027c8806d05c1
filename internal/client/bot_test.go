package client

import (
	"bufio"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/boardnet/internal/protocol"
)

func TestBot_MakeTurn(t *testing.T) {
	bot := NewBot(1)

	t.Run("Only empty cell", func(t *testing.T) {
		frame, err := bot.MakeTurn(protocol.GameData{Board: "XOXOXOOXE"})

		require.NoError(t, err)
		assert.Equal(t, "INPUT,2:2,LEFT_DOWN,LEFT_UP\n", string(frame))
	})

	t.Run("Always an empty cell", func(t *testing.T) {
		for range 50 {
			frame, err := bot.MakeTurn(protocol.GameData{Board: "XEOEXEOEX"})
			require.NoError(t, err)

			commands := protocol.ParseInput(string(frame))
			require.Len(t, commands, 3)
			assert.Equal(t, 1, (commands[0].Row+commands[0].Col)%2, "cell %d:%d is taken", commands[0].Row, commands[0].Col)
		}
	})

	t.Run("Full board", func(t *testing.T) {
		_, err := bot.MakeTurn(protocol.GameData{Board: "XOXXOOOXX"})

		assert.ErrorIs(t, err, ErrNoAvailableMoves)
	})
}

func TestPlayBot(t *testing.T) {
	// Given: a bot playing O
	peer, host := newPipeClient(t)
	hostReader := bufio.NewReader(host)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- PlayBot(ctx, peer, NewBot(7), newPlainRenderer(io.Discard))
	}()

	// When: it is X's turn, then O's turn on a board with one free cell
	_, err := host.Write(protocol.GameData{Board: "XOXOXOOXE", XTurn: true, Ordinal: 2}.Encode())
	require.NoError(t, err)
	_, err = host.Write(protocol.GameData{Board: "XOXOXOOXE", XTurn: false, Ordinal: 2}.Encode())
	require.NoError(t, err)

	// Then: the bot answers only on its own turn
	frame, err := hostReader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "INPUT,2:2,LEFT_DOWN,LEFT_UP\n", frame)

	cancel()
	require.NoError(t, <-done)
}

func TestPlayBot_SeatedFirst(t *testing.T) {
	// Given: a bot seated first as X while the host still waits for an opponent
	peer, host := newPipeClient(t)
	hostReader := bufio.NewReader(host)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- PlayBot(ctx, peer, NewBot(3), newPlainRenderer(io.Discard))
	}()

	waiting := protocol.GameData{Board: "EEEEEEEEE", XTurn: true, YouAreX: true, Ordinal: 1}

	// When: the host ignores the first click and keeps sending the same board
	_, err := host.Write(waiting.Encode())
	require.NoError(t, err)
	_, err = hostReader.ReadString('\n')
	require.NoError(t, err)

	for range retryFrames {
		_, err = host.Write(waiting.Encode())
		require.NoError(t, err)
	}

	// Then: the bot clicks again
	frame, err := hostReader.ReadString('\n')
	require.NoError(t, err)
	assert.Len(t, protocol.ParseInput(frame), 3)

	cancel()
	require.NoError(t, <-done)
}

func TestAnswer_Due(t *testing.T) {
	data := protocol.GameData{Board: "EEEEXEEEE", XTurn: false, YouAreX: false, Ordinal: 2}

	t.Run("Not its turn", func(t *testing.T) {
		var answered answer

		assert.False(t, answered.due(protocol.GameData{Board: "EEEEXEEEE", XTurn: true, Ordinal: 2}))
	})

	t.Run("New board", func(t *testing.T) {
		var answered answer

		assert.True(t, answered.due(data))
	})

	t.Run("Same board waits before clicking again", func(t *testing.T) {
		var answered answer
		answered.sent(data)

		for range retryFrames - 1 {
			assert.False(t, answered.due(data))
		}
		assert.True(t, answered.due(data))
	})

	t.Run("Seat moved after the opponent left", func(t *testing.T) {
		var answered answer
		answered.sent(data)

		moved := data
		moved.Ordinal = 1

		assert.True(t, answered.due(moved))
	})
}
