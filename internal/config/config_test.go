package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Values from file", func(t *testing.T) {
		// Given: a full config file
		path := writeConfig(t, `
log-level: debug
http-port: "8080"
game:
  kind: othello
  port: "6000"
  tick: 50ms
  max-frame-size: 128
  send-queue-size: 10
  write-timeout: 2s
redis:
  host: redis
  port: "6380"
sqlite-storage-path: /tmp/m.db
`)

		// When: it is loaded
		conf, err := Load(path)

		// Then: every value is read
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, Game{
			Kind:          "othello",
			Port:          "6000",
			Tick:          50 * time.Millisecond,
			MaxFrameSize:  128,
			SendQueueSize: 10,
			WriteTimeout:  2 * time.Second,
		}, conf.Game)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, "/tmp/m.db", conf.SQLiteStoragePath)
	})

	t.Run("Defaults", func(t *testing.T) {
		path := writeConfig(t, "log-level: info\n")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "tictactoe", conf.Game.Kind)
		assert.Equal(t, "55555", conf.Game.Port)
		assert.Equal(t, 100*time.Millisecond, conf.Game.Tick)
		assert.Equal(t, 256, conf.Game.MaxFrameSize)
		assert.Equal(t, 50, conf.Game.SendQueueSize)
		assert.Equal(t, 5*time.Second, conf.Game.WriteTimeout)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Environment overrides file", func(t *testing.T) {
		t.Setenv("GAME_PORT", "7000")
		path := writeConfig(t, "game:\n  port: \"6000\"\n")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "7000", conf.Game.Port)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))

		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "nope.yml")) })
	})

	t.Run("Environment overrides game limits", func(t *testing.T) {
		t.Setenv("GAME_TICK", "20ms")
		t.Setenv("GAME_SEND_QUEUE_SIZE", "8")
		path := writeConfig(t, "game:\n  tick: 50ms\n")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 20*time.Millisecond, conf.Game.Tick)
		assert.Equal(t, 8, conf.Game.SendQueueSize)
	})

	t.Run("Non-positive game limits", func(t *testing.T) {
		tests := map[string]struct {
			content string
			env     map[string]string
		}{
			"negative tick":            {content: "game:\n  tick: -1s\n"},
			"zero tick":                {content: "log-level: info\n", env: map[string]string{"GAME_TICK": "0s"}},
			"negative max frame size":  {content: "game:\n  max-frame-size: -5\n"},
			"zero max frame size":      {content: "log-level: info\n", env: map[string]string{"GAME_MAX_FRAME_SIZE": "0"}},
			"negative send queue size": {content: "game:\n  send-queue-size: -1\n"},
			"negative write timeout":   {content: "game:\n  write-timeout: -2s\n"},
		}

		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				// Given: a config with a limit that is not positive
				for key, value := range tt.env {
					t.Setenv(key, value)
				}
				path := writeConfig(t, tt.content)

				// When: it is loaded
				conf, err := Load(path)

				// Then: it is rejected
				require.ErrorIs(t, err, ErrInvalidConfig)
				assert.Nil(t, conf)
			})
		}
	})
}
