package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
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
	t.Run("Reads the yml file", func(t *testing.T) {
		// Given: a config file with every section
		path := writeConfig(t, `
log-level: debug
log-file: game.log
mode: pvp
storage: redis
redis:
  host: cache
  port: "6380"
  session-ttl: 1h
bot:
  mark: X
  thinking-delay: 250ms
  faster-wins: true
turn:
  timeout: -1s
tracing:
  enabled: true
  file: out.json
`)

		// When: loading it
		conf, err := Load(path)

		// Then: every value is taken from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "game.log", conf.LogFile)
		assert.Equal(t, "pvp", conf.Mode)
		assert.Equal(t, StorageRedis, conf.Storage)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, time.Hour, conf.Redis.SessionTTL)
		assert.Equal(t, "X", conf.Bot.Mark)
		assert.Equal(t, 250*time.Millisecond, conf.Bot.ThinkingDelay)
		assert.True(t, conf.Bot.FasterWins)
		assert.Equal(t, -time.Second, conf.Turn.Timeout)
		assert.True(t, conf.Tracing.Enabled)
		assert.Equal(t, "out.json", conf.Tracing.File)
	})

	t.Run("Missing file falls back to defaults", func(t *testing.T) {
		// When: loading a path that does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: defaults are used
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "bot", conf.Mode)
		assert.Equal(t, StorageMemory, conf.Storage)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, "O", conf.Bot.Mark)
		assert.Equal(t, 600*time.Millisecond, conf.Bot.ThinkingDelay)
		assert.Equal(t, 30*time.Second, conf.Turn.Timeout)
		assert.False(t, conf.Tracing.Enabled)
	})

	t.Run("Env overrides the file", func(t *testing.T) {
		t.Setenv("BOT_MARK", "X")

		conf, err := Load(writeConfig(t, "bot:\n  mark: O\n"))

		require.NoError(t, err)
		assert.Equal(t, "X", conf.Bot.Mark)
	})

	t.Run("Invalid values are rejected", func(t *testing.T) {
		// Given: a file with an unknown mode
		path := writeConfig(t, "mode: online\n")

		// When: loading it
		_, err := Load(path)

		// Then: the validator reports the field
		var validationErrs validator.ValidationErrors
		require.ErrorAs(t, err, &validationErrs)
		assert.Equal(t, "Mode", validationErrs[0].Field())
	})

	t.Run("MustLoad panics on a broken file", func(t *testing.T) {
		path := writeConfig(t, "log-level: [")

		assert.Panics(t, func() {
			MustLoad(path)
		})
	})
}
