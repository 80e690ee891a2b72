package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults when there is no file", func(t *testing.T) {
		// Given: a path that does not exist
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading the config
		conf, err := Load(path)

		// Then: defaults are used
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "tictactoe", conf.Game.Variant)
		assert.Equal(t, 3, conf.Game.Size)
		assert.Equal(t, 2, conf.Game.PlayerCount)
		assert.Equal(t, []string{"X", "O"}, conf.Game.Symbols)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Empty(t, conf.MetricsPort)
	})

	t.Run("Reads the yml file", func(t *testing.T) {
		// Given: a config file for a four player game
		path := filepath.Join(t.TempDir(), "config.yml")
		content := `
log-level: debug
metrics-port: "2112"
game:
  variant: tictactoe
  size: 5
  player-count: 4
  symbols: [A, B, C, D]
redis:
  enabled: true
  host: redis
  port: "6380"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading the config
		conf, err := Load(path)

		// Then: file values win over defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "2112", conf.MetricsPort)
		assert.Equal(t, 5, conf.Game.Size)
		assert.Equal(t, 4, conf.Game.PlayerCount)
		assert.Equal(t, []string{"A", "B", "C", "D"}, conf.Game.Symbols)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Environment overrides", func(t *testing.T) {
		// Given: environment variables for the game
		t.Setenv("GRIDGAME_SIZE", "4")
		t.Setenv("GRIDGAME_SYMBOLS", "@,#,$")
		t.Setenv("GRIDGAME_PLAYER_COUNT", "3")

		// When: loading without a file
		conf, err := Load(filepath.Join(t.TempDir(), "none.yml"))

		// Then: env values are used
		require.NoError(t, err)
		assert.Equal(t, 4, conf.Game.Size)
		assert.Equal(t, 3, conf.Game.PlayerCount)
		assert.Equal(t, []string{"@", "#", "$"}, conf.Game.Symbols)
	})

	t.Run("Broken file", func(t *testing.T) {
		// Given: a file that is not valid yaml for the config
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("game: [oops"), 0o600))

		// When: loading the config
		_, err := Load(path)

		// Then: an error is returned and MustLoad panics
		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(path) })
	})
}
