package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/rocketscienceinc/gridgame/internal/apperror"
	"github.com/rocketscienceinc/gridgame/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const topRowWin = "1 1\n2 1\n1 2\n2 2\n1 3\n"

func defaultConfig() *config.Config {
	return &config.Config{
		LogLevel: "info",
		Game: config.Game{
			Variant:     "tictactoe",
			Size:        3,
			PlayerCount: 2,
			Symbols:     []string{"X", "O"},
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunApp(t *testing.T) {
	t.Run("Plays a full game", func(t *testing.T) {
		// Given: the default configuration and a winning move list
		out := &bytes.Buffer{}

		// When: running the app
		err := RunApp(context.Background(), discardLogger(), defaultConfig(), strings.NewReader(topRowWin), out)

		// Then: the game finishes with a winner
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Player 1 wins!")
	})

	t.Run("Records stats in redis", func(t *testing.T) {
		// Given: redis enabled and one previous X win
		mr := miniredis.RunT(t)
		mr.HSet("stats:tictactoe", "games", "1", "wins:X", "1")

		conf := defaultConfig()
		conf.Redis = config.Redis{Enabled: true, Host: mr.Host(), Port: mr.Port()}
		out := &bytes.Buffer{}

		// When: X wins again
		err := RunApp(context.Background(), discardLogger(), conf, strings.NewReader(topRowWin), out)

		// Then: the tallies are updated and printed
		require.NoError(t, err)
		assert.Equal(t, "2", mr.HGet("stats:tictactoe", "wins:X"))
		assert.Contains(t, out.String(), "tictactoe: 2 games, 0 draws")
		assert.Contains(t, out.String(), "X won 2")
	})

	t.Run("Unreachable redis aborts startup", func(t *testing.T) {
		// Given: redis enabled on a server that is gone
		mr := miniredis.RunT(t)
		conf := defaultConfig()
		conf.Redis = config.Redis{Enabled: true, Host: mr.Host(), Port: mr.Port()}
		mr.Close()

		// When: running the app
		err := RunApp(context.Background(), discardLogger(), conf, strings.NewReader(topRowWin), io.Discard)

		// Then: it fails before the game starts
		require.Error(t, err)
	})

	t.Run("Unimplemented variant fails fast", func(t *testing.T) {
		conf := defaultConfig()
		conf.Game.Variant = "notakto"

		err := RunApp(context.Background(), discardLogger(), conf, strings.NewReader(topRowWin), io.Discard)

		require.ErrorIs(t, err, apperror.ErrNotImplemented)
	})

	t.Run("Miscounted symbols fail fast", func(t *testing.T) {
		conf := defaultConfig()
		conf.Game.PlayerCount = 3

		err := RunApp(context.Background(), discardLogger(), conf, strings.NewReader(topRowWin), io.Discard)

		require.ErrorIs(t, err, apperror.ErrInvalidArgument)
	})

	t.Run("Input ending early is not an error", func(t *testing.T) {
		err := RunApp(context.Background(), discardLogger(), defaultConfig(), strings.NewReader("2 2\n"), io.Discard)

		require.NoError(t, err)
	})
}
