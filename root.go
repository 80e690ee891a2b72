package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	app "github.com/rocketscienceinc/gridgame/internal"
	"github.com/rocketscienceinc/gridgame/internal/config"
	"github.com/rocketscienceinc/gridgame/internal/variant"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const defaultConfigPath = "./config.yml"

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "gridgame",
		Short:        "Play turn-based grid games in the terminal",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.Load(configPath)
			if err != nil {
				return err
			}

			if err = applyFlags(cmd.Flags(), conf); err != nil {
				return err
			}

			logger := initLogger(conf, cmd.ErrOrStderr())

			if err = app.RunApp(cmd.Context(), logger, conf, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", defaultConfigPath, "path to the yml config file")
	flags.IntP("size", "n", 3, "grid size")
	flags.IntP("player_count", "p", 2, "number of players")
	flags.String("variant", variant.TicTacToe, "game variant: "+strings.Join(variant.Names(), ", "))
	flags.StringSliceP("symbols", "s", []string{"X", "O"}, "comma separated player symbols, one per player")

	return cmd
}

// applyFlags - overrides configuration with the flags set on the command line.
func applyFlags(flags *pflag.FlagSet, conf *config.Config) error {
	var err error

	if flags.Changed("size") {
		if conf.Game.Size, err = flags.GetInt("size"); err != nil {
			return err
		}
	}

	if flags.Changed("player_count") {
		if conf.Game.PlayerCount, err = flags.GetInt("player_count"); err != nil {
			return err
		}
	}

	if flags.Changed("variant") {
		if conf.Game.Variant, err = flags.GetString("variant"); err != nil {
			return err
		}
	}

	if flags.Changed("symbols") {
		if conf.Game.Symbols, err = flags.GetStringSlice("symbols"); err != nil {
			return err
		}
	}

	return nil
}

// initialize logger.
func initLogger(conf *config.Config, w io.Writer) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
