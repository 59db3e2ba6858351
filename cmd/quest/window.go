package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jerrys-quest/internal/config"
	"github.com/vovakirdan/jerrys-quest/internal/platform/gfx"
	"github.com/vovakirdan/jerrys-quest/internal/registry"
)

var (
	flagScale float64
	flagWatch bool
)

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play. The variant defaults to "quest".

Controls:
  Left/A, Right/D  - Run
  Space/Up/W       - Jump (also starts the game)
  R                - Restart (after game over or win)
  P/Esc            - Pause
  Q                - Quit

With --watch, edits to the configuration file are validated and applied
at the next restart. Invalid edits are logged and ignored.

Examples:
  quest window
  quest window coins --scale 2
  quest window --config ./configs/quest.yaml --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Initial window scale")
	windowCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
}

func runWindow(_ *cobra.Command, args []string) error {
	logger := newLogger(os.Stderr, "quest")
	cfg, path := loadConfig(logger)

	id := gameArg(args)
	game, err := registry.Create(id, cfg)
	if err != nil {
		return err
	}

	opts := gfx.Options{
		Scale:  flagScale,
		Logger: logger,
	}
	if flagWatch {
		if path == "embedded" {
			logger.Warn("no config file to watch; pass --config")
		} else {
			w, err := config.NewWatcher(path)
			if err != nil {
				return fmt.Errorf("watch config: %w", err)
			}
			defer w.Close()
			opts.Watcher = w
			logger.Info("watching config", "path", w.Path())
		}
	}

	logger.Info("starting", "game", id, "seed", flagSeed, "fps", flagFPS)
	if err := gfx.Run(game, runtimeConfig(cfg), opts); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}
