package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/jerrys-quest/internal/platform/tui"
	"github.com/vovakirdan/jerrys-quest/internal/registry"
)

var flagLogFile string

var errNoTerminal = errors.New("play needs a terminal; try 'quest window'")

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. The variant defaults to "quest".

Controls:
  Left/A, Right/D  - Run
  Space/Up/W       - Jump (also starts the game)
  R                - Restart (after game over or win)
  P/Esc            - Pause
  ?                - Show all keys
  Q/Ctrl+C         - Quit

The terminal only reports key presses, so a direction stays held for a
moment after its last key event; keep the key down to keep running.

Examples:
  quest play
  quest play coins
  quest play --seed 42 --log-file quest.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal is busy with the game)")
}

func runPlay(_ *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}

	cfg, _ := loadConfig(log.Default())

	id := gameArg(args)
	game, err := registry.Create(id, cfg)
	if err != nil {
		return err
	}

	// The game owns the terminal, so logs go to a file or nowhere
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := newLogger(out, "quest")

	logger.Info("starting", "game", id, "seed", flagSeed, "fps", flagFPS)
	if err := tui.Run(game, runtimeConfig(cfg), logger); err != nil {
		logger.Error("game error", "error", err)
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}
