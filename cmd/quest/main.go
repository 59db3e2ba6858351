// quest runs Jerry's Quest, a side-scrolling platformer, in the terminal,
// in a desktop window or over ssh.
//
// Usage:
//
//	quest list              - List available game variants
//	quest play [variant]    - Play in the terminal
//	quest window [variant]  - Play in a desktop window
//	quest serve             - Start SSH server for remote play
//	quest check             - Validate the configuration and print derived bounds
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a specific quest.yaml
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/jerrys-quest/internal/config"
	"github.com/vovakirdan/jerrys-quest/internal/core"

	// Import the game to register its variants
	_ "github.com/vovakirdan/jerrys-quest/internal/quest"
)

const defaultGame = "quest"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quest",
	Short: "Jerry's Quest - a side-scrolling platformer",
	Long: `Jerry's Quest is a side-scrolling platformer. Run, jump across
procedurally placed platforms and collect coins before you fall.

Available commands:
  list     - Show the game variants
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  check    - Validate the configuration

Examples:
  quest play
  quest play coins
  quest window --scale 1.5 --watch
  quest serve --ssh :2222
  quest check --config ./configs/quest.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to quest.yaml (default: search ~/.quest/configs, ./configs)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
}

// newLogger builds the command logger writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadConfig loads and validates the game configuration. An invalid
// configuration is fatal: the game must not start with unreachable gaps.
func loadConfig(logger *log.Logger) (config.QuestConfig, string) {
	cfg, path, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}
	if path == "" {
		path = "embedded"
	}
	if err := config.Validate(cfg); err != nil {
		logger.Fatal("invalid config", "path", path, "error", err)
	}
	logger.Debug("config loaded", "path", path)
	return cfg, path
}

// runtimeConfig builds the per-session runtime settings.
func runtimeConfig(cfg config.QuestConfig) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.ScreenW = int(cfg.World.ScreenWidth)
	rc.ScreenH = int(cfg.World.ScreenHeight)
	rc.Seed = flagSeed
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}
	return rc
}

// gameArg returns the variant named on the command line, or the default.
func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultGame
}
