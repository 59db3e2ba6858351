package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jerrys-quest/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeGame   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play in their terminal.

Each SSH connection runs its own game. Clients pick a variant by passing
it as the command; otherwise --game is played.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.quest/host_key

Examples:
  quest serve                           # Listen on :23234 with auto-generated key
  quest serve --ssh :2222               # Listen on port 2222
  quest serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234
  ssh localhost -p 23234 -t coins`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeGame, "game", defaultGame, "Variant played when the client names none")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "quest-ssh")
	cfg, path := loadConfig(logger)

	serverCfg := tui.DefaultSSHServerConfig()
	serverCfg.Address = flagSSHAddr
	serverCfg.HostKeyPath = flagHostKey
	serverCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	serverCfg.DefaultGame = flagServeGame
	serverCfg.Quest = cfg
	serverCfg.TickRate = flagFPS

	server, err := tui.NewSSHServer(serverCfg, logger)
	if err != nil {
		logger.Fatal("cannot create server", "error", err)
	}

	logger.Info("config", "path", path)
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("server error", "error", err)
	}
}
