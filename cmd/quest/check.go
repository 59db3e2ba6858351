package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jerrys-quest/internal/config"
)

var flagDump bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration",
	Long: `Load the configuration the game would use, validate it and print the
bounds derived from it. Exits non-zero if the gap between platforms could
exceed the player's jump reach or the physics are invalid.

Examples:
  quest check
  quest check --config ./configs/quest.yaml
  quest check --dump > my-quest.yaml`,
	Run: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&flagDump, "dump", false, "Print the effective configuration as YAML")
}

func runCheck(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "quest")
	cfg, path := loadConfig(logger)

	if flagDump {
		// The embedded file keeps its comments
		if path == "embedded" {
			fmt.Print(string(config.DefaultYAML()))
			return
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			logger.Fatal("cannot encode config", "error", err)
		}
		fmt.Print(string(data))
		return
	}

	lo, hi := cfg.GapRange()
	s := cfg.Spawner
	fmt.Printf("Config:            %s\n", path)
	fmt.Printf("Max jump distance: %.1f px\n", cfg.MaxJumpDistance())
	fmt.Printf("Platform gap:      %.1f - %.1f px\n", lo, hi)
	fmt.Printf("Platform height:   %.0f - %.0f px (step %.0f)\n", s.MinY, s.MaxY, s.MaxStep)
	fmt.Printf("Coyote time:       %.2f s\n", cfg.Coyote.TimeMax)
	fmt.Println("OK")
}
