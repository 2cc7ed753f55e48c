package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/drop-arcade/internal/core"
	"github.com/vovakirdan/drop-arcade/internal/platform/window"
)

var flagMute bool

var windowCmd = &cobra.Command{
	Use:   "window <game>",
	Short: "Play a game in a desktop window",
	Long: `Open the specified game in a resizable desktop window.

Any key, click or touch leaves the splash screen.

Controls:
  Up/W         - Move up
  Down/S       - Move down
  Mouse/Touch  - Hold to place the player
  P            - Pause
  Esc/Q        - Quit

Examples:
  arcade window drop
  arcade window laser --mute
  arcade window drop --config ./my-drop.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound and music")
}

func runWindow(cmd *cobra.Command, args []string) {
	game := mustPrepareGame(args[0])

	logger, closeLog, err := newLogger("arcade-window", os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	runErr := window.Run(game, window.Options{
		Config: core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed},
		Logger: logger,
		Muted:  flagMute,
	})
	if runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
