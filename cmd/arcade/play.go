package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/drop-arcade/internal/config"
	"github.com/vovakirdan/drop-arcade/internal/core"
	"github.com/vovakirdan/drop-arcade/internal/games/intercept"
	"github.com/vovakirdan/drop-arcade/internal/platform/tui"
	"github.com/vovakirdan/drop-arcade/internal/registry"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game in the terminal",
	Long: `Start playing the specified game in the terminal.

Any key or a mouse click leaves the splash screen.

Controls:
  Up/W       - Move up
  Down/S     - Move down
  Mouse      - Hold the left button to place the player
  P          - Pause
  Esc/Q      - Quit

Config search order:
  --config <path>, ~/.arcade/configs/<game>.yaml,
  ./configs/<game>.yaml, then the built-in defaults.

Examples:
  arcade play drop
  arcade play laser --fps 30
  arcade play drop --config ./my-drop.yaml
  arcade play drop --log-file arcade.log --log-level debug`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]
	game := mustPrepareGame(gameID)

	logger, closeLog, err := newLogger("arcade", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	runErr := tui.Run(game, tui.Options{
		Config: terminalConfig(),
		Logger: logger,
		Bell:   os.Stderr,
	})
	if runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// mustPrepareGame checks that gameID exists and its config loads, then
// creates the game. It exits the process on failure.
func mustPrepareGame(gameID string) registry.Game {
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	// Fail before the UI starts instead of silently falling back.
	if _, err := config.Load(gameID, flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	intercept.SetConfigPath(flagConfig)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	return game
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
