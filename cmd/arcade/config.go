package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/drop-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print a game's resolved configuration",
	Long: `Print the configuration a game would run with, after applying the
search order (--config, ~/.arcade/configs, ./configs, built-in defaults).

The output is valid YAML and can be saved as a starting point for
a custom config.

Examples:
  arcade config drop
  arcade config laser --config ./my-laser.yaml
  arcade config drop > ~/.arcade/configs/drop.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runConfig(_ *cobra.Command, args []string) {
	cfg, err := config.Load(args[0], flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
