package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connect4/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in YAML configuration.

Save it as ~/.connect4/configs/connect4.yaml or ./configs/connect4.yaml
and edit it to change board sizes, search depths or the starting
difficulty, or pass it to play with --config.

Examples:
  connect4 config > ~/.connect4/configs/connect4.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stdout.Write(config.GetDefaultYAML()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}
