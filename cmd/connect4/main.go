// connect4 is a terminal Connect Four game against a minimax opponent.
//
// Usage:
//
//	connect4 list                 - List available boards
//	connect4 play <board>         - Play on a board
//	connect4 menu                 - Pick a board and difficulty interactively
//	connect4 scores [board]       - Show the win/loss/draw record
//	connect4 suggest [file]       - Print the computer's move for a position
//	connect4 config               - Print the default configuration
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 30)
//	--seed <value>     - Set RNG seed for reproducible games
//	--db <path>        - Set database path (default: ~/.connect4/results.db)
//	--log-file <path>  - Write logs to a file while the TUI is running
//	--verbose          - Log search details
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import the game to register its boards
	_ "github.com/vovakirdan/tui-connect4/internal/games/connect4"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "connect4",
	Short: "Connect Four - Play against the computer in your terminal",
	Long: `Connect Four is a terminal game: drop pieces into a vertical grid
and line up four before the computer does.

Available commands:
  list     - Show all available boards
  play     - Play on a specific board directly
  menu     - Interactive board and difficulty picker
  scores   - View your record against the computer
  suggest  - Ask the computer for its move in a position
  config   - Print the default configuration

Examples:
  connect4 list
  connect4 play connect4
  connect4 play connect4_large --difficulty hard
  connect4 menu
  connect4 scores connect4`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.connect4/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Full-screen commands own the
// terminal, so they log nowhere unless --log-file is given.
// The returned function closes the log file, if any.
func newLogger(fullScreen bool) (*log.Logger, func()) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
			w = io.Discard
			break
		}
		w = f
		closeFn = func() { _ = f.Close() }
	case fullScreen:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "connect4",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn
}
