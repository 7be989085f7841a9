package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/games/connect4"
	"github.com/vovakirdan/tui-connect4/internal/platform/tui"
	"github.com/vovakirdan/tui-connect4/internal/registry"
	"github.com/vovakirdan/tui-connect4/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <board>",
	Short: "Play a game",
	Long: `Start a game against the computer on the specified board.
You always move first.

Controls:
  Left/Right, h/l  - Move the drop cursor
  Space/Enter      - Drop a piece
  1-9              - Drop into that column
  Mouse click      - Drop into the clicked column
  Tab              - Cycle difficulty
  R                - New round
  Esc/B            - Back
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - The computer plays random legal moves
  medium - The computer searches 3 moves ahead
  hard   - The computer searches 5 moves ahead

Examples:
  connect4 play connect4
  connect4 play connect4 --difficulty easy
  connect4 play connect4_large --difficulty hard
  connect4 play connect4 --config ./my-connect4.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard")
}

// terminalConfig builds the runtime config from the terminal size and the
// global flags.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if the board exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'connect4 list' to see available boards.")
		os.Exit(1)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagConfig != "" {
		if _, err := config.LoadConnect4(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	logger, closeLog := newLogger(true)
	defer closeLog()

	// Set config path and difficulty before creation
	connect4.SetConfigPath(flagConfig)
	connect4.SetDifficultyPreset(preset)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open results storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	_, runErr := tui.Run(game, store, logger, terminalConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
