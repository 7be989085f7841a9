package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/games/connect4"
	"github.com/vovakirdan/tui-connect4/internal/platform/tui"
	"github.com/vovakirdan/tui-connect4/internal/registry"
	"github.com/vovakirdan/tui-connect4/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a board and difficulty picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a board, then pick
the computer's difficulty. Leaving a game returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Results
  Esc/B        - Back
  Q            - Quit

Examples:
  connect4 menu
  connect4 menu --difficulty hard
  connect4 menu --db ./results.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Preselected difficulty: easy, medium, hard")
}

func runMenu(_ *cobra.Command, _ []string) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	gameCfg, err := config.LoadConnect4(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyDifficultyPreset(&gameCfg, preset)

	depths := connect4.Depths{Medium: gameCfg.Search.MediumDepth, Hard: gameCfg.Search.HardDepth}
	difficulty, err := connect4.ParseDifficulty(string(gameCfg.Difficulty))
	if err != nil {
		difficulty = connect4.Medium
	}

	logger, closeLog := newLogger(true)
	defer closeLog()

	// Open results storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		store = nil
	}

	cfg := terminalConfig()
	connect4.SetConfigPath(flagConfig)

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		selection, err := tui.RunDifficultySelector(game.Title(), depths, difficulty, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if selection.Quit {
			break
		}
		if !selection.Chosen {
			continue
		}
		difficulty = selection.Difficulty
		connect4.SetDifficultyPreset(config.DifficultyPreset(difficulty.String()))

		// Fresh seed for each game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, store, logger, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !backToMenu {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
