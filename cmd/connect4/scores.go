package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connect4/internal/registry"
	"github.com/vovakirdan/tui-connect4/internal/storage"
)

var flagResetScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show your record against the computer",
	Long: `Display wins, losses and draws against the computer, broken down by
difficulty. Without a board, every board that has been played is shown.

Examples:
  connect4 scores
  connect4 scores connect4
  connect4 scores connect4_large --reset`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagResetScores, "reset", false, "Clear the record of the given board")
}

func runScores(cmd *cobra.Command, args []string) {
	if len(args) == 0 && flagResetScores {
		fmt.Fprintln(os.Stderr, "Error: --reset needs a board")
		os.Exit(1)
	}

	gameID := ""
	title := "All boards"
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'connect4 list' to see available boards.")
			os.Exit(1)
		}
		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			os.Exit(1)
		}
		title = game.Title()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}

	if flagResetScores {
		err := store.ClearResults(gameID)
		store.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Record cleared - %s\n", title)
		return
	}

	var tallies []storage.Tally
	if gameID == "" {
		tallies, err = store.AllTallies()
	} else {
		tallies, err = store.Tallies(gameID)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Printf("Record - %s\n", title)
	fmt.Println()

	if len(tallies) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Run 'connect4 play connect4' to start your record!")
		return
	}

	fmt.Printf("  %-14s  %-10s  %5s  %6s  %5s  %6s  %s\n", "Board", "Difficulty", "Wins", "Losses", "Draws", "Win %", "Last played")
	fmt.Printf("  %-14s  %-10s  %5s  %6s  %5s  %6s  %s\n", "-----", "----------", "----", "------", "-----", "-----", "-----------")

	var total storage.Tally
	for _, t := range tallies {
		fmt.Printf("  %-14s  %-10s  %5d  %6d  %5d  %5.0f%%  %s\n",
			t.GameID, t.Difficulty, t.Wins, t.Losses, t.Draws, t.WinRate()*100, t.LastPlayed.Format("2006-01-02 15:04"))
		total.Wins += t.Wins
		total.Losses += t.Losses
		total.Draws += t.Draws
	}

	fmt.Println()
	fmt.Printf("Overall: %d played, %d won (%.0f%%)\n", total.Played(), total.Wins, total.WinRate()*100)
}
