package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/games/connect4"
)

var flagSuggestDifficulty string

var suggestCmd = &cobra.Command{
	Use:   "suggest [file]",
	Short: "Print the computer's move for a position",
	Long: `Read a board and print the column the computer would play as O.

The board is one line per row, top row first, using '.' for empty
cells, 'X' for your pieces and 'O' for the computer's. It is read from
the given file, or from standard input when no file is given.

Columns are numbered from 1. With --verbose the search statistics are
logged to standard error.

Examples:
  connect4 suggest position.txt
  connect4 suggest --difficulty hard < position.txt
  printf '.......\n.......\n.......\n.......\n.......\n...X...\n' | connect4 suggest`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSuggest,

	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	suggestCmd.Flags().StringVar(&flagSuggestDifficulty, "difficulty", "medium", "Difficulty: easy, medium, hard")
	suggestCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML (search depths)")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	difficulty, err := connect4.ParseDifficulty(flagSuggestDifficulty)
	if err != nil {
		return err
	}
	gameCfg, err := config.LoadConnect4(flagConfig)
	if err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open board: %w", err)
		}
		defer f.Close()
		in = f
	}
	text, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read board: %w", err)
	}
	board, err := connect4.ParseBoard(string(text))
	if err != nil {
		return err
	}

	logger, closeLog := newLogger(false)
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	depths := connect4.Depths{Medium: gameCfg.Search.MediumDepth, Hard: gameCfg.Search.HardDepth}
	selector := connect4.NewSelector(rand.New(rand.NewSource(seed)), depths)

	start := time.Now()
	dec, ok := selector.Decide(board, difficulty)
	out := cmd.OutOrStdout()
	if !ok {
		fmt.Fprintln(out, "No legal move: the board is full.")
		return nil
	}
	logger.Debug("search finished",
		"difficulty", difficulty,
		"depth", dec.Depth,
		"nodes", dec.Stats.Nodes,
		"cutoffs", dec.Stats.Cutoffs,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	fmt.Fprintf(out, "Column: %d\n", dec.Column+1)
	if len(dec.Scores) == 0 {
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-6s  %s\n", "Column", "Score")
	fmt.Fprintf(out, "  %-6s  %s\n", "------", "-----")
	for _, s := range dec.Scores {
		marker := ""
		if s.Col == dec.Column {
			marker = "  <"
		}
		fmt.Fprintf(out, "  %-6d  %d%s\n", s.Col+1, s.Score, marker)
	}
	return nil
}
