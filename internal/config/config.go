// Package config provides YAML-based game configuration loading and
// difficulty presets for Connect Four.
package config

import "fmt"

// Board size and search depth limits accepted by Validate.
const (
	MinBoardSize = 4
	MaxBoardSize = 12
	MaxDepth     = 8
)

// Connect4Config contains all configuration for Connect Four.
type Connect4Config struct {
	Board      BoardConfig      `yaml:"board"`
	LargeBoard BoardConfig      `yaml:"large_board"`
	Search     SearchConfig     `yaml:"search"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// SearchConfig defines the ply limits of the searching difficulties.
type SearchConfig struct {
	MediumDepth int `yaml:"medium_depth"`
	HardDepth   int `yaml:"hard_depth"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. The empty string means
// "keep the config's value" and is accepted.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyMedium, DifficultyHard:
		return DifficultyPreset(s), nil
	case "normal":
		return DifficultyMedium, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, medium or hard)", s)
	}
}

// Validate checks that dimensions and depths are playable.
func (c Connect4Config) Validate() error {
	for name, b := range map[string]BoardConfig{"board": c.Board, "large_board": c.LargeBoard} {
		if b.Rows < MinBoardSize || b.Rows > MaxBoardSize {
			return fmt.Errorf("config: %s.rows must be in [%d, %d], got %d", name, MinBoardSize, MaxBoardSize, b.Rows)
		}
		if b.Cols < MinBoardSize || b.Cols > MaxBoardSize {
			return fmt.Errorf("config: %s.cols must be in [%d, %d], got %d", name, MinBoardSize, MaxBoardSize, b.Cols)
		}
	}
	if c.Search.MediumDepth < 0 || c.Search.MediumDepth > MaxDepth {
		return fmt.Errorf("config: search.medium_depth must be in [0, %d], got %d", MaxDepth, c.Search.MediumDepth)
	}
	if c.Search.HardDepth < 0 || c.Search.HardDepth > MaxDepth {
		return fmt.Errorf("config: search.hard_depth must be in [0, %d], got %d", MaxDepth, c.Search.HardDepth)
	}
	if _, err := ParsePreset(string(c.Difficulty)); err != nil {
		return err
	}
	return nil
}

// ApplyDifficultyPreset overrides the starting difficulty when preset is set.
func ApplyDifficultyPreset(cfg *Connect4Config, preset DifficultyPreset) {
	if preset != "" {
		cfg.Difficulty = preset
	}
}
