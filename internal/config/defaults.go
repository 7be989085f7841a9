package config

import (
	_ "embed"
)

//go:embed defaults/connect4.yaml
var defaultConnect4YAML []byte

// DefaultConnect4Config returns the default Connect Four configuration.
func DefaultConnect4Config() Connect4Config {
	return Connect4Config{
		Board: BoardConfig{
			Rows: 6,
			Cols: 7,
		},
		LargeBoard: BoardConfig{
			Rows: 7,
			Cols: 9,
		},
		Search: SearchConfig{
			MediumDepth: 3,
			HardDepth:   5,
		},
		Difficulty: DifficultyMedium,
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultConnect4YAML
}
