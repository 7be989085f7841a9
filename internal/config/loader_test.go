package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConnect4("")
	if err != nil {
		t.Fatalf("LoadConnect4() failed: %v", err)
	}
	if cfg != DefaultConnect4Config() {
		t.Errorf("embedded config = %+v, want %+v", cfg, DefaultConnect4Config())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "search:\n  hard_depth: 6\ndifficulty: hard\n")

	cfg, err := LoadConnect4(path)
	if err != nil {
		t.Fatalf("LoadConnect4() failed: %v", err)
	}
	if cfg.Search.HardDepth != 6 {
		t.Errorf("HardDepth = %d, want 6", cfg.Search.HardDepth)
	}
	if cfg.Search.MediumDepth != 3 {
		t.Errorf("MediumDepth = %d, want default 3", cfg.Search.MediumDepth)
	}
	if cfg.Board.Rows != 6 || cfg.Board.Cols != 7 {
		t.Errorf("Board = %+v, want default 6x7", cfg.Board)
	}
	if cfg.Difficulty != DifficultyHard {
		t.Errorf("Difficulty = %q, want hard", cfg.Difficulty)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"malformed yaml", "board: [1, 2", "failed to parse"},
		{"board too small", "board:\n  rows: 3\n", "board.rows"},
		{"depth too large", "search:\n  medium_depth: 9\n", "medium_depth"},
		{"unknown difficulty", "difficulty: nightmare\n", "unknown difficulty"},
	}

	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			writeFile(t, path, tc.content)

			cfg, err := LoadConnect4(path)
			if err == nil {
				t.Fatalf("case %d: expected error", i)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should mention %q", err, tc.wantErr)
			}
			if cfg != DefaultConnect4Config() {
				t.Errorf("failed load should return defaults, got %+v", cfg)
			}
		})
	}

	if _, err := LoadConnect4(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".connect4", "configs", ConfigFileName), "board:\n  rows: 5\n  cols: 5\n")

	cfg, err := LoadConnect4("")
	if err != nil {
		t.Fatalf("LoadConnect4() failed: %v", err)
	}
	if cfg.Board.Rows != 5 || cfg.Board.Cols != 5 {
		t.Errorf("Board = %+v, want 5x5 from user config", cfg.Board)
	}
}

func TestInvalidUserConfigFallsBack(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".connect4", "configs", ConfigFileName), "board:\n  rows: 40\n")

	cfg, err := LoadConnect4("")
	if err != nil {
		t.Fatalf("LoadConnect4() failed: %v", err)
	}
	if cfg.Board.Rows != 6 {
		t.Errorf("invalid user config should be skipped, got rows %d", cfg.Board.Rows)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", "", false},
		{"easy", DifficultyEasy, false},
		{"medium", DifficultyMedium, false},
		{"normal", DifficultyMedium, false},
		{"hard", DifficultyHard, false},
		{"fixed", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyDifficultyPreset(t *testing.T) {
	cfg := DefaultConnect4Config()

	ApplyDifficultyPreset(&cfg, "")
	if cfg.Difficulty != DifficultyMedium {
		t.Errorf("empty preset should keep %q, got %q", DifficultyMedium, cfg.Difficulty)
	}

	ApplyDifficultyPreset(&cfg, DifficultyEasy)
	if cfg.Difficulty != DifficultyEasy {
		t.Errorf("preset should override difficulty, got %q", cfg.Difficulty)
	}
}
