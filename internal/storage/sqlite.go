// Package storage provides SQLite-based win/loss/draw tallies.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Outcome values, from the human player's side.
const (
	OutcomeWin  = "win"
	OutcomeLoss = "loss"
	OutcomeDraw = "draw"
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Tally is the win/loss/draw count for one game and difficulty.
type Tally struct {
	GameID     string
	Difficulty string
	Wins       int
	Losses     int
	Draws      int
	LastPlayed time.Time
}

// Played returns the number of finished rounds.
func (t Tally) Played() int {
	return t.Wins + t.Losses + t.Draws
}

// WinRate returns the share of rounds won, or 0 when none were played.
func (t Tally) WinRate() float64 {
	if t.Played() == 0 {
		return 0
	}
	return float64(t.Wins) / float64(t.Played())
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
// Only counters are kept: one row per game and difficulty.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS tallies (
			game_id TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			wins INTEGER NOT NULL DEFAULT 0,
			losses INTEGER NOT NULL DEFAULT 0,
			draws INTEGER NOT NULL DEFAULT 0,
			last_played DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (game_id, difficulty)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordResult adds one finished round to the game's tally at difficulty.
func (s *Store) RecordResult(gameID, difficulty, outcome string) error {
	var win, loss, draw int
	switch outcome {
	case OutcomeWin:
		win = 1
	case OutcomeLoss:
		loss = 1
	case OutcomeDraw:
		draw = 1
	default:
		return fmt.Errorf("storage: unknown outcome %q", outcome)
	}

	_, err := s.db.Exec(
		`INSERT INTO tallies (game_id, difficulty, wins, losses, draws, last_played)
		 VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (game_id, difficulty) DO UPDATE SET
			wins = wins + excluded.wins,
			losses = losses + excluded.losses,
			draws = draws + excluded.draws,
			last_played = excluded.last_played`,
		gameID, difficulty, win, loss, draw,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save result: %w", err)
	}
	return nil
}

const tallyColumns = `game_id, difficulty, wins, losses, draws, last_played`

// Tallies returns the per-difficulty tallies for the given game, ordered by
// difficulty name.
func (s *Store) Tallies(gameID string) ([]Tally, error) {
	return s.queryTallies(
		`SELECT `+tallyColumns+`
		 FROM tallies
		 WHERE game_id = ?
		 ORDER BY difficulty`,
		gameID,
	)
}

// AllTallies returns the tallies of every game that has been played.
func (s *Store) AllTallies() ([]Tally, error) {
	return s.queryTallies(
		`SELECT ` + tallyColumns + `
		 FROM tallies
		 ORDER BY game_id, difficulty`,
	)
}

// Total sums the tallies of a game across difficulties.
func (s *Store) Total(gameID string) (Tally, error) {
	tallies, err := s.Tallies(gameID)
	if err != nil {
		return Tally{}, err
	}

	total := Tally{GameID: gameID}
	for _, t := range tallies {
		total.Wins += t.Wins
		total.Losses += t.Losses
		total.Draws += t.Draws
		if t.LastPlayed.After(total.LastPlayed) {
			total.LastPlayed = t.LastPlayed
		}
	}
	return total, nil
}

func (s *Store) queryTallies(query string, args ...any) ([]Tally, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query tallies: %w", err)
	}
	defer rows.Close()

	var tallies []Tally
	for rows.Next() {
		var t Tally
		var lastPlayed any
		if err := rows.Scan(&t.GameID, &t.Difficulty, &t.Wins, &t.Losses, &t.Draws, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		t.LastPlayed = parseTime(lastPlayed)
		tallies = append(tallies, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return tallies, nil
}

// ClearResults resets the tallies of the given game.
func (s *Store) ClearResults(gameID string) error {
	_, err := s.db.Exec("DELETE FROM tallies WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
			if parsed, err := time.Parse(layout, v); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
