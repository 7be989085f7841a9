package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-connect4/internal/games/connect4"
	"github.com/vovakirdan/tui-connect4/internal/storage"
)

func TestTallyRowsAddsTotal(t *testing.T) {
	played := time.Date(2024, 3, 9, 18, 30, 0, 0, time.UTC)
	rows := tallyRows([]storage.Tally{
		{Difficulty: "easy", Wins: 3, Losses: 1},
		{Difficulty: "hard", Wins: 1, Losses: 2, Draws: 1, LastPlayed: played},
	})

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0][0] != "easy" || rows[0][4] != "75%" || rows[0][5] != "-" {
		t.Errorf("easy row = %v", rows[0])
	}
	if rows[1][5] != "Mar 09 18:30" {
		t.Errorf("hard last played = %q", rows[1][5])
	}

	total := rows[2]
	if total[0] != "total" || total[1] != "4" || total[2] != "3" || total[3] != "1" {
		t.Errorf("total row = %v", total)
	}
	if total[4] != "50%" || total[5] != "Mar 09 18:30" {
		t.Errorf("total rate/last = %q/%q", total[4], total[5])
	}
}

func TestTallyRowsEmpty(t *testing.T) {
	if rows := tallyRows(nil); rows != nil {
		t.Errorf("tallyRows(nil) = %v, want nil", rows)
	}
}

func TestScoreboardCyclesBoards(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	if err := store.RecordResult("connect4_large", "medium", storage.OutcomeWin); err != nil {
		t.Fatalf("RecordResult() failed: %v", err)
	}

	m := NewScoreboardModel(store, 80, 24)
	if len(m.games) < 2 {
		t.Fatalf("expected both boards registered, got %v", m.games)
	}
	if m.games[0].ID != "connect4" || len(m.tallies) != 0 {
		t.Fatalf("first board = %s with %d tallies, want connect4 with none", m.games[0].ID, len(m.tallies))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.games[m.gameCursor].ID != "connect4_large" {
		t.Fatalf("tab moved to %s, want connect4_large", m.games[m.gameCursor].ID)
	}
	if len(m.tallies) != 1 || m.tallies[0].Wins != 1 {
		t.Errorf("connect4_large tallies = %+v, want one win", m.tallies)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.gameCursor != 0 {
		t.Errorf("shift+tab cursor = %d, want 0", m.gameCursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back to the menu")
	}
}

func TestMenuSelectsBoard(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.(MenuModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	menu := next.(MenuModel)

	if cmd == nil || menu.Selected() == nil {
		t.Fatal("enter should select a board and quit the menu")
	}
	if menu.Selected().GameID != "connect4_large" {
		t.Errorf("selected %s, want connect4_large", menu.Selected().GameID)
	}
}

func TestDifficultyModelSelection(t *testing.T) {
	m := NewDifficultyModel("Connect Four", connect4.DefaultDepths, connect4.Medium, 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.(DifficultyModel).Update(tea.KeyMsg{Type: tea.KeyEnter})

	d, ok := next.(DifficultyModel).Selected()
	if !ok || d.String() != "hard" {
		t.Errorf("Selected() = %v, %v; want hard, true", d, ok)
	}

	back, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := back.(DifficultyModel).Selected(); ok || !back.(DifficultyModel).WantsBack() {
		t.Error("esc should go back without a selection")
	}
}
