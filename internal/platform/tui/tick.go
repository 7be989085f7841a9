// Package tui provides the Bubble Tea integration for Connect Four.
// It handles the terminal UI loop, input mapping, background computer
// moves and result recording.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-connect4/internal/registry"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// MoveMsg carries a finished computer move back to the UI goroutine.
type MoveMsg struct {
	Move    registry.Move
	Elapsed time.Duration
}

// planCmd runs a planned computer move off the UI goroutine.
func planCmd(plan func() registry.Move) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		m := plan()
		return MoveMsg{Move: m, Elapsed: time.Since(start)}
	}
}
