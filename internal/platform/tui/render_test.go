package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-connect4/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "hello")
	s.DrawText(1, 1, "bye")

	if got, want := RenderScreen(s), s.String(); got != want {
		t.Errorf("RenderScreen() = %q, want %q", got, want)
	}
}

func TestRenderScreenColored(t *testing.T) {
	s := core.NewScreen(8, 3)
	s.SetColor(1, 1, '●', core.ColorRed)
	s.SetColor(2, 1, '●', core.ColorRed)
	s.SetColor(4, 1, '●', core.ColorYellow)
	s.DrawTextColor(0, 2, "win", core.ColorGreen)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("RenderScreen() produced %d lines, want 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 8 {
			t.Errorf("line %d has display width %d, want 8", i, w)
		}
	}
	if n := strings.Count(lines[1], "●"); n != 3 {
		t.Errorf("line 1 holds %d pieces, want 3", n)
	}
	if !strings.Contains(lines[2], "win") {
		t.Errorf("line 2 = %q, want it to contain %q", lines[2], "win")
	}
}
