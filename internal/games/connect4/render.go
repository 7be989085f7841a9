package connect4

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-connect4/internal/core"
)

const (
	cellWidth = 4 // Width of each cell including its left separator
	hudHeight = 5 // Title, tally, difficulty, column labels, cursor
	footer    = 2 // Blank line and status
	minWidth  = 36
)

// layout returns the board's top-left corner and outer size.
func (g *Game) layout() (x, y, w, h int) {
	w = g.board.Cols()*cellWidth + 1
	h = g.board.Rows() + 2
	x = (g.screenW - w) / 2
	y = hudHeight
	return x, y, w, h
}

func (g *Game) minScreenSize() (int, int) {
	rows, cols := DefaultRows, DefaultCols
	if g.board != nil {
		rows, cols = g.board.Rows(), g.board.Cols()
	}
	return max(cols*cellWidth+3, minWidth), hudHeight + rows + 2 + footer
}

// ColumnAt maps a screen position to a board column, for mouse input.
func (g *Game) ColumnAt(x, y int) (int, bool) {
	if g.board == nil || g.tooSmall {
		return 0, false
	}
	bx, by, bw, bh := g.layout()
	// The cursor row above the frame counts as part of the board.
	if !core.NewRect(bx+1, by-1, bw-2, bh+1).Contains(x, y) {
		return 0, false
	}
	return (x - bx - 1) / cellWidth, true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	bx, by, bw, bh := g.layout()
	g.renderHUD(dst, bx)
	g.renderBoard(dst, bx, by, bw, bh)
	g.renderStatus(dst, by+bh+1)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := g.minScreenSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d", w, h))
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, tally, difficulty and column cursor.
func (g *Game) renderHUD(dst *core.Screen, bx int) {
	dst.DrawTextCenteredColor(0, g.Title(), core.ColorCyan)
	dst.DrawTextCentered(1, fmt.Sprintf("Wins %d  Losses %d  Draws %d", g.wins, g.losses, g.draws))
	dst.DrawTextCenteredColor(2, "Difficulty: "+g.difficulty.Title(), core.ColorGray)

	for col := 0; col < g.board.Cols(); col++ {
		cx := bx + col*cellWidth + 2
		if col < 9 {
			dst.DrawTextColor(cx, 3, strconv.Itoa(col+1), core.ColorGray)
		}
		if col == g.cursor && g.phase == PhasePlayerTurn {
			dst.SetColor(cx, 4, '▼', core.ColorRed)
		}
	}
}

// renderBoard draws the frame, separators and pieces.
func (g *Game) renderBoard(dst *core.Screen, bx, by, bw, bh int) {
	dst.DrawBox(core.NewRect(bx, by, bw, bh), core.ColorBlue)

	cols := g.board.Cols()
	for col := 1; col < cols; col++ {
		sx := bx + col*cellWidth
		dst.SetColor(sx, by, '┬', core.ColorBlue)
		dst.SetColor(sx, by+bh-1, '┴', core.ColorBlue)
		for row := 0; row < g.board.Rows(); row++ {
			dst.SetColor(sx, by+1+row, '│', core.ColorBlue)
		}
	}

	previewRow := -1
	if g.phase == PhasePlayerTurn {
		if row, ok := g.board.LandingRow(g.cursor); ok {
			previewRow = row
		}
	}

	for row := 0; row < g.board.Rows(); row++ {
		for col := 0; col < cols; col++ {
			x := bx + col*cellWidth + 2
			y := by + 1 + row

			switch cell := g.board.At(row, col); {
			case cell != Empty:
				dst.SetColor(x, y, '●', g.pieceColor(cell, row, col))
			case col == g.cursor && row == previewRow:
				dst.SetColor(x, y, '○', core.ColorGray)
			}
		}
	}
}

func (g *Game) pieceColor(cell Cell, row, col int) core.Color {
	if g.hasWin && g.win.Contains(row, col) {
		return core.ColorGreen
	}
	last := g.hasLast && g.lastMove == Coord{Row: row, Col: col}
	if cell == PlayerToken {
		if last {
			return core.ColorBrightRed
		}
		return core.ColorRed
	}
	if last {
		return core.ColorBrightYellow
	}
	return core.ColorYellow
}

// renderStatus draws the turn or result line below the board.
func (g *Game) renderStatus(dst *core.Screen, y int) {
	switch g.phase {
	case PhasePlayerTurn:
		dst.DrawTextCenteredColor(y, "Your move", core.ColorRed)
	case PhaseAITurn:
		dots := strings.Repeat(".", int(g.tick/8%4))
		dst.DrawTextCenteredColor(y, fmt.Sprintf("%-24s", "Computer is thinking"+dots), core.ColorYellow)
	case PhasePlayerWin:
		dst.DrawTextCenteredColor(y, "You win! Press R for a new round", core.ColorGreen)
	case PhaseAIWin:
		dst.DrawTextCenteredColor(y, "Computer wins. Press R for a new round", core.ColorBrightYellow)
	case PhaseDraw:
		dst.DrawTextCenteredColor(y, "Draw. Press R for a new round", core.ColorBrightWhite)
	}
}
