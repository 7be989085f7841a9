package connect4

// scanDirections lists the line directions in scan order: horizontal,
// vertical, down-right diagonal, down-left diagonal.
var scanDirections = [4]struct{ dRow, dCol int }{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// CheckWinner returns the first line of four token cells, scanning each
// direction in turn with start cells ordered top to bottom, left to right.
// The coordinates run from the start cell along the direction.
func (b *Board) CheckWinner(token Cell) (Win, bool) {
	if token == Empty {
		return Win{}, false
	}
	for _, d := range scanDirections {
		for row := 0; row < b.rows; row++ {
			endRow := row + d.dRow*(WinLength-1)
			if endRow < 0 || endRow >= b.rows {
				continue
			}
			for col := 0; col < b.cols; col++ {
				endCol := col + d.dCol*(WinLength-1)
				if endCol < 0 || endCol >= b.cols {
					continue
				}
				if w, ok := b.lineAt(row, col, d.dRow, d.dCol, token); ok {
					return w, true
				}
			}
		}
	}
	return Win{}, false
}

// HasWin reports whether token owns any line of four.
func (b *Board) HasWin(token Cell) bool {
	_, ok := b.CheckWinner(token)
	return ok
}

func (b *Board) lineAt(row, col, dRow, dCol int, token Cell) (Win, bool) {
	var w Win
	for i := 0; i < WinLength; i++ {
		r, c := row+dRow*i, col+dCol*i
		if b.cells[r*b.cols+c] != token {
			return Win{}, false
		}
		w[i] = Coord{Row: r, Col: c}
	}
	return w, true
}
