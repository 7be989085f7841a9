package connect4

import (
	"fmt"
	"strings"
)

// Default board dimensions.
const (
	DefaultRows = 6
	DefaultCols = 7
)

// Board is a fixed rows x cols grid obeying gravity: in every column the
// non-empty cells form a contiguous block resting on the bottom row.
// A Board is not safe for concurrent use.
type Board struct {
	rows  int
	cols  int
	cells []Cell // row-major, row 0 on top

	// fills records DropPiece results so RemovePiece can only undo the
	// most recent one.
	fills []Coord
}

// NewBoard creates an empty board. It panics on non-positive dimensions.
func NewBoard(rows, cols int) *Board {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("connect4: invalid board size %dx%d", rows, cols))
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
		fills: make([]Coord, 0, rows*cols),
	}
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// At returns the cell at (row, col), or Empty when out of bounds.
func (b *Board) At(row, col int) Cell {
	if !b.inBounds(row, col) {
		return Empty
	}
	return b.cells[row*b.cols+col]
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

func (b *Board) set(row, col int, c Cell) {
	b.cells[row*b.cols+col] = c
}

// IsOpen reports whether col accepts another piece.
func (b *Board) IsOpen(col int) bool {
	return col >= 0 && col < b.cols && b.At(0, col) == Empty
}

// ValidMoves returns the open columns in ascending order.
func (b *Board) ValidMoves() []int {
	moves := make([]int, 0, b.cols)
	for col := 0; col < b.cols; col++ {
		if b.At(0, col) == Empty {
			moves = append(moves, col)
		}
	}
	return moves
}

// LandingRow returns the row a piece dropped into col would occupy.
func (b *Board) LandingRow(col int) (int, bool) {
	if col < 0 || col >= b.cols {
		return -1, false
	}
	for row := b.rows - 1; row >= 0; row-- {
		if b.At(row, col) == Empty {
			return row, true
		}
	}
	return -1, false
}

// DropPiece places token in the lowest empty cell of col and returns the row
// it landed on. The board is left untouched when an error is returned.
func (b *Board) DropPiece(col int, token Cell) (int, error) {
	if token != PlayerToken && token != AIToken {
		return -1, ErrInvalidToken
	}
	if col < 0 || col >= b.cols {
		return -1, fmt.Errorf("%w: %d", ErrInvalidColumn, col)
	}
	row, ok := b.LandingRow(col)
	if !ok {
		return -1, fmt.Errorf("%w: %d", ErrColumnFull, col)
	}
	b.set(row, col, token)
	b.fills = append(b.fills, Coord{Row: row, Col: col})
	return row, nil
}

// RemovePiece empties the cell filled by the most recent DropPiece.
// Any other cell means the caller broke apply/undo pairing, so it panics.
func (b *Board) RemovePiece(row, col int) {
	n := len(b.fills)
	if n == 0 || b.fills[n-1] != (Coord{Row: row, Col: col}) {
		panic(fmt.Errorf("%w: (%d,%d)", ErrInvalidCell, row, col))
	}
	b.set(row, col, Empty)
	b.fills = b.fills[:n-1]
}

// IsFull reports whether every top-row cell is occupied. By gravity that
// means every column is full.
func (b *Board) IsFull() bool {
	for col := 0; col < b.cols; col++ {
		if b.At(0, col) == Empty {
			return false
		}
	}
	return true
}

// IsDraw is IsFull under the name the game loop uses.
func (b *Board) IsDraw() bool {
	return b.IsFull()
}

// Reset empties every cell.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
	b.fills = b.fills[:0]
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	n := 0
	for _, c := range b.cells {
		if c != Empty {
			n++
		}
	}
	return n
}

// Clone returns a deep copy, including the undo stack.
func (b *Board) Clone() *Board {
	nb := &Board{
		rows:  b.rows,
		cols:  b.cols,
		cells: make([]Cell, len(b.cells)),
		fills: make([]Coord, len(b.fills), b.rows*b.cols),
	}
	copy(nb.cells, b.cells)
	copy(nb.fills, b.fills)
	return nb
}

// Equal reports whether both boards have the same dimensions and contents.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Grid returns a copy of the cells as rows, top row first.
func (b *Board) Grid() [][]Cell {
	grid := make([][]Cell, b.rows)
	for row := range grid {
		grid[row] = make([]Cell, b.cols)
		copy(grid[row], b.cells[row*b.cols:(row+1)*b.cols])
	}
	return grid
}

// String renders the board one line per row using '.', 'X' and 'O'.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.rows * (b.cols + 1))
	for row := 0; row < b.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < b.cols; col++ {
			sb.WriteString(b.At(row, col).String())
		}
	}
	return sb.String()
}

// ParseBoard reads a board in the String format. Blank lines and
// surrounding whitespace are ignored; 'x' and 'o' are accepted in either
// case. Boards that violate gravity are rejected.
func ParseBoard(text string) (*Board, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("connect4: empty board")
	}

	cols := len(lines[0])
	b := NewBoard(len(lines), cols)
	for row, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("connect4: row %d has %d cells, want %d", row, len(line), cols)
		}
		for col, ch := range line {
			switch ch {
			case '.':
			case 'X', 'x':
				b.set(row, col, PlayerToken)
			case 'O', 'o':
				b.set(row, col, AIToken)
			default:
				return nil, fmt.Errorf("connect4: invalid cell %q at row %d col %d", ch, row, col)
			}
		}
	}

	for col := 0; col < b.cols; col++ {
		for row := 0; row < b.rows-1; row++ {
			if b.At(row, col) != Empty && b.At(row+1, col) == Empty {
				return nil, fmt.Errorf("connect4: floating piece at row %d col %d", row, col)
			}
		}
	}
	return b, nil
}
