// Package connect4 implements Connect Four: the board model, win detection,
// a minimax search with alpha-beta pruning and the automated opponent that
// drives it. The package has no terminal or storage dependencies; the
// platform layer renders from Board and Game state.
package connect4

// Cell is the content of one board square.
type Cell uint8

const (
	Empty Cell = iota
	PlayerToken
	AIToken
)

// String returns the single-character board notation for the cell.
func (c Cell) String() string {
	switch c {
	case PlayerToken:
		return "X"
	case AIToken:
		return "O"
	default:
		return "."
	}
}

// Valid reports whether c is one of the three defined cell values.
func (c Cell) Valid() bool {
	return c <= AIToken
}

// Opponent returns the other side's token. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case PlayerToken:
		return AIToken
	case AIToken:
		return PlayerToken
	default:
		return Empty
	}
}

// Coord addresses a board cell. Row 0 is the top row.
type Coord struct {
	Row int
	Col int
}

// WinLength is the number of aligned tokens needed to win.
const WinLength = 4

// Win is a winning line of four coordinates.
type Win [WinLength]Coord

// Contains reports whether the line passes through (row, col).
func (w Win) Contains(row, col int) bool {
	for _, c := range w {
		if c.Row == row && c.Col == col {
			return true
		}
	}
	return false
}

// Error is a constant error value for engine failures.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrColumnFull    Error = "connect4: column is full"
	ErrInvalidColumn Error = "connect4: column out of range"
	ErrInvalidToken  Error = "connect4: token must be PlayerToken or AIToken"
	ErrInvalidCell   Error = "connect4: cell is not the most recent fill"
)
