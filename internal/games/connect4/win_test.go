package connect4

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func place(b *Board, token Cell, coords ...Coord) {
	for _, c := range coords {
		b.set(c.Row, c.Col, token)
	}
}

func TestCheckWinnerDirections(t *testing.T) {
	tests := []struct {
		name  string
		cells []Coord
		want  Win
	}{
		{
			name:  "horizontal",
			cells: []Coord{{2, 1}, {2, 2}, {2, 3}, {2, 4}},
			want:  Win{{2, 1}, {2, 2}, {2, 3}, {2, 4}},
		},
		{
			name:  "vertical",
			cells: []Coord{{5, 0}, {4, 0}, {3, 0}, {2, 0}},
			want:  Win{{2, 0}, {3, 0}, {4, 0}, {5, 0}},
		},
		{
			name:  "down-right diagonal",
			cells: []Coord{{2, 0}, {3, 1}, {4, 2}, {5, 3}},
			want:  Win{{2, 0}, {3, 1}, {4, 2}, {5, 3}},
		},
		{
			name:  "down-left diagonal",
			cells: []Coord{{2, 6}, {3, 5}, {4, 4}, {5, 3}},
			want:  Win{{2, 6}, {3, 5}, {4, 4}, {5, 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(DefaultRows, DefaultCols)
			place(b, PlayerToken, tt.cells...)

			got, ok := b.CheckWinner(PlayerToken)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
			assert.True(t, b.HasWin(PlayerToken))
			assert.False(t, b.HasWin(AIToken))
		})
	}
}

func TestCheckWinnerNeedsFour(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultCols)
	place(b, AIToken, Coord{5, 0}, Coord{5, 1}, Coord{5, 2})
	place(b, PlayerToken, Coord{5, 3})

	assert.False(t, b.HasWin(AIToken))
	assert.False(t, b.HasWin(PlayerToken))
}

func TestCheckWinnerReportsFirstLine(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultCols)
	place(b, AIToken, Coord{5, 0}, Coord{5, 1}, Coord{5, 2}, Coord{5, 3}, Coord{5, 4})

	got, ok := b.CheckWinner(AIToken)
	assert.True(t, ok)
	assert.Equal(t, Win{{5, 0}, {5, 1}, {5, 2}, {5, 3}}, got)
	assert.True(t, got.Contains(5, 3))
	assert.False(t, got.Contains(5, 4))
}

func TestCheckWinnerEmptyToken(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultCols)
	_, ok := b.CheckWinner(Empty)
	assert.False(t, ok, "an empty board is not four empties in a row")
}

func TestCheckWinnerLargeBoard(t *testing.T) {
	b := NewBoard(7, 9)
	place(b, PlayerToken, Coord{3, 8}, Coord{4, 7}, Coord{5, 6}, Coord{6, 5})

	got, ok := b.CheckWinner(PlayerToken)
	assert.True(t, ok)
	assert.Equal(t, Coord{3, 8}, got[0])
}
