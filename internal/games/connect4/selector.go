package connect4

import (
	"fmt"
	"strings"
)

// Difficulty selects how the automated opponent picks its moves.
type Difficulty int

const (
	Easy   Difficulty = iota // uniformly random open column
	Medium                   // shallow search
	Hard                     // deep search
)

// Difficulties lists every level in cycling order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// String returns the lower-case name used in config files and flags.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// Title returns the capitalized display name.
func (d Difficulty) Title() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Next returns the following difficulty, wrapping from Hard to Easy.
func (d Difficulty) Next() Difficulty {
	return (d + 1) % Difficulty(len(Difficulties))
}

// ParseDifficulty converts a name such as "hard" to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium", "normal":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return Easy, fmt.Errorf("connect4: unknown difficulty %q", s)
	}
}

// Depths maps the searching difficulties to their ply limits.
type Depths struct {
	Medium int
	Hard   int
}

// DefaultDepths are the stock search depths.
var DefaultDepths = Depths{Medium: 3, Hard: 5}

// For returns the ply limit for d. Easy does not search and returns 0.
func (d Depths) For(diff Difficulty) int {
	switch diff {
	case Easy:
		return 0
	case Hard:
		return d.Hard
	default:
		return d.Medium
	}
}

// Rand is the random source used for move selection. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// ColumnScore is the search value of one root move.
type ColumnScore struct {
	Col   int
	Score int
}

// Decision describes how a move was chosen.
type Decision struct {
	Column     int
	Score      int // best root score; 0 for Easy
	Difficulty Difficulty
	Depth      int
	Scores     []ColumnScore // per open column, ascending; nil for Easy
	Stats      SearchStats
}

// Selector picks the automated opponent's move.
type Selector struct {
	rng    Rand
	depths Depths
}

// NewSelector creates a selector drawing randomness from rng.
func NewSelector(rng Rand, depths Depths) *Selector {
	return &Selector{rng: rng, depths: depths}
}

// Depths returns the configured ply limits.
func (s *Selector) Depths() Depths { return s.depths }

// SelectMove returns the column the AI plays on b, or false when no column
// is open. b is unchanged on return.
func (s *Selector) SelectMove(b *Board, d Difficulty) (int, bool) {
	dec, ok := s.Decide(b, d)
	return dec.Column, ok
}

// Decide is SelectMove with the scores and search statistics behind the
// choice.
//
// The incumbent starts as a random open column with score NegInf and is
// replaced only by a strictly greater score, so among equal scores the
// lowest column wins.
func (s *Selector) Decide(b *Board, d Difficulty) (Decision, bool) {
	moves := b.ValidMoves()
	if len(moves) == 0 {
		return Decision{Column: -1, Difficulty: d}, false
	}

	dec := Decision{
		Column:     moves[s.rng.Intn(len(moves))],
		Difficulty: d,
	}
	if d == Easy {
		return dec, true
	}

	dec.Depth = s.depths.For(d)
	dec.Score = NegInf
	dec.Scores = make([]ColumnScore, 0, len(moves))
	search := NewSearch(dec.Depth)

	for _, col := range moves {
		score := withMove(b, col, AIToken, func() int {
			return search.Minimax(b, 0, NegInf, PosInf, false)
		})
		dec.Scores = append(dec.Scores, ColumnScore{Col: col, Score: score})
		if score > dec.Score {
			dec.Score = score
			dec.Column = col
		}
	}
	dec.Stats = search.Stats()
	return dec, true
}
