package connect4

import "math"

// Score bounds. A win found at ply d scores WinScore-d for the AI and
// d-WinScore for the player, so quicker wins and slower losses rank higher.
const (
	WinScore = 100
	NegInf   = math.MinInt
	PosInf   = math.MaxInt
)

// SearchStats counts the work done by a search.
type SearchStats struct {
	Nodes   int // positions evaluated
	Cutoffs int // candidate loops stopped early by alpha >= beta
}

// Add accumulates o into s.
func (s *SearchStats) Add(o SearchStats) {
	s.Nodes += o.Nodes
	s.Cutoffs += o.Cutoffs
}

// Search is a depth-limited minimax over a Board. The AI token maximizes,
// the player token minimizes. A Search is not safe for concurrent use.
type Search struct {
	maxDepth int
	pruning  bool
	stats    SearchStats
}

// NewSearch returns an alpha-beta search limited to maxDepth plies.
func NewSearch(maxDepth int) *Search {
	return &Search{maxDepth: maxDepth, pruning: true}
}

// NewExhaustiveSearch returns a plain minimax search that never prunes.
// It returns the same values as NewSearch and exists to verify that.
func NewExhaustiveSearch(maxDepth int) *Search {
	return &Search{maxDepth: maxDepth}
}

// MaxDepth returns the ply limit.
func (s *Search) MaxDepth() int { return s.maxDepth }

// Stats returns the counters accumulated since the last ResetStats.
func (s *Search) Stats() SearchStats { return s.stats }

// ResetStats zeroes the counters.
func (s *Search) ResetStats() { s.stats = SearchStats{} }

// Minimax scores b at ply depth with the given window. Callers start with
// depth 0 and the full (NegInf, PosInf) window. b is restored before
// Minimax returns.
func (s *Search) Minimax(b *Board, depth, alpha, beta int, maximizing bool) int {
	s.stats.Nodes++

	if b.HasWin(AIToken) {
		return WinScore - depth
	}
	if b.HasWin(PlayerToken) {
		return depth - WinScore
	}
	if b.IsFull() || depth >= s.maxDepth {
		return 0
	}

	if maximizing {
		best := NegInf
		for _, col := range b.ValidMoves() {
			score := withMove(b, col, AIToken, func() int {
				return s.Minimax(b, depth+1, alpha, beta, false)
			})
			best = max(best, score)
			alpha = max(alpha, best)
			if s.pruning && alpha >= beta {
				s.stats.Cutoffs++
				break
			}
		}
		return best
	}

	best := PosInf
	for _, col := range b.ValidMoves() {
		score := withMove(b, col, PlayerToken, func() int {
			return s.Minimax(b, depth+1, alpha, beta, true)
		})
		best = min(best, score)
		beta = min(beta, best)
		if s.pruning && alpha >= beta {
			s.stats.Cutoffs++
			break
		}
	}
	return best
}

// withMove drops token into col, runs eval and takes the piece back out on
// every exit path. col must be open.
func withMove(b *Board, col int, token Cell, eval func() int) int {
	row, err := b.DropPiece(col, token)
	if err != nil {
		panic(err)
	}
	defer b.RemovePiece(row, col)
	return eval()
}
