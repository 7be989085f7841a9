package connect4

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Variant    string
	Board      string // Board.String() notation
	Phase      Phase
	Difficulty string
	Cursor     int
	Epoch      uint64
	Thinking   bool
	LastMove   *Coord // nil before the first move of a round
	Win        *Win   // nil unless the round was won
	Wins       int
	Losses     int
	Draws      int
	TooSmall   bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tick,
		Variant:    string(g.variant),
		Board:      g.board.String(),
		Phase:      g.phase,
		Difficulty: g.difficulty.String(),
		Cursor:     g.cursor,
		Epoch:      g.epoch,
		Thinking:   g.thinking,
		Wins:       g.wins,
		Losses:     g.losses,
		Draws:      g.draws,
		TooSmall:   g.tooSmall,
	}
	if g.hasLast {
		last := g.lastMove
		s.LastMove = &last
	}
	if g.hasWin {
		win := g.win
		s.Win = &win
	}
	return s
}
