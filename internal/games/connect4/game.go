package connect4

import (
	"math/rand"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/registry"
)

// Variant selects the board configuration a Game plays on.
type Variant string

const (
	VariantClassic Variant = "connect4"
	VariantLarge   Variant = "connect4_large"
)

// Phase is the stage of a single round.
type Phase string

const (
	PhasePlayerTurn Phase = "player_turn"
	PhaseAITurn     Phase = "ai_turn"
	PhasePlayerWin  Phase = "player_win"
	PhaseAIWin      Phase = "ai_win"
	PhaseDraw       Phase = "draw"
)

// Over reports whether the round has finished.
func (p Phase) Over() bool {
	return p == PhasePlayerWin || p == PhaseAIWin || p == PhaseDraw
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the starting difficulty. An empty preset keeps
// the configured one.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game is a human-versus-computer Connect Four session. The human plays
// PlayerToken and always opens the round; the computer answers through the
// registry.Opponent methods.
type Game struct {
	variant Variant
	rng     *rand.Rand
	tick    uint64

	board      *Board
	depths     Depths
	difficulty Difficulty
	phase      Phase
	cursor     int

	win      Win
	hasWin   bool
	lastMove Coord
	hasLast  bool

	// epoch changes on every new round so that a computer move planned
	// for an abandoned round is rejected by ApplyMove.
	epoch    uint64
	thinking bool

	// Easiest difficulty the computer played at this round; valid when
	// planned is set.
	roundDifficulty Difficulty
	planned         bool

	// Session tally, kept across rounds
	wins   int
	losses int
	draws  int

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

var (
	_ registry.Game      = (*Game)(nil)
	_ registry.Opponent  = (*Game)(nil)
	_ registry.Outcome   = (*Game)(nil)
	_ registry.Resizable = (*Game)(nil)
)

// New creates a game on the classic board.
func New() *Game {
	return &Game{variant: VariantClassic}
}

// NewLarge creates a game on the large board.
func NewLarge() *Game {
	return &Game{variant: VariantLarge}
}

func init() {
	registry.Register(string(VariantClassic), func() registry.Game {
		return New()
	})
	registry.Register(string(VariantLarge), func() registry.Game {
		return NewLarge()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantLarge {
		return "Connect Four (Large)"
	}
	return "Connect Four"
}

// Reset loads the configuration and starts a fresh session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	c, _ := config.LoadConnect4(configPath) //nolint:errcheck // falls back to defaults
	config.ApplyDifficultyPreset(&c, difficultyPreset)

	dims := c.Board
	if g.variant == VariantLarge {
		dims = c.LargeBoard
	}

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.board = NewBoard(dims.Rows, dims.Cols)
	g.depths = Depths{Medium: c.Search.MediumDepth, Hard: c.Search.HardDepth}
	g.difficulty = Medium
	if d, err := ParseDifficulty(string(c.Difficulty)); err == nil {
		g.difficulty = d
	}
	g.wins, g.losses, g.draws = 0, 0, 0

	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.newRound()
}

// newRound clears the board and hands the first move to the player.
func (g *Game) newRound() {
	g.board.Reset()
	g.phase = PhasePlayerTurn
	g.cursor = g.board.Cols() / 2
	g.hasWin = false
	g.hasLast = false
	g.thinking = false
	g.planned = false
	g.epoch++
}

// Resize adapts the layout to a new screen size.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	w, h := g.minScreenSize()
	g.tooSmall = width < w || height < h
}

// Step applies one tick of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	moved := false

	if in.Has(core.ActionRestart) {
		g.newRound()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionDifficulty) {
		g.difficulty = g.difficulty.Next()
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	cols := g.board.Cols()
	switch {
	case in.Has(core.ActionLeft):
		g.cursor = core.Wrap(g.cursor-1, cols)
	case in.Has(core.ActionRight):
		g.cursor = core.Wrap(g.cursor+1, cols)
	}

	drop := in.Has(core.ActionDrop)
	if col, ok := in.Column(); ok && col >= 0 && col < cols {
		g.cursor = col
		drop = true
	}

	if drop {
		moved = g.PlayerMove(g.cursor)
	}

	return core.StepResult{State: g.State(), Moved: moved}
}

// PlayerMove drops the player's piece into col. It reports false when it
// is not the player's turn or the column cannot take a piece.
func (g *Game) PlayerMove(col int) bool {
	if g.phase != PhasePlayerTurn || g.thinking {
		return false
	}
	row, err := g.board.DropPiece(col, PlayerToken)
	if err != nil {
		return false
	}
	g.afterMove(Coord{Row: row, Col: col}, PlayerToken)
	return true
}

// afterMove records a placed piece and advances the phase.
func (g *Game) afterMove(at Coord, token Cell) {
	g.lastMove = at
	g.hasLast = true

	if w, ok := g.board.CheckWinner(token); ok {
		g.win = w
		g.hasWin = true
		if token == PlayerToken {
			g.phase = PhasePlayerWin
			g.wins++
		} else {
			g.phase = PhaseAIWin
			g.losses++
		}
		return
	}
	if g.board.IsDraw() {
		g.phase = PhaseDraw
		g.draws++
		return
	}

	if token == PlayerToken {
		g.phase = PhaseAITurn
	} else {
		g.phase = PhasePlayerTurn
	}
}

// PlanMove starts the computer's move. The returned function searches a
// copy of the board with its own random source, so it may run on another
// goroutine while the game keeps rendering.
func (g *Game) PlanMove() (func() registry.Move, bool) {
	if g.phase != PhaseAITurn || g.thinking {
		return nil, false
	}
	g.thinking = true

	board := g.board.Clone()
	diff := g.difficulty
	if !g.planned || diff < g.roundDifficulty {
		g.roundDifficulty = diff
	}
	g.planned = true
	epoch := g.epoch
	sel := NewSelector(rand.New(rand.NewSource(g.rng.Int63())), g.depths)

	return func() registry.Move {
		dec, ok := sel.Decide(board, diff)
		return registry.Move{
			Column:  dec.Column,
			Epoch:   epoch,
			Found:   ok,
			Score:   dec.Score,
			Depth:   dec.Depth,
			Nodes:   dec.Stats.Nodes,
			Cutoffs: dec.Stats.Cutoffs,
		}
	}, true
}

// ApplyMove plays a move returned by a PlanMove function. Moves planned
// for an earlier round are dropped.
func (g *Game) ApplyMove(m registry.Move) bool {
	if m.Epoch != g.epoch || g.phase != PhaseAITurn {
		return false
	}
	g.thinking = false

	if !m.Found {
		g.phase = PhaseDraw
		g.draws++
		return true
	}
	row, err := g.board.DropPiece(m.Column, AIToken)
	if err != nil {
		return false
	}
	g.afterMove(Coord{Row: row, Col: m.Column}, AIToken)
	return true
}

// Thinking reports whether a planned computer move is outstanding.
func (g *Game) Thinking() bool {
	return g.thinking
}

// Result reports the finished round from the player's side. The difficulty
// is the easiest one the computer played at during the round, so switching
// levels mid-round never credits a harder level than was faced.
func (g *Game) Result() (outcome, difficulty string, ok bool) {
	d := g.difficulty
	if g.planned {
		d = g.roundDifficulty
	}
	switch g.phase {
	case PhasePlayerWin:
		return "win", d.String(), true
	case PhaseAIWin:
		return "loss", d.String(), true
	case PhaseDraw:
		return "draw", d.String(), true
	default:
		return "", "", false
	}
}

// Board returns the live board. Callers must not modify it.
func (g *Game) Board() *Board {
	return g.board
}

// Difficulty returns the current difficulty.
func (g *Game) Difficulty() Difficulty {
	return g.difficulty
}

// Phase returns the current round phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.wins,
		GameOver: g.phase.Over(),
		Paused:   g.tooSmall || g.thinking,
	}
}
