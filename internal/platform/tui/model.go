package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/registry"
	"github.com/vovakirdan/tui-connect4/internal/storage"
)

// helpHeight is the number of terminal rows reserved for the key help.
const helpHeight = 1

// columnPicker is implemented by games that accept mouse clicks on columns.
type columnPicker interface {
	ColumnAt(x, y int) (int, bool)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	logger      *log.Logger
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	keyMapper   *KeyMapper
	help        help.Model
	gameState   core.GameState
	quitting    bool
	backToMenu  bool
	resultSaved bool // Whether the current round's result has been stored
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg.ScreenH = max(cfg.ScreenH-helpHeight, 0)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case MoveMsg:
		return m.handleMove(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.inputFrame.Has(core.ActionBack) {
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

// handleMouse turns a left click on the board into a column pick.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if p, ok := m.game.(columnPicker); ok {
		if col, ok := p.ColumnAt(msg.X, msg.Y); ok {
			m.inputFrame.SetColumn(col)
		}
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-helpHeight, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// A round finished by a computer move must be stored before this
	// tick's input can restart it.
	m.recordIfOver(m.game.State())

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}

	if opp, ok := m.game.(registry.Opponent); ok {
		if plan, ok := opp.PlanMove(); ok {
			cmds = append(cmds, planCmd(plan))
		}
	}

	m.recordIfOver(m.gameState)

	return m, tea.Batch(cmds...)
}

// recordIfOver stores the round's result once per finished round.
func (m *Model) recordIfOver(state core.GameState) {
	if !state.GameOver {
		m.resultSaved = false
		return
	}
	if !m.resultSaved {
		m.saveResult()
		m.resultSaved = true
	}
}

// handleMove applies a computer move computed in the background.
func (m Model) handleMove(msg MoveMsg) (tea.Model, tea.Cmd) {
	opp, ok := m.game.(registry.Opponent)
	if !ok {
		return m, nil
	}

	mv := msg.Move
	if !opp.ApplyMove(mv) {
		m.logger.Debug("discarded computer move", "column", mv.Column, "epoch", mv.Epoch)
		return m, nil
	}

	m.logger.Debug("computer move",
		"column", mv.Column+1,
		"score", mv.Score,
		"depth", mv.Depth,
		"nodes", mv.Nodes,
		"cutoffs", mv.Cutoffs,
		"elapsed", msg.Elapsed.Round(time.Millisecond),
	)
	m.gameState = m.game.State()
	m.recordIfOver(m.gameState)
	return m, nil
}

// saveResult records a finished round.
func (m Model) saveResult() {
	out, ok := m.game.(registry.Outcome)
	if !ok {
		return
	}
	outcome, difficulty, ok := out.Result()
	if !ok {
		return
	}

	m.logger.Info("round finished", "game", m.game.ID(), "outcome", outcome, "difficulty", difficulty)
	if m.store == nil {
		return
	}
	if err := m.store.RecordResult(m.game.ID(), difficulty, outcome); err != nil {
		m.logger.Warn("could not record result", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".connect4", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// BackToMenu reports whether the player left the game for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
// It reports whether the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Column picks by mouse
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	return ok && m.BackToMenu(), nil
}
