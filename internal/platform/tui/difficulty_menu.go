package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/games/connect4"
)

// DifficultyModel lets users choose the computer's strength before a game.
type DifficultyModel struct {
	title     string
	depths    connect4.Depths
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	chosen    bool
	quitting  bool
	back      bool
}

// NewDifficultyModel creates a difficulty picker. initial is preselected.
func NewDifficultyModel(title string, depths connect4.Depths, initial connect4.Difficulty, width, height int) DifficultyModel {
	cursor := 0
	for i, d := range connect4.Difficulties {
		if d == initial {
			cursor = i
		}
	}
	return DifficultyModel{
		title:     title,
		depths:    depths,
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(connect4.Difficulties)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.chosen = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// describe returns the menu line for a difficulty.
func (m DifficultyModel) describe(d connect4.Difficulty) string {
	if d == connect4.Easy {
		return "Easy    random moves"
	}
	return fmt.Sprintf("%-7s searches %d moves ahead", d.Title(), m.depths.For(d))
}

// View renders the selection.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render(m.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose your opponent:", m.width))
	b.WriteString("\n\n")

	for i, d := range connect4.Difficulties {
		line := "  " + m.describe(d)
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + m.describe(d))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// Selected returns the chosen difficulty, or false if none was chosen.
func (m DifficultyModel) Selected() (connect4.Difficulty, bool) {
	if !m.chosen {
		return connect4.Easy, false
	}
	return connect4.Difficulties[m.cursor], true
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}

// DifficultySelection is the outcome of RunDifficultySelector.
type DifficultySelection struct {
	Difficulty connect4.Difficulty
	Chosen     bool // False when the player went back or quit
	Quit       bool
}

// RunDifficultySelector asks for the computer's difficulty.
func RunDifficultySelector(title string, depths connect4.Depths, initial connect4.Difficulty, cfg core.RuntimeConfig) (DifficultySelection, error) {
	model := NewDifficultyModel(title, depths, initial, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return DifficultySelection{}, err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok {
		return DifficultySelection{Quit: true}, nil
	}

	d, chosen := m.Selected()
	return DifficultySelection{Difficulty: d, Chosen: chosen, Quit: m.IsQuitting()}, nil
}
