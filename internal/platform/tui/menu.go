package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-fifteen/internal/core"
)

// ModeChoice represents the selected deal mode.
type ModeChoice int

const (
	ModeChoiceClassic ModeChoice = iota
	ModeChoiceSolvable
	ModeChoiceScores
)

// ModeSelection holds the user's selection from the mode menu.
type ModeSelection struct {
	Choice ModeChoice
	GameID string // Empty for the scoreboard choice
}

// ModeMenuModel lets users choose between deal modes and the scoreboard.
type ModeMenuModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection ModeSelection
	choosing  bool
	quitting  bool
	back      bool
}

// menuEntries are the rows of the mode menu, in cursor order.
var menuEntries = []struct {
	label  string
	choice ModeChoice
	gameID string
}{
	{"Classic Deal (any permutation)", ModeChoiceClassic, "fifteen"},
	{"Solvable Deal (scrambled by legal moves)", ModeChoiceSolvable, "fifteen_solvable"},
	{"Best Results...", ModeChoiceScores, ""},
}

// NewModeMenuModel creates a new mode selection model.
func NewModeMenuModel(width, height int) ModeMenuModel {
	return ModeMenuModel{
		cursor:    0,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m ModeMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ModeMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m ModeMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		entry := menuEntries[m.cursor]
		m.choosing = false
		m.selection = ModeSelection{Choice: entry.choice, GameID: entry.gameID}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the mode selection.
func (m ModeMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("F I F T E E N", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select deal mode:", m.width))
	b.WriteString("\n\n")

	for i, entry := range menuEntries {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, entry.label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m ModeMenuModel) Selected() *ModeSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsChoosing returns true if still in selection mode.
func (m ModeMenuModel) IsChoosing() bool {
	return m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m ModeMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m ModeMenuModel) WantsBack() bool {
	return m.back
}

// RunModeSelector runs the mode selection and returns the selection.
// A nil selection means the user backed out or quit.
func RunModeSelector(cfg core.RuntimeConfig) (*ModeSelection, core.RuntimeConfig, error) {
	model := NewModeMenuModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(ModeMenuModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}

// centerText centers a line of text within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
