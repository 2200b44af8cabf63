package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-paint/internal/registry"
)

// MenuModel is the Bubble Tea model for the preset picker menu.
type MenuModel struct {
	items        []registry.PresetInfo
	cursor       int
	width        int
	height       int
	keys         MenuKeyMap
	help         help.Model
	lg           *lipgloss.Renderer
	embedded     bool // Finish without quitting the program
	quitting     bool
	selected     *registry.PresetInfo // Set when user selects a preset
	openSessions bool                 // True if user pressed Tab for the session log
}

// NewMenuModel creates a new menu model. lg may be nil.
func NewMenuModel(width, height int, lg *lipgloss.Renderer) MenuModel {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	h := help.New()
	h.Width = width

	return MenuModel{
		items:  registry.List(),
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   h,
		lg:     lg,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, m.finish()

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, m.finish()
		}

	case key.Matches(msg, m.keys.Sessions):
		m.openSessions = true
		return m, m.finish()
	}

	return m, nil
}

// finish ends the program unless the menu is embedded in a session.
func (m MenuModel) finish() tea.Cmd {
	if m.embedded {
		return nil
	}
	return tea.Quit
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := m.lg.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := m.lg.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := m.lg.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  P I X E L   P A I N T  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a preset", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %-10s %s", item.Title, item.Description)
		if i == m.cursor {
			line = fmt.Sprintf("> %-10s %s", item.Title, item.Description)
			b.WriteString(activeStyle.Render(centerText(line, m.width)))
		} else {
			b.WriteString(centerText(line, m.width))
		}
		b.WriteString("\n")
	}

	if len(m.items) == 0 {
		b.WriteString(dimStyle.Render(centerText("No presets registered.", m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText(m.help.View(m.keys), m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected preset, or nil if none selected.
func (m MenuModel) Selected() *registry.PresetInfo {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsSessions returns true if user requested the session log.
func (m MenuModel) WantsSessions() bool {
	return m.openSessions
}

// Size returns the last known terminal size.
func (m MenuModel) Size() (width, height int) {
	return m.width, m.height
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	PresetID      string
	Width         int
	Height        int
	WantsSessions bool
	Quit          bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(width, height int) (MenuResult, error) {
	model := NewMenuModel(width, height, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Width: width, Height: height}, fmt.Errorf("tui: menu: %w", err)
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Width: width, Height: height, Quit: true}, nil
	}

	result := MenuResult{}
	result.Width, result.Height = m.Size()

	switch {
	case m.WantsSessions():
		result.WantsSessions = true
	case m.IsQuitting():
		result.Quit = true
	case m.Selected() != nil:
		result.PresetID = m.Selected().ID
	default:
		result.Quit = true
	}

	return result, nil
}
