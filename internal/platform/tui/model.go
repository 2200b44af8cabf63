package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-paint/internal/core"
	"github.com/vovakirdan/pixel-paint/internal/painter"
)

// StatusLines is the number of terminal rows below the canvas.
const StatusLines = 1

// CanvasSize returns the canvas resolution for a terminal of the given size:
// the full width, and two pixels per row above the status line.
func CanvasSize(termWidth, termHeight int) (width, height int) {
	return termWidth, (termHeight - StatusLines) * PixelsPerCell
}

// Model is the Bubble Tea model for a painting session.
type Model struct {
	painter  *painter.Painter
	screen   *core.Screen
	renderer *Renderer
	keys     PaintKeyMap
	help     help.Model
	config   core.RuntimeConfig

	pointer    pointerTracker
	inputFrame core.InputFrame
	state      core.PainterState

	embedded bool // Finish without quitting the program
	done     bool
	quitting bool
}

// NewModel creates a painting model. cfg carries the canvas resolution in
// pixels, see CanvasSize.
func NewModel(p *painter.Painter, cfg core.RuntimeConfig, renderer *Renderer) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if renderer == nil {
		renderer = NewRenderer(nil)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		painter:    p,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer:   renderer,
		keys:       DefaultPaintKeyMap(),
		help:       h,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init resets the painter and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.painter.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Quit is applied by the painter on the next tick.
		m.keys.MapKeyToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.MouseMsg:
		m.pointer.handle(msg)
		return m, nil

	case tea.WindowSizeMsg:
		// The canvas keeps its resolution; only the status line follows.
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick runs one painter step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.pointer.apply(&m.inputFrame)

	result := m.painter.Step(m.inputFrame)
	m.state = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	if m.state.Quit {
		m.done = true
		if m.embedded {
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the canvas and the status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.painter.Render(m.screen)
	return m.renderer.RenderScreen(m.screen) + "\n" + m.statusLine()
}

func (m Model) statusLine() string {
	stats := m.painter.Stats()
	info := fmt.Sprintf("%s  strokes %d  pixels %d  ", m.painter.Title(), stats.Strokes, stats.Pixels)
	style := m.renderer.lg.NewStyle().Foreground(lipgloss.Color("241"))
	return style.Render(info + m.help.View(m.keys))
}

// Done reports whether the painter asked to quit.
func (m Model) Done() bool {
	return m.done
}

// Stats returns the painter's session statistics.
func (m Model) Stats() painter.Stats {
	return m.painter.Stats()
}

// Run paints in the terminal until the user quits and returns the session
// statistics.
func Run(p *painter.Painter, cfg core.RuntimeConfig) (painter.Stats, error) {
	model := NewModel(p, cfg, nil)

	prog := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Motion without a button moves the cursor
	)

	if _, err := prog.Run(); err != nil {
		return p.Stats(), fmt.Errorf("tui: %w", err)
	}
	return p.Stats(), nil
}
