package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-paint/internal/config"
	"github.com/vovakirdan/pixel-paint/internal/core"
	"github.com/vovakirdan/pixel-paint/internal/painter"
	"github.com/vovakirdan/pixel-paint/internal/storage"
)

// screenMode is the view a SessionModel is showing.
type screenMode int

const (
	modeMenu screenMode = iota
	modePainting
	modeSessions
)

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	Store    *storage.Store // May be nil
	Config   config.PainterConfig
	Logger   *log.Logger
	Renderer *lipgloss.Renderer // May be nil
	Host     string             // Recorded with each session
	User     string
	Width    int
	Height   int
	TickRate int
	Seed     int64
}

// SessionModel manages the full flow of one terminal: menu -> painting -> menu,
// with the session board reachable from the menu. Every finished painting is
// recorded in the store. This is the top-level model used for SSH sessions.
type SessionModel struct {
	opts     SessionOptions
	mode     screenMode
	menu     MenuModel
	sessions SessionsModel
	paint    *Model
	lastErr  string
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	m := SessionModel{opts: opts}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	menu := NewMenuModel(m.opts.Width, m.opts.Height, m.opts.Renderer)
	menu.embedded = true
	return menu
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Width = wsm.Width
		m.opts.Height = wsm.Height
	}

	switch m.mode {
	case modePainting:
		return m.updatePainting(msg)
	case modeSessions:
		return m.updateSessions(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsSessions():
		board := NewSessionsModel(m.opts.Store, m.opts.Width, m.opts.Height, m.opts.Renderer)
		board.embedded = true
		m.sessions = board
		m.mode = modeSessions
		return m, board.Init()

	case m.menu.Selected() != nil:
		return m.startPainting(m.menu.Selected().ID)
	}

	return m, cmd
}

// startPainting creates a painter for the preset sized to the terminal.
func (m SessionModel) startPainting(presetID string) (tea.Model, tea.Cmd) {
	m.menu = m.newMenu()

	w, h := CanvasSize(m.opts.Width, m.opts.Height)
	if w < 2 || h < 2 {
		m.lastErr = fmt.Sprintf("terminal too small (%dx%d)", m.opts.Width, m.opts.Height)
		return m, nil
	}

	p, err := painter.NewFromPreset(presetID, m.opts.Config, config.Overrides{},
		painter.WithLogger(m.opts.Logger))
	if err != nil {
		m.opts.Logger.Error("cannot create painter", "preset", presetID, "error", err)
		m.lastErr = err.Error()
		return m, nil
	}
	m.lastErr = ""

	rc := core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: m.opts.TickRate, Seed: m.opts.Seed}
	paint := NewModel(p, rc, NewRenderer(m.opts.Renderer))
	paint.embedded = true
	m.paint = &paint
	m.mode = modePainting

	return m, m.paint.Init()
}

// updatePainting handles updates when painting.
func (m SessionModel) updatePainting(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.paint.Update(msg)
	if paintModel, ok := newModel.(Model); ok {
		m.paint = &paintModel
	}

	if m.paint.Done() {
		RecordSession(m.opts.Store, m.opts.Logger, m.paint.painter, m.opts.Host, m.opts.User)
		m.paint = nil
		m.mode = modeMenu
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateSessions handles updates when showing the session board.
func (m SessionModel) updateSessions(msg tea.Msg) (tea.Model, tea.Cmd) {
	newBoard, cmd := m.sessions.Update(msg)
	if board, ok := newBoard.(SessionsModel); ok {
		m.sessions = board
	}

	switch {
	case m.sessions.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.sessions.IsGoingBack():
		m.menu = m.newMenu()
		m.mode = modeMenu
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modePainting:
		return m.paint.View()
	case modeSessions:
		return m.sessions.View()
	}

	view := m.menu.View()
	if m.lastErr != "" {
		errStyle := m.menu.lg.NewStyle().Foreground(lipgloss.Color("9"))
		view += "\n" + errStyle.Render(centerText(m.lastErr, m.opts.Width))
	}
	return view
}

// RecordSession saves the painter's statistics to store, if there is one.
// Painters that never ticked are skipped. Failures are logged; painting is
// never interrupted by the session log.
func RecordSession(store *storage.Store, logger *log.Logger, p *painter.Painter, host, user string) {
	stats := p.Stats()
	if store == nil || stats.Ticks == 0 {
		return
	}

	id, err := store.SaveSession(storage.Session{
		Preset:   p.ID(),
		Host:     host,
		User:     user,
		Ticks:    stats.Ticks,
		Strokes:  stats.Strokes,
		Pixels:   stats.Pixels,
		Duration: stats.Lifetime,
	})
	if err != nil {
		logger.Warn("could not record session", "preset", p.ID(), "error", err)
		return
	}
	logger.Info("session recorded", "id", id, "preset", p.ID(), "host", host,
		"strokes", stats.Strokes, "pixels", stats.Pixels, "duration", stats.Lifetime)
}
