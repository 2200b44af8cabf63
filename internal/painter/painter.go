// Package painter implements the painting loop: it turns per-tick pointer
// input into canvas writes and composites the canvas and cursor overlay onto
// the host's screen. It has no knowledge of the host runtime.
package painter

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-paint/internal/clock"
	"github.com/vovakirdan/pixel-paint/internal/config"
	"github.com/vovakirdan/pixel-paint/internal/core"
	"github.com/vovakirdan/pixel-paint/internal/raster"
	"github.com/vovakirdan/pixel-paint/internal/sprite"
)

// Stats summarizes a painting session.
type Stats struct {
	Ticks    uint64
	Strokes  int // Press edges
	Pixels   int // Canvas writes, including overwrites
	Lifetime time.Duration
}

// Painter owns the canvas, the cursor overlay and the pointer history.
// It is driven from a single goroutine: the host calls Step then Render.
type Painter struct {
	id      string
	title   string
	cfg     config.PainterConfig
	palette config.Palette
	logger  *log.Logger

	clockOpts []clock.Option

	runtime    core.RuntimeConfig
	background *sprite.Sprite // Canvas contents after Reset, restored by Clear
	canvas     *sprite.Sprite
	cursor     *sprite.Sprite
	clock      *clock.Clock

	last    core.PointerState
	state   core.PainterState
	strokes int
}

// Option configures a Painter.
type Option func(*Painter)

// WithLogger sets the logger for lifecycle events and the clock report.
func WithLogger(l *log.Logger) Option {
	return func(p *Painter) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithClockOptions appends options to the clock created on every Reset.
// They are applied after the config-derived ones.
func WithClockOptions(opts ...clock.Option) Option {
	return func(p *Painter) {
		p.clockOpts = append(p.clockOpts, opts...)
	}
}

// New creates a painter for the given preset id and configuration.
// Reset must be called before the first Step.
func New(id, title string, cfg config.PainterConfig, opts ...Option) (*Painter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("painter: %w", err)
	}
	palette, err := cfg.Palette()
	if err != nil {
		return nil, fmt.Errorf("painter: %w", err)
	}

	p := &Painter{
		id:      id,
		title:   title,
		cfg:     cfg,
		palette: palette,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// ID returns the preset identifier this painter was built from.
func (p *Painter) ID() string {
	return p.id
}

// Title returns the display name.
func (p *Painter) Title() string {
	return p.title
}

// Config returns the configuration the painter was built with.
func (p *Painter) Config() config.PainterConfig {
	return p.cfg
}

// Reset allocates the canvas at the runtime resolution and clears all
// session state. The resolution must be at least 2x2 so pointer clamping
// has a non-empty range.
func (p *Painter) Reset(rc core.RuntimeConfig) {
	if rc.ScreenW < 2 || rc.ScreenH < 2 {
		panic(fmt.Sprintf("painter: canvas must be at least 2x2, got %dx%d", rc.ScreenW, rc.ScreenH))
	}
	p.runtime = rc

	size := core.NewSize(rc.ScreenW, rc.ScreenH)
	p.background = sprite.NewFilled(core.Vec2{}, size, p.palette.Background)
	if p.cfg.Canvas.Gradient {
		sprite.Gradient(p.background, rc.Seed)
	}
	p.canvas = sprite.NewFilled(core.Vec2{}, size, core.Transparent)
	p.canvas.CopyFrom(p.background)

	p.cursor = newCursor(p.cfg.Cursor, p.palette.Cursor)

	opts := []clock.Option{
		clock.WithFrameTarget(p.cfg.Clock.FrameTarget),
		clock.WithReportEvery(p.cfg.Clock.ReportEvery),
		clock.WithLogger(p.logger),
	}
	p.clock = clock.New(append(opts, p.clockOpts...)...)

	p.last = core.PointerState{}
	p.state = core.PainterState{}
	p.strokes = 0

	p.logger.Debug("painter reset", "preset", p.id, "width", rc.ScreenW, "height", rc.ScreenH,
		"gradient", p.cfg.Canvas.Gradient, "cursor", p.cfg.Cursor.Enabled)
}

func newCursor(cfg config.CursorConfig, c color.RGBA) *sprite.Sprite {
	switch cfg.Shape {
	case config.ShapeCrosshair:
		return sprite.Crosshair(cfg.Size, c)
	case config.ShapeBlock:
		return sprite.Block(cfg.Size, c)
	default:
		return sprite.Arrow(cfg.Size, c)
	}
}

// Step advances the painter by one tick.
func (p *Painter) Step(in core.InputFrame) core.StepResult {
	w, h := p.canvas.Size().Width, p.canvas.Size().Height
	pos := core.V(
		core.Clamp(in.Pointer.X, 0, float64(w-1)),
		core.Clamp(in.Pointer.Y, 0, float64(h-1)),
	)

	p.cursor.Origin = pos

	switch {
	case in.Pressed && !p.last.Pressed:
		p.paint(pos.Truncate(), p.palette.NewPath)
		p.strokes++
	case in.Pressed && p.last.Pressed:
		for _, cell := range raster.Line(p.last.Position, pos) {
			p.paint(cell, p.palette.Drag)
		}
	}

	p.last = core.PointerState{Pressed: in.Pressed, Position: pos}

	if in.Has(core.ActionClear) {
		p.canvas.CopyFrom(p.background)
		p.logger.Debug("canvas cleared", "preset", p.id)
	}

	p.state.Ticks++
	if p.cfg.Clock.Enabled {
		p.clock.Pace()
	} else {
		p.clock.Tick()
	}

	if in.Has(core.ActionQuit) {
		p.state.Quit = true
	}

	return core.StepResult{State: p.state}
}

// paint writes one canvas cell. Cells come from clamped positions.
func (p *Painter) paint(cell core.Point, c color.RGBA) {
	p.canvas.Set(cell.X, cell.Y, c)
	p.state.Pixels++
}

// Render composites the canvas and, when enabled, the cursor onto dst.
// dst is cleared first; both layers replace pixels verbatim.
func (p *Painter) Render(dst *core.Screen) {
	dst.Clear()
	p.canvas.Draw(dst)
	if p.cfg.Cursor.Enabled {
		p.cursor.Draw(dst)
	}
}

// State returns the current painter state.
func (p *Painter) State() core.PainterState {
	return p.state
}

// Stats returns the session statistics since the last Reset.
// A painter that was never Reset reports zero statistics.
func (p *Painter) Stats() Stats {
	if p.clock == nil {
		return Stats{}
	}
	return Stats{
		Ticks:    p.state.Ticks,
		Strokes:  p.strokes,
		Pixels:   p.state.Pixels,
		Lifetime: p.clock.Lifetime(),
	}
}

// Pointer returns the pointer snapshot recorded by the last Step.
func (p *Painter) Pointer() core.PointerState {
	return p.last
}
