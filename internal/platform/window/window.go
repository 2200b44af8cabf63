// Package window provides the Ebitengine host for the painter: a native
// window whose pointer drives the painter and whose frame is the painter's
// screen, uploaded once per draw.
package window

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/pixel-paint/internal/core"
	"github.com/vovakirdan/pixel-paint/internal/painter"
)

// Game adapts a Painter to ebiten.Game.
type Game struct {
	painter *painter.Painter
	screen  *core.Screen
	pixels  []byte
	input   core.InputFrame
	width   int
	height  int
	logger  *log.Logger
}

// NewGame creates the adapter for a painter already Reset to rc.
func NewGame(p *painter.Painter, rc core.RuntimeConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		painter: p,
		screen:  core.NewScreen(rc.ScreenW, rc.ScreenH),
		input:   core.NewInputFrame(),
		width:   rc.ScreenW,
		height:  rc.ScreenH,
		logger:  logger,
	}
}

// Update polls input and runs one painter tick. Quit is reported to
// Ebitengine only after the tick has completed.
func (g *Game) Update() error {
	x, y := ebiten.CursorPosition()
	g.input.Pointer = core.V(float64(x), float64(y))
	g.input.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.input.Set(core.ActionQuit)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.input.Set(core.ActionClear)
	}

	result := g.painter.Step(g.input)
	g.input.Clear()

	if result.State.Quit {
		g.logger.Debug("quit requested", "ticks", result.State.Ticks)
		return ebiten.Termination
	}
	return nil
}

// Draw composites the painter into the screen buffer and uploads it.
func (g *Game) Draw(dst *ebiten.Image) {
	g.painter.Render(g.screen)
	g.pixels = g.screen.Bytes(g.pixels)
	core.Premultiply(g.pixels)
	dst.WritePixels(g.pixels)
}

// Layout keeps the canvas resolution regardless of the window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Options configures Run.
type Options struct {
	TickRate int   // Ticks per second, 0 keeps Ebitengine's default
	Seed     int64 // Palette seed for Reset
	Logger   *log.Logger
}

// Run opens a window configured from the painter's window settings and
// paints until the user quits. It returns the session statistics.
func Run(p *painter.Painter, opts Options) (painter.Stats, error) {
	wc := p.Config().Window

	tickRate := opts.TickRate
	if tickRate <= 0 {
		tickRate = ebiten.DefaultTPS
	}
	rc := core.RuntimeConfig{
		ScreenW:  wc.Width,
		ScreenH:  wc.Height,
		TickRate: tickRate,
		Seed:     opts.Seed,
	}
	p.Reset(rc)

	ebiten.SetTPS(tickRate)
	ebiten.SetWindowTitle(wc.Title)
	ebiten.SetWindowSize(wc.Width, wc.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetFullscreen(wc.Fullscreen)
	if p.Config().Cursor.Enabled {
		// The overlay replaces the system cursor
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}

	if wc.Icon != "" {
		icon, err := loadIcon(wc.Icon)
		if err != nil {
			return p.Stats(), err
		}
		ebiten.SetWindowIcon([]image.Image{icon})
	}

	game := NewGame(p, rc, opts.Logger)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return p.Stats(), fmt.Errorf("window: %w", err)
	}
	return p.Stats(), nil
}

// loadIcon decodes a PNG window icon.
func loadIcon(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("window: cannot open icon: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("window: cannot decode icon %s: %w", path, err)
	}
	return img, nil
}
