package painter

import (
	"bytes"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-paint/internal/clock"
	"github.com/vovakirdan/pixel-paint/internal/config"
	"github.com/vovakirdan/pixel-paint/internal/core"
)

// newTestPainter returns a 400x200 painter with pacing disabled.
func newTestPainter(t *testing.T, mutate func(*config.PainterConfig)) *Painter {
	t.Helper()
	cfg := config.DefaultPainterConfig()
	cfg.Clock.Enabled = false
	if mutate != nil {
		mutate(&cfg)
	}
	p, err := New("classic", "Classic", cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	p.Reset(core.DefaultConfig())
	return p
}

func frame(x, y float64, pressed bool) core.InputFrame {
	in := core.NewInputFrame()
	in.Pointer = core.V(x, y)
	in.Pressed = pressed
	return in
}

func snapshot(p *Painter) []color.RGBA {
	return append([]color.RGBA(nil), p.canvas.Pixels()...)
}

func changedIndices(before, after []color.RGBA) []int {
	var idx []int
	for i := range before {
		if before[i] != after[i] {
			idx = append(idx, i)
		}
	}
	return idx
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultPainterConfig()
	cfg.Brush.NewPath = "not-a-color"
	if _, err := New("classic", "Classic", cfg); err == nil {
		t.Error("New() should reject an invalid palette")
	}
}

func TestResetTooSmallPanics(t *testing.T) {
	p := newTestPainter(t, nil)
	defer func() {
		if recover() == nil {
			t.Error("Reset() with a 1-pixel axis should panic")
		}
	}()
	p.Reset(core.RuntimeConfig{ScreenW: 1, ScreenH: 200})
}

func TestCursorTracksPointer(t *testing.T) {
	p := newTestPainter(t, nil)

	p.Step(frame(10, 10, false))
	if p.cursor.Origin != core.V(10, 10) {
		t.Errorf("cursor origin = %v, expected (10,10)", p.cursor.Origin)
	}
	if got := p.cursor.Size(); got != core.NewSize(10, 10) {
		t.Errorf("cursor size = %v, expected 10x10", got)
	}
}

func TestPointerClamped(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		expected core.Vec2
	}{
		{"inside", 12.5, 40, core.V(12.5, 40)},
		{"negative", -30, -1, core.V(0, 0)},
		{"beyond", 1000, 250, core.V(399, 199)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestPainter(t, nil)
			p.Step(frame(tc.x, tc.y, false))
			if got := p.Pointer().Position; got != tc.expected {
				t.Errorf("pointer = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPressWritesSinglePixel(t *testing.T) {
	p := newTestPainter(t, nil)

	p.Step(frame(10, 10, false))
	p.Step(frame(5, 5, false))
	before := snapshot(p)

	p.Step(frame(5, 5, true))
	after := snapshot(p)

	changed := changedIndices(before, after)
	if len(changed) != 1 || changed[0] != 5*400+5 {
		t.Fatalf("changed indices = %v, expected [%d]", changed, 5*400+5)
	}
	if after[5*400+5] != core.NewPath {
		t.Errorf("pixel = %v, expected new-path color %v", after[5*400+5], core.NewPath)
	}
	if s := p.Stats(); s.Strokes != 1 || s.Pixels != 1 {
		t.Errorf("stats = %+v, expected 1 stroke and 1 pixel", s)
	}
}

func TestDragWritesLine(t *testing.T) {
	p := newTestPainter(t, nil)

	p.Step(frame(5, 5, true))
	before := snapshot(p)
	p.Step(frame(10, 5, true))
	after := snapshot(p)

	for x := 5; x <= 10; x++ {
		if got := after[5*400+x]; got != core.Drag {
			t.Errorf("pixel (%d,5) = %v, expected drag color", x, got)
		}
	}

	// (5,5) held the new-path color, so it changes too
	changed := changedIndices(before, after)
	if len(changed) != 6 {
		t.Errorf("drag changed %d pixels, expected 6", len(changed))
	}
	if s := p.Stats(); s.Strokes != 1 || s.Pixels != 1+6 {
		t.Errorf("stats = %+v, expected 1 stroke and 7 pixels", s)
	}
}

func TestHeldWithoutMovingWritesNothing(t *testing.T) {
	p := newTestPainter(t, nil)

	p.Step(frame(20, 20, true))
	before := snapshot(p)
	p.Step(frame(20.4, 20.7, true))

	if changed := changedIndices(before, snapshot(p)); len(changed) != 0 {
		t.Errorf("holding still changed %v", changed)
	}
}

func TestReleaseEndsStroke(t *testing.T) {
	p := newTestPainter(t, nil)

	p.Step(frame(0, 0, true))
	p.Step(frame(0, 0, false))
	before := snapshot(p)

	// Moving while released paints nothing
	p.Step(frame(50, 50, false))
	if changed := changedIndices(before, snapshot(p)); len(changed) != 0 {
		t.Errorf("moving released changed %v", changed)
	}

	// Next press is a new stroke, not a line from the old position
	p.Step(frame(60, 60, true))
	if changed := changedIndices(before, snapshot(p)); len(changed) != 1 {
		t.Errorf("new press changed %d pixels, expected 1", len(changed))
	}
	if p.Stats().Strokes != 2 {
		t.Errorf("strokes = %d, expected 2", p.Stats().Strokes)
	}
}

func TestDragClampedToCanvas(t *testing.T) {
	p := newTestPainter(t, nil)

	p.Step(frame(390, 100, true))
	p.Step(frame(5000, 100, true))

	if got := p.canvas.At(399, 100); got != core.Drag {
		t.Errorf("edge pixel = %v, expected drag color", got)
	}
}

func TestClearAction(t *testing.T) {
	p := newTestPainter(t, nil)

	p.Step(frame(5, 5, true))
	p.Step(frame(50, 5, true))

	in := frame(50, 5, false)
	in.Set(core.ActionClear)
	p.Step(in)

	for i, px := range p.canvas.Pixels() {
		if px != core.Transparent {
			t.Fatalf("pixel %d = %v after clear, expected background", i, px)
		}
	}
}

func TestClearRestoresGradient(t *testing.T) {
	p := newTestPainter(t, func(c *config.PainterConfig) { c.Canvas.Gradient = true })
	original := snapshot(p)

	p.Step(frame(5, 5, true))
	in := frame(5, 5, false)
	in.Set(core.ActionClear)
	p.Step(in)

	if changed := changedIndices(original, snapshot(p)); len(changed) != 0 {
		t.Errorf("clear left %d pixels different from the gradient", len(changed))
	}
}

func TestQuitAction(t *testing.T) {
	p := newTestPainter(t, nil)

	if res := p.Step(frame(0, 0, false)); res.State.Quit {
		t.Fatal("Quit set without quit action")
	}

	in := frame(0, 0, false)
	in.Set(core.ActionQuit)
	res := p.Step(in)
	if !res.State.Quit {
		t.Error("quit action should set Quit")
	}
	if res.State.Ticks != 2 {
		t.Errorf("ticks = %d, expected 2", res.State.Ticks)
	}
}

func TestRender(t *testing.T) {
	p := newTestPainter(t, nil)
	p.Step(frame(100, 50, false))
	p.Step(frame(30, 30, true))

	screen := core.NewScreen(400, 200)
	screen.Fill(core.Black)
	p.Render(screen)

	// Painted pixel under the cursor's hotspot is covered by the arrow
	if got := screen.At(30, 30); got != core.White {
		t.Errorf("cursor hotspot = %v, expected white", got)
	}
	// Transparent cursor pixels replace the canvas verbatim
	if got := screen.At(35, 33); got != core.Transparent {
		t.Errorf("cursor background = %v, expected transparent", got)
	}
	// Canvas shows through outside the cursor
	if got := screen.At(0, 0); got != core.Transparent {
		t.Errorf("canvas pixel = %v, expected cleared background", got)
	}
	if got := p.canvas.At(30, 30); got != core.NewPath {
		t.Errorf("canvas (30,30) = %v, expected new-path color", got)
	}
}

func TestRenderWithoutCursor(t *testing.T) {
	p := newTestPainter(t, func(c *config.PainterConfig) { c.Cursor.Enabled = false })
	p.Step(frame(30, 30, true))

	screen := core.NewScreen(400, 200)
	p.Render(screen)

	if got := screen.At(30, 30); got != core.NewPath {
		t.Errorf("screen (30,30) = %v, expected new-path color", got)
	}
}

func TestRenderClipsToSmallerScreen(t *testing.T) {
	p := newTestPainter(t, nil)
	p.Step(frame(395, 195, false))

	screen := core.NewScreen(100, 50)
	p.Render(screen) // must not panic
	if screen.Width() != 100 {
		t.Fatal("screen resized")
	}
}

type fakeTime struct {
	now    time.Time
	sleeps []time.Duration
}

func (f *fakeTime) Now() time.Time          { return f.now }
func (f *fakeTime) Sleep(d time.Duration)   { f.sleeps = append(f.sleeps, d) }
func (f *fakeTime) Advance(d time.Duration) { f.now = f.now.Add(d) }

func TestStepPaces(t *testing.T) {
	ft := &fakeTime{now: time.Unix(0, 0)}
	cfg := config.DefaultPainterConfig()

	p, err := New("classic", "Classic", cfg,
		WithClockOptions(clock.WithNow(ft.Now), clock.WithSleep(ft.Sleep)))
	if err != nil {
		t.Fatal(err)
	}
	p.Reset(core.DefaultConfig())

	ft.Advance(10 * time.Millisecond)
	p.Step(frame(0, 0, false))
	ft.Advance(20 * time.Millisecond)
	p.Step(frame(0, 0, false))

	expected := []time.Duration{25 * time.Millisecond, 15 * time.Millisecond}
	if len(ft.sleeps) != len(expected) {
		t.Fatalf("sleeps = %v, expected %v", ft.sleeps, expected)
	}
	for i := range expected {
		if ft.sleeps[i] != expected[i] {
			t.Errorf("sleep %d = %v, expected %v", i, ft.sleeps[i], expected[i])
		}
	}
	if got := p.Stats().Lifetime; got != 30*time.Millisecond {
		t.Errorf("lifetime = %v, expected 30ms", got)
	}
}

func TestPacingDisabledNeverSleeps(t *testing.T) {
	ft := &fakeTime{now: time.Unix(0, 0)}
	cfg := config.DefaultPainterConfig()
	cfg.Clock.Enabled = false

	p, err := New("classic", "Classic", cfg,
		WithClockOptions(clock.WithNow(ft.Now), clock.WithSleep(ft.Sleep)))
	if err != nil {
		t.Fatal(err)
	}
	p.Reset(core.DefaultConfig())

	for i := 0; i < 5; i++ {
		ft.Advance(time.Millisecond)
		p.Step(frame(0, 0, false))
	}
	if len(ft.sleeps) != 0 {
		t.Errorf("sleeps = %v, expected none", ft.sleeps)
	}
	if got := p.Stats().Lifetime; got != 5*time.Millisecond {
		t.Errorf("lifetime = %v, expected 5ms", got)
	}
}

func TestClockReportUsesPainterLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	cfg := config.DefaultPainterConfig()
	cfg.Clock.Enabled = false
	cfg.Clock.ReportEvery = 2

	p, err := New("classic", "Classic", cfg, WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}
	p.Reset(core.DefaultConfig())
	p.Step(frame(0, 0, false))
	p.Step(frame(0, 0, false))

	out := buf.String()
	if !strings.Contains(out, "painter reset") || !strings.Contains(out, "tick=2") {
		t.Errorf("log output missing reset or clock report:\n%s", out)
	}
}

func TestResetClearsSession(t *testing.T) {
	p := newTestPainter(t, nil)
	p.Step(frame(5, 5, true))
	p.Step(frame(9, 9, true))

	p.Reset(core.RuntimeConfig{ScreenW: 64, ScreenH: 32})

	if s := p.Stats(); s.Ticks != 0 || s.Strokes != 0 || s.Pixels != 0 {
		t.Errorf("stats after reset = %+v, expected zero", s)
	}
	if p.Pointer().Pressed {
		t.Error("pointer history should reset")
	}
	if got := p.canvas.Size(); got != core.NewSize(64, 32) {
		t.Errorf("canvas size = %v, expected 64x32", got)
	}

	// A held button after Reset starts a new stroke
	p.Step(frame(3, 3, true))
	if p.Stats().Strokes != 1 {
		t.Error("first press after reset should count as a stroke")
	}
}

func TestStatsBeforeReset(t *testing.T) {
	p, err := New("classic", "Classic", config.DefaultPainterConfig())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if s := p.Stats(); s != (Stats{}) {
		t.Errorf("Stats() before Reset = %+v, expected zero", s)
	}
}
