package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pixel-paint/internal/core"
)

// PixelsPerCell is the number of canvas rows drawn in one terminal row.
const PixelsPerCell = 2

// pointerTracker folds terminal mouse events into the per-tick pointer state
// the painter expects. A click released before the next tick is still
// reported as pressed for one tick.
type pointerTracker struct {
	position core.Vec2
	down     bool
	latched  bool
}

// handle records a mouse event. Terminal cells map to the upper pixel of
// their half-block.
func (p *pointerTracker) handle(msg tea.MouseMsg) {
	p.position = core.V(float64(msg.X), float64(msg.Y*PixelsPerCell))

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			p.down = true
			p.latched = true
		}
	case tea.MouseActionRelease:
		// Some terminals report releases without a button.
		p.down = false
	case tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonLeft && !p.down {
			p.down = true
			p.latched = true
		}
	}
}

// apply writes the pointer into frame and consumes the latch.
func (p *pointerTracker) apply(frame *core.InputFrame) {
	frame.Pointer = p.position
	frame.Pressed = p.down || p.latched
	p.latched = false
}
