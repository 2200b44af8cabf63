package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-paint/internal/core"
)

// halfBlock shows the upper pixel as foreground and the lower as background.
const halfBlock = "▀"

// cellColors is the pixel pair shown by one terminal cell.
type cellColors struct {
	top, bottom color.RGBA
}

// Renderer converts a Screen into terminal rows, two pixels per cell.
// Styles are cached per color pair; a Renderer must not be shared between
// goroutines.
type Renderer struct {
	lg     *lipgloss.Renderer
	styles map[cellColors]lipgloss.Style
}

// NewRenderer creates a renderer bound to a lipgloss renderer. Passing nil
// uses the default renderer for stdout; SSH sessions pass their own.
func NewRenderer(lg *lipgloss.Renderer) *Renderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	return &Renderer{
		lg:     lg,
		styles: make(map[cellColors]lipgloss.Style),
	}
}

// style returns the cached style for a pixel pair. Fully transparent pixels
// keep the terminal's default color.
func (r *Renderer) style(c cellColors) lipgloss.Style {
	if s, ok := r.styles[c]; ok {
		return s
	}

	s := r.lg.NewStyle()
	if c.top.A != 0 {
		s = s.Foreground(hexColor(c.top))
	}
	if c.bottom.A != 0 {
		s = s.Background(hexColor(c.bottom))
	}
	r.styles[c] = s
	return s
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (r *Renderer) RenderScreen(s *core.Screen) string {
	rows := (s.Height() + PixelsPerCell - 1) / PixelsPerCell

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*rows*4 + rows)

	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}

		y := row * PixelsPerCell
		x := 0
		for x < s.Width() {
			start := cellColors{top: s.At(x, y), bottom: s.At(x, y+1)}

			// Collect consecutive cells with the same colors
			n := 0
			for x < s.Width() && (cellColors{top: s.At(x, y), bottom: s.At(x, y+1)}) == start {
				n++
				x++
			}
			sb.WriteString(r.style(start).Render(strings.Repeat(halfBlock, n)))
		}
	}
	return sb.String()
}
