package sprite

import (
	"image/color"

	"github.com/vovakirdan/pixel-paint/internal/core"
)

// Blit is the visible part of a sprite, ready to hand to a Target.
type Blit struct {
	X, Y          int // top-left corner in destination coordinates
	Width, Height int
	Pixels        []color.RGBA // Width*Height pixels, row-major
}

// Composite computes the portion of s visible on a destWidth x destHeight
// destination. Parts of the sprite outside [0, destWidth) x [0, destHeight)
// are dropped. It returns false when nothing is visible.
//
// Rows are read with the sprite's declared width as stride while iterating
// only the clipped extent; a clipped stride would shear the image.
func (s *Sprite) Composite(destWidth, destHeight int) (Blit, bool) {
	ox, oy := int(s.Origin.X), int(s.Origin.Y)

	fromX := core.Max(0, ox)
	toX := core.Min(ox+s.size.Width, destWidth)
	fromY := core.Max(0, oy)
	toY := core.Min(oy+s.size.Height, destHeight)

	width := toX - fromX
	height := toY - fromY
	if width <= 0 || height <= 0 {
		return Blit{}, false
	}

	offsetX, offsetY := 0, 0
	if ox < 0 {
		offsetX = -ox
	}
	if oy < 0 {
		offsetY = -oy
	}

	run := make([]color.RGBA, 0, width*height)
	for y := offsetY; y < offsetY+height; y++ {
		row := y * s.size.Width
		run = append(run, s.pixels[row+offsetX:row+offsetX+width]...)
	}

	return Blit{
		X:      fromX,
		Y:      fromY,
		Width:  width,
		Height: height,
		Pixels: run,
	}, true
}

// Draw composites s onto dst. Off-screen sprites produce no draw call.
func (s *Sprite) Draw(dst Target) {
	b, ok := s.Composite(dst.Width(), dst.Height())
	if !ok {
		return
	}
	dst.DrawPixels(b.X, b.Y, b.Width, b.Height, b.Pixels)
}
