// Package sprite implements owned RGBA pixel buffers positioned in screen
// space and the compositor that clips them onto a draw target.
package sprite

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/pixel-paint/internal/core"
)

// Target is a destination of known size that accepts packed pixel runs.
// core.Screen implements it.
type Target interface {
	Width() int
	Height() int
	DrawPixels(x, y, width, height int, run []color.RGBA)
}

// Sprite is a rectangular row-major pixel buffer with a screen-space origin.
// The pixel at local (x, y) lives at index y*width + x. Origin may be moved
// freely; size and pixel count are fixed at construction.
type Sprite struct {
	Origin core.Vec2

	size   core.Size
	pixels []color.RGBA
}

// New creates a sprite that takes ownership of pixels.
// It panics if len(pixels) does not match the size.
func New(origin core.Vec2, size core.Size, pixels []color.RGBA) *Sprite {
	if len(pixels) != size.Area() {
		panic(fmt.Sprintf("sprite: %d pixels for %dx%d buffer", len(pixels), size.Width, size.Height))
	}
	return &Sprite{
		Origin: origin,
		size:   size,
		pixels: pixels,
	}
}

// NewFilled creates a sprite of the given size with every pixel set to c.
func NewFilled(origin core.Vec2, size core.Size, c color.RGBA) *Sprite {
	pixels := make([]color.RGBA, size.Area())
	for i := range pixels {
		pixels[i] = c
	}
	return New(origin, size, pixels)
}

// Size returns the declared extent of the buffer.
func (s *Sprite) Size() core.Size {
	return s.size
}

// Pixels returns the underlying row-major pixel slice.
func (s *Sprite) Pixels() []color.RGBA {
	return s.pixels
}

// index maps local coordinates to the pixel slice. Out-of-range coordinates
// are a programming error.
func (s *Sprite) index(x, y int) int {
	if x < 0 || x >= s.size.Width || y < 0 || y >= s.size.Height {
		panic(fmt.Sprintf("sprite: (%d,%d) outside %dx%d buffer", x, y, s.size.Width, s.size.Height))
	}
	return y*s.size.Width + x
}

// Set writes c at local (x, y).
func (s *Sprite) Set(x, y int, c color.RGBA) {
	s.pixels[s.index(x, y)] = c
}

// At returns the pixel at local (x, y).
func (s *Sprite) At(x, y int) color.RGBA {
	return s.pixels[s.index(x, y)]
}

// Fill sets every pixel to c.
func (s *Sprite) Fill(c color.RGBA) {
	for i := range s.pixels {
		s.pixels[i] = c
	}
}

// CopyFrom overwrites the pixels with those of other, which must have the same size.
func (s *Sprite) CopyFrom(other *Sprite) {
	if other.size != s.size {
		panic(fmt.Sprintf("sprite: copy %dx%d into %dx%d",
			other.size.Width, other.size.Height, s.size.Width, s.size.Height))
	}
	copy(s.pixels, other.pixels)
}
