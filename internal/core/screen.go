package core

import (
	"fmt"
	"image/color"
)

// Screen is the frame-buffer-sized draw target handed to the painter each frame.
// It decouples compositing from the host, which only has to present the pixels.
// Screen has a fixed size; hosts that change resolution create a new one.
type Screen struct {
	width  int
	height int
	pixels []color.RGBA
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	size := NewSize(width, height)
	return &Screen{
		width:  size.Width,
		height: size.Height,
		pixels: make([]color.RGBA, size.Area()),
	}
}

// Width returns the screen width in pixels.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in pixels.
func (s *Screen) Height() int {
	return s.height
}

// Clear resets every pixel to transparent black.
func (s *Screen) Clear() {
	for i := range s.pixels {
		s.pixels[i] = Transparent
	}
}

// Fill sets every pixel to c.
func (s *Screen) Fill(c color.RGBA) {
	for i := range s.pixels {
		s.pixels[i] = c
	}
}

// At returns the pixel at (x, y).
// Returns Transparent for out-of-bounds coordinates.
func (s *Screen) At(x, y int) color.RGBA {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Transparent
	}
	return s.pixels[y*s.width+x]
}

// DrawPixels copies a tightly packed run of width*height pixels into the
// rectangle whose top-left corner is (x, y). Pixels replace the destination
// verbatim, alpha included. The rectangle must lie inside the screen.
func (s *Screen) DrawPixels(x, y, width, height int, run []color.RGBA) {
	if len(run) != width*height {
		panic(fmt.Sprintf("core: pixel run of %d for %dx%d rect", len(run), width, height))
	}
	if x < 0 || y < 0 || x+width > s.width || y+height > s.height {
		panic(fmt.Sprintf("core: rect %dx%d at (%d,%d) outside %dx%d screen",
			width, height, x, y, s.width, s.height))
	}

	for row := 0; row < height; row++ {
		dst := (y+row)*s.width + x
		copy(s.pixels[dst:dst+width], run[row*width:(row+1)*width])
	}
}

// Bytes writes the screen as RGBA bytes (4 per pixel, row-major) into dst,
// growing it if needed, and returns it. Hosts upload this slice directly.
func (s *Screen) Bytes(dst []byte) []byte {
	n := len(s.pixels) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]

	for i, p := range s.pixels {
		dst[i*4] = p.R
		dst[i*4+1] = p.G
		dst[i*4+2] = p.B
		dst[i*4+3] = p.A
	}
	return dst
}

// Premultiply converts straight-alpha RGBA bytes, as returned by Bytes, to
// premultiplied alpha in place. GPU hosts upload premultiplied pixels.
func Premultiply(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		a := uint16(pix[i+3])
		if a == 0xff {
			continue
		}
		pix[i] = uint8(uint16(pix[i]) * a / 0xff)
		pix[i+1] = uint8(uint16(pix[i+1]) * a / 0xff)
		pix[i+2] = uint8(uint16(pix[i+2]) * a / 0xff)
	}
}
