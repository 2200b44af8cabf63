package sprite

import (
	"image/color"
	"math/rand"

	"github.com/vovakirdan/pixel-paint/internal/core"
)

// arrowArm is the length of the arrow cursor's top and left arms.
const arrowArm = 6

// Arrow builds a size x size arrow cursor: a short top arm, a short left arm
// and the full diagonal, drawn in c on a transparent background.
func Arrow(size int, c color.RGBA) *Sprite {
	s := NewFilled(core.Vec2{}, core.NewSize(size, size), core.Transparent)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			onArm := (y == 0 && x < arrowArm) || (x == 0 && y < arrowArm)
			if onArm || x == y {
				s.Set(x, y, c)
			}
		}
	}
	return s
}

// Crosshair builds a size x size plus-shaped cursor whose hotspot is the
// top-left pixel, matching the arrow.
func Crosshair(size int, c color.RGBA) *Sprite {
	s := NewFilled(core.Vec2{}, core.NewSize(size, size), core.Transparent)
	mid := size / 2
	for i := 0; i < size; i++ {
		s.Set(i, mid, c)
		s.Set(mid, i, c)
	}
	return s
}

// Block builds a solid size x size cursor.
func Block(size int, c color.RGBA) *Sprite {
	return NewFilled(core.Vec2{}, core.NewSize(size, size), c)
}

// Gradient fills s with a generated palette: a diagonal blend between two
// colors picked from seed. The same seed always yields the same pixels.
func Gradient(s *Sprite, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	from := randomColor(rng)
	to := randomColor(rng)

	w, h := s.size.Width, s.size.Height
	span := w + h - 2
	if span <= 0 {
		span = 1
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.Set(x, y, lerp(from, to, x+y, span))
		}
	}
}

func randomColor(rng *rand.Rand) color.RGBA {
	return color.RGBA{
		R: uint8(rng.Intn(128)),
		G: uint8(rng.Intn(128)),
		B: uint8(rng.Intn(128)),
		A: 255,
	}
}

// lerp blends a toward b by step/span in integer arithmetic.
func lerp(a, b color.RGBA, step, span int) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8((int(x)*(span-step) + int(y)*step) / span)
	}
	return color.RGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: 255,
	}
}
