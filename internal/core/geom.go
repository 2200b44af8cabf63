// Package core provides fundamental types and utilities for the painter.
// It contains no external dependencies (especially no Bubble Tea or Ebitengine)
// to keep painting logic pure and testable.
package core

import (
	"cmp"
	"fmt"
)

// Vec2 is a position or offset in continuous screen space.
type Vec2 struct {
	X, Y float64
}

// V is a convenience constructor for Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Truncate converts the vector to an integer cell, truncating toward zero.
func (v Vec2) Truncate() Point {
	return Point{X: int(v.X), Y: int(v.Y)}
}

// Point is an integer pixel coordinate.
// X increases to the right, Y increases downward.
type Point struct {
	X, Y int
}

// P is a convenience constructor for Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size is the integer extent of a pixel buffer.
// Zero is degenerate but legal and produces empty buffers.
type Size struct {
	Width  int
	Height int
}

// NewSize creates a size. Negative extents are a programming error and panic.
func NewSize(width, height int) Size {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("core: negative size %dx%d", width, height))
	}
	return Size{Width: width, Height: height}
}

// Area returns the number of pixels covered by the size.
func (s Size) Area() int {
	return s.Width * s.Height
}

// Empty reports whether the size covers no pixels.
func (s Size) Empty() bool {
	return s.Width == 0 || s.Height == 0
}

// Clamp restricts value to [lo, hi].
// It panics unless lo < hi: a degenerate range is a logic defect, not bad input.
func Clamp[T cmp.Ordered](value, lo, hi T) T {
	if !(lo < hi) {
		panic(fmt.Sprintf("core: clamp range [%v, %v] is empty", lo, hi))
	}
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
