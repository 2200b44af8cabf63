package raster

import (
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/pixel-paint/internal/core"
)

func TestLineSamePoint(t *testing.T) {
	tests := []struct {
		name     string
		from, to core.Vec2
	}{
		{"identical", core.V(5, 5), core.V(5, 5)},
		{"same cell after truncation", core.V(5.1, 5.9), core.V(5.8, 5.2)},
		{"origin", core.V(0, 0), core.V(0.99, 0.5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Line(tc.from, tc.to); len(got) != 0 {
				t.Errorf("Line(%v, %v) = %v, expected empty", tc.from, tc.to, got)
			}
		})
	}
}

func TestLineHorizontal(t *testing.T) {
	got := Line(core.V(5, 5), core.V(10, 5))
	expected := []core.Point{
		core.P(5, 5), core.P(6, 5), core.P(7, 5), core.P(8, 5), core.P(9, 5), core.P(10, 5),
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Line() = %v, expected %v", got, expected)
	}
}

func TestLineReversedVertical(t *testing.T) {
	got := Line(core.V(3, 4), core.V(3, 1))
	expected := []core.Point{core.P(3, 4), core.P(3, 3), core.P(3, 2), core.P(3, 1)}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Line() = %v, expected %v", got, expected)
	}
}

func TestLineDiagonalTieWalksY(t *testing.T) {
	got := Line(core.V(0, 0), core.V(3, -3))
	expected := []core.Point{core.P(0, 0), core.P(1, -1), core.P(2, -2), core.P(3, -3)}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Line() = %v, expected %v", got, expected)
	}
}

func TestLineShallowSlopeRuns(t *testing.T) {
	// 6 across, 2 down: spacing 3, so y advances after every third x step.
	got := Line(core.V(0, 0), core.V(6, 2))
	expected := []core.Point{
		core.P(0, 0), core.P(1, 0), core.P(2, 0),
		core.P(3, 1), core.P(4, 1), core.P(5, 1),
		core.P(6, 2),
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Line() = %v, expected %v", got, expected)
	}
}

func TestLineSteepSlopeRuns(t *testing.T) {
	// 2 left, 5 down: y dominant, spacing 2.5.
	got := Line(core.V(10, 0), core.V(8, 5))
	expected := []core.Point{
		core.P(10, 0), core.P(10, 1), core.P(10, 2),
		core.P(9, 3), core.P(9, 4),
		core.P(8, 5),
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Line() = %v, expected %v", got, expected)
	}
}

func TestLineProperties(t *testing.T) {
	endpoints := []struct{ from, to core.Vec2 }{
		{core.V(0, 0), core.V(399, 1)},
		{core.V(399, 199), core.V(0, 0)},
		{core.V(12.7, 80.2), core.V(13.1, 3.9)},
		{core.V(50, 50), core.V(57, 43)},
		{core.V(0, 100), core.V(250, 37)},
		{core.V(7, 7), core.V(8, 9)},
		{core.V(100, 20), core.V(20, 21)},
	}

	for _, tc := range endpoints {
		pts := Line(tc.from, tc.to)
		start, dest := tc.from.Truncate(), tc.to.Truncate()
		dx, dy := dest.X-start.X, dest.Y-start.Y

		dominant := core.Abs(dy)
		if core.Abs(dx) > core.Abs(dy) {
			dominant = core.Abs(dx)
		}
		if len(pts) != dominant+1 {
			t.Errorf("Line(%v, %v) has %d points, expected %d", tc.from, tc.to, len(pts), dominant+1)
			continue
		}

		if pts[0] != start {
			t.Errorf("Line(%v, %v) starts at %v, expected %v", tc.from, tc.to, pts[0], start)
		}
		if pts[len(pts)-1] != dest {
			t.Errorf("Line(%v, %v) ends at %v, expected %v", tc.from, tc.to, pts[len(pts)-1], dest)
		}

		// Gap-free: each step moves at most one cell on either axis, and the
		// dominant axis moves exactly one.
		for i := 1; i < len(pts); i++ {
			stepX := core.Abs(pts[i].X - pts[i-1].X)
			stepY := core.Abs(pts[i].Y - pts[i-1].Y)
			if stepX > 1 || stepY > 1 || stepX+stepY == 0 {
				t.Errorf("Line(%v, %v) jumps from %v to %v", tc.from, tc.to, pts[i-1], pts[i])
			}
		}

		// The minor axis never advances faster than once per spacing steps.
		spacing := Spacing(dx, dy)
		minorMoves := 0
		for i := 1; i < len(pts); i++ {
			if core.Abs(dx) > core.Abs(dy) {
				if pts[i].Y != pts[i-1].Y {
					minorMoves++
				}
			} else if pts[i].X != pts[i-1].X {
				minorMoves++
			}
			if float64(minorMoves) > math.Floor(float64(i)/spacing+1e-9) {
				t.Errorf("Line(%v, %v) minor axis ahead of spacing at step %d", tc.from, tc.to, i)
				break
			}
		}
	}
}

func TestLineDeterministic(t *testing.T) {
	from, to := core.V(3.3, 190.8), core.V(371.2, 12.5)
	first := Line(from, to)
	for i := 0; i < 5; i++ {
		if !reflect.DeepEqual(Line(from, to), first) {
			t.Fatal("Line() should return identical output for identical input")
		}
	}
}

func TestSpacing(t *testing.T) {
	tests := []struct {
		dx, dy   int
		expected float64
	}{
		{5, 0, 1.0},
		{0, -7, 1.0},
		{6, 2, 3.0},
		{-2, 6, 3.0},
		{4, 4, 1.0},
		{2, 5, 2.5},
	}

	for _, tc := range tests {
		if got := Spacing(tc.dx, tc.dy); got != tc.expected {
			t.Errorf("Spacing(%d, %d) = %v, expected %v", tc.dx, tc.dy, got, tc.expected)
		}
	}
}
