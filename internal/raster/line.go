// Package raster converts continuous geometry into integer pixel cells.
package raster

import (
	"math"

	"github.com/vovakirdan/pixel-paint/internal/core"
)

// Spacing returns how many dominant-axis steps pass per minor-axis step for
// a segment with the given integer deltas. Pure horizontal or vertical
// segments have a spacing of 1.
func Spacing(deltaX, deltaY int) float64 {
	if deltaX == 0 || deltaY == 0 {
		return 1.0
	}
	dx := float64(core.Abs(deltaX))
	dy := float64(core.Abs(deltaY))
	return math.Max(dx/dy, dy/dx)
}

// Line returns the cells covered by the segment from -> to, in order from
// the start cell to the destination cell inclusive. Endpoints are truncated
// to integer cells first.
//
// The longer axis is walked one cell at a time (ties walk y). The shorter
// axis advances by one cell every Spacing steps, so it moves in constant runs
// and lands exactly on the destination. Identical cells yield no points: a
// single click is drawn by the caller.
func Line(from, to core.Vec2) []core.Point {
	start := from.Truncate()
	dest := to.Truncate()

	deltaX := dest.X - start.X
	deltaY := dest.Y - start.Y
	if deltaX == 0 && deltaY == 0 {
		return nil
	}

	if core.Abs(deltaX) > core.Abs(deltaY) {
		return walk(start.X, deltaX, start.Y, deltaY, func(major, minor int) core.Point {
			return core.P(major, minor)
		})
	}
	return walk(start.Y, deltaY, start.X, deltaX, func(major, minor int) core.Point {
		return core.P(minor, major)
	})
}

// walk steps the major axis from majorStart through majorStart+majorDelta.
// After i steps the minor axis has advanced floor(i / spacing) cells; with
// spacing = |majorDelta| / |minorDelta| that is i*|minorDelta|/|majorDelta|,
// computed in integers so the final cell is exact.
func walk(majorStart, majorDelta, minorStart, minorDelta int, point func(major, minor int) core.Point) []core.Point {
	steps := core.Abs(majorDelta)
	runs := core.Abs(minorDelta)
	majorStep := core.Sign(majorDelta)
	minorStep := core.Sign(minorDelta)

	points := make([]core.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		advanced := i * runs / steps
		points = append(points, point(majorStart+i*majorStep, minorStart+advanced*minorStep))
	}
	return points
}
