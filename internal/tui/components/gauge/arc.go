package gauge

import (
	"math"

	drawille "github.com/exrook/drawille-go"
)

const (
	// arc parameters (degrees)
	// screen coords: 0°=right(3 o'clock), 90°=down(6 o'clock), 180°=left(9 o'clock), 270°=up(12 o'clock)
	// start at top, fill clockwise (increasing angle)
	arcStartAngle = 270.0
	arcSweep      = 360.0
	arcThickness  = 3
	// slotGap is the unlit space between neighbouring slots.
	slotGap = 8.0
)

// drawSlot draws slot i of n, clockwise from the top.
func drawSlot(canvas *drawille.Canvas, centerX, centerY, radius float64, i, n int) {
	if n <= 0 {
		return
	}
	span := arcSweep / float64(n)
	gap := min(slotGap, span/2)
	start := arcStartAngle + float64(i)*span + gap/2
	drawArc(canvas, centerX, centerY, radius, start, span-gap)
}

// drawArc draws a thick arc on the canvas from startAngle sweeping through sweepAngle degrees.
// uses the midpoint circle algorithm for clean, gap-free rendering.
// see: https://en.wikipedia.org/wiki/Midpoint_circle_algorithm
func drawArc(canvas *drawille.Canvas, centerX, centerY, radius float64, startAngle, sweepAngle float64) {
	for t := range arcThickness {
		r := int(radius) - t
		if r <= 0 {
			continue
		}
		midpointCircleArc(canvas, int(centerX), int(centerY), r, startAngle, sweepAngle)
	}
}

func midpointCircleArc(canvas *drawille.Canvas, cx, cy, radius int, startAngle, sweepAngle float64) {
	x := radius
	y := 0
	d := 1 - radius // decision parameter

	for x >= y {
		drawOctantPoints(canvas, cx, cy, x, y, startAngle, sweepAngle)

		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// drawOctantPoints draws the 8 symmetric points that fall within the arc.
func drawOctantPoints(canvas *drawille.Canvas, cx, cy, x, y int, startAngle, sweepAngle float64) {
	points := [][2]int{
		{cx + x, cy - y},
		{cx + y, cy - x},
		{cx - y, cy - x},
		{cx - x, cy - y},
		{cx - x, cy + y},
		{cx - y, cy + x},
		{cx + y, cy + x},
		{cx + x, cy + y},
	}

	for _, p := range points {
		if isInArcRange(cx, cy, p[0], p[1], startAngle, sweepAngle) {
			canvas.Set(p[0], p[1])
		}
	}
}

// isInArcRange checks if a point's angle from center lies within sweepAngle
// degrees clockwise of startAngle. startAngle may be any value; it is
// reduced modulo 360.
func isInArcRange(cx, cy, px, py int, startAngle, sweepAngle float64) bool {
	// in screen coords, Y increases downward, so we use (py-cy) directly
	dx := float64(px - cx)
	dy := float64(py - cy)

	angle := math.Atan2(dy, dx) * 180 / math.Pi
	delta := math.Mod(angle-startAngle, 360)
	if delta < 0 {
		delta += 360
	}
	return delta <= sweepAngle
}
