// Package ring rasterises a ring.Scene into coloured braille text. One braille
// dot is one unit of the scene's surface, so a scene for an N-dot surface
// occupies N/2 columns and N/4 rows.
package ring

import (
	"image/color"
	"math"

	"charm.land/lipgloss/v2"
	drawille "github.com/exrook/drawille-go"

	"github.com/garrettladley/lumi/internal/geometry"
	"github.com/garrettladley/lumi/internal/ring"
	"github.com/garrettladley/lumi/internal/tui/components/braille"
)

type Component struct {
	Cols       int
	Rows       int
	LabelColor color.Color
}

func New(cols, rows int, labelColor color.Color) Component {
	return Component{Cols: cols, Rows: rows, LabelColor: labelColor}
}

// SurfaceSize is the largest square surface, in dots, that fits in the given
// cells.
func SurfaceSize(cols, rows int) int {
	return max(0, min(cols*braille.DotsPerCol, rows*braille.DotsPerRow))
}

// CellsFor is the number of columns and rows a surface of size dots needs.
func CellsFor(size int) (cols, rows int) {
	return ceilDiv(size, braille.DotsPerCol), ceilDiv(size, braille.DotsPerRow)
}

// DotCenter maps a cell relative to the component's top-left corner to the
// surface point at the middle of that cell.
func DotCenter(col, row int) geometry.Point {
	return geometry.Point{
		X: float64(col*braille.DotsPerCol) + braille.DotsPerCol/2,
		Y: float64(row*braille.DotsPerRow) + braille.DotsPerRow/2,
	}
}

// Render redraws the whole scene. Fills use every other dot so lit segments
// read as translucent; a pressed center is drawn solid.
func (c Component) Render(scene ring.Scene) string {
	if c.Cols <= 0 || c.Rows <= 0 {
		return ""
	}
	if !scene.Geometry.Valid() {
		return lipgloss.NewStyle().Width(c.Cols).Height(c.Rows).Render("")
	}

	var (
		width  = c.Cols * braille.DotsPerCol
		height = c.Rows * braille.DotsPerRow
		canvas = drawille.NewCanvas()
		layers = make([]braille.Layer, 0, len(scene.Fills)+3)
	)

	frame := func(draw func(*drawille.Canvas), col color.Color) {
		canvas.Clear()
		draw(&canvas)
		layers = append(layers, braille.Layer{Frame: braille.Frame(&canvas, width, height), Color: col})
	}

	for _, fill := range scene.Fills {
		frame(func(cv *drawille.Canvas) { fillPolygon(cv, fill.Polygon, false) }, fill.Color)
	}
	frame(func(cv *drawille.Canvas) {
		fillPolygon(cv, scene.Center.Polygon, scene.Center.Pressed)
	}, scene.Center.Color)
	frame(func(cv *drawille.Canvas) {
		for _, l := range scene.Strokes {
			drawLine(cv, l.From, l.To)
		}
	}, scene.StrokeColor)
	if scene.Tick != nil {
		frame(func(cv *drawille.Canvas) { drawLine(cv, scene.Tick.From, scene.Tick.To) }, scene.TickColor)
	}

	art := braille.Compose(layers...)

	label := lipgloss.NewStyle().
		Foreground(c.LabelColor).
		Bold(true).
		Render(scene.Center.Label)

	return braille.Overlay(art, lipgloss.Place(
		c.Cols,
		c.Rows,
		lipgloss.Center,
		lipgloss.Center,
		label,
	))
}

// fillPolygon sets the dots whose centers fall inside poly; sparse fills use
// a checkerboard.
func fillPolygon(canvas *drawille.Canvas, poly geometry.Polygon, solid bool) {
	if len(poly) < 3 {
		return
	}
	lo, hi := poly.Bounds()
	for y := int(math.Floor(lo.Y)); y <= int(math.Ceil(hi.Y)); y++ {
		if y < 0 {
			continue
		}
		for x := int(math.Floor(lo.X)); x <= int(math.Ceil(hi.X)); x++ {
			if x < 0 || (!solid && (x+y)%2 != 0) {
				continue
			}
			if poly.Contains(geometry.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}) {
				canvas.Set(x, y)
			}
		}
	}
}

// drawLine plots the segment with Bresenham's algorithm.
func drawLine(canvas *drawille.Canvas, from, to geometry.Point) {
	var (
		x0, y0 = int(math.Floor(from.X)), int(math.Floor(from.Y))
		x1, y1 = int(math.Floor(to.X)), int(math.Floor(to.Y))
		dx     = abs(x1 - x0)
		dy     = -abs(y1 - y0)
		sx     = sign(x1 - x0)
		sy     = sign(y1 - y0)
		e      = dx + dy
	)

	for {
		if x0 >= 0 && y0 >= 0 {
			canvas.Set(x0, y0)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }
