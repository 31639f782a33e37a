package ring

import (
	"fmt"

	"github.com/garrettladley/lumi/internal/color"
	"github.com/garrettladley/lumi/internal/geometry"
)

// Style holds the colours a Scene is composed from.
type Style struct {
	Background color.RGB
	Inactive   color.RGB
	Stroke     color.RGB
	Center     color.RGB
	Tick       color.RGB
	// FillAlpha is the opacity of a lit segment over the background.
	FillAlpha float64
	// TickGap and TickLength are in surface units.
	TickGap    float64
	TickLength float64
}

func DefaultStyle() Style {
	return Style{
		Background: color.MustParseHex("#101014"),
		Inactive:   color.MustParseHex("#3a3a44"),
		Stroke:     color.MustParseHex("#8a8a99"),
		Center:     color.MustParseHex("#5a5a66"),
		Tick:       color.MustParseHex("#f5f5f5"),
		FillAlpha:  0.5,
		TickGap:    2,
		TickLength: 6,
	}
}

type Fill struct {
	Segment int
	Polygon geometry.Polygon
	Color   color.RGB
	Active  bool
}

type Line struct {
	From geometry.Point
	To   geometry.Point
}

type CenterButton struct {
	Polygon geometry.Polygon
	Color   color.RGB
	Pressed bool
	Label   string
}

// Scene is a fully resolved frame of the control. Drawing a Scene needs no
// further access to panel state.
type Scene struct {
	Geometry    geometry.Geometry
	Background  color.RGB
	Fills       [geometry.Segments]Fill
	Strokes     []Line
	StrokeColor color.RGB
	Center      CenterButton
	Tick        *Line
	TickColor   color.RGB
}

// Render composes the frame for v. It is pure; the same snapshot always
// yields the same scene.
func Render(v Snapshot, style Style) Scene {
	g := v.Geometry
	scene := Scene{
		Geometry:    g,
		Background:  style.Background,
		StrokeColor: style.Stroke,
		TickColor:   style.Tick,
	}
	if !g.Valid() {
		return scene
	}

	for i, seg := range v.Segments {
		fill := Fill{
			Segment: i,
			Polygon: g.SegmentQuad(i),
			Color:   style.Inactive,
			Active:  seg.On,
		}
		if seg.On {
			fill.Color = seg.Color.Blend(style.Background, style.FillAlpha)
		}
		scene.Fills[i] = fill
	}

	scene.Strokes = strokes(g)

	scene.Center = CenterButton{
		Polygon: g.CenterOctagon(),
		Color:   style.Center,
		Pressed: v.CenterPressed,
		Label:   Label(v),
	}
	if v.CenterPressed {
		scene.Center.Color = v.Color
	}

	if validIndex(v.Focus) {
		from, to := g.FocusTick(v.Focus, style.TickGap, style.TickLength)
		scene.Tick = &Line{From: from, To: to}
	}

	return scene
}

// Label is the center button caption: what pressing it would do.
func Label(v Snapshot) string {
	if validIndex(v.Focus) {
		target := "ON"
		if v.Segments[v.Focus].On {
			target = "OFF"
		}
		return fmt.Sprintf("%s %d", target, v.Focus+1)
	}
	if v.Segments.AllOn() {
		return "ALL OFF"
	}
	return "ALL ON"
}

// strokes outlines both octagons and the eight radial separators.
func strokes(g geometry.Geometry) []Line {
	var (
		outer = g.Vertices(g.Outer)
		inner = g.Vertices(g.Inner)
		lines = make([]Line, 0, 3*geometry.Segments)
	)
	for i := range geometry.Segments {
		next := (i + 1) % geometry.Segments
		lines = append(lines,
			Line{From: outer[i], To: outer[next]},
			Line{From: inner[i], To: inner[next]},
			Line{From: inner[i], To: outer[i]},
		)
	}
	return lines
}
