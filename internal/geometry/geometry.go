// Package geometry maps 2-D points onto the eight ring segments of an
// octagonal control and computes the vertices used to draw it.
//
// Coordinates are screen coordinates: x grows to the right, y grows downward.
package geometry

import "math"

const (
	Segments = 8

	// segmentSpan is the angular width of one segment.
	segmentSpan = 2 * math.Pi / Segments
	// rotation aligns segment boundaries with flat octagon edges rather than
	// vertices.
	rotation = math.Pi / Segments

	outerRatio = 0.4
	innerRatio = 0.6
)

type Point struct {
	X float64
	Y float64
}

func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

type HitKind uint8

const (
	HitOutside HitKind = iota
	HitCenter
	HitSegment
)

func (k HitKind) String() string {
	switch k {
	case HitCenter:
		return "center"
	case HitSegment:
		return "segment"
	default:
		return "outside"
	}
}

// Hit is the result of classifying a point. Segment is only meaningful when
// Kind is HitSegment.
type Hit struct {
	Kind    HitKind
	Segment int
}

func Outside() Hit { return Hit{Kind: HitOutside} }

func Center() Hit { return Hit{Kind: HitCenter} }

func Segment(i int) Hit { return Hit{Kind: HitSegment, Segment: i} }

func (h Hit) IsSegment() bool { return h.Kind == HitSegment }

// Geometry describes two concentric regular octagons around Center. The zero
// value classifies every point as outside.
type Geometry struct {
	Center Point
	Outer  float64
	Inner  float64
}

// New derives the geometry for a square surface of the given side length.
func New(size float64) Geometry {
	if size <= 0 {
		return Geometry{}
	}
	outer := size * outerRatio
	return Geometry{
		Center: Point{X: size / 2, Y: size / 2},
		Outer:  outer,
		Inner:  outer * innerRatio,
	}
}

// Valid reports whether 0 < Inner < Outer.
func (g Geometry) Valid() bool {
	return g.Inner > 0 && g.Inner < g.Outer
}

// Vertices returns the eight vertices of a regular octagon of the given
// radius, vertex i at angle i·π/4 − π/8.
func (g Geometry) Vertices(radius float64) [Segments]Point {
	var pts [Segments]Point
	for i := range Segments {
		theta := float64(i)*segmentSpan - rotation
		pts[i] = Point{
			X: g.Center.X + radius*math.Cos(theta),
			Y: g.Center.Y + radius*math.Sin(theta),
		}
	}
	return pts
}

// Classify maps p onto the center button, one of the eight segments, or
// nothing. Boundaries are half-open: a point exactly on the inner radius is
// the center, and a point exactly on a segment boundary belongs to the
// segment whose span starts there.
func (g Geometry) Classify(p Point) Hit {
	if !g.Valid() {
		return Outside()
	}

	d := p.Dist(g.Center)
	if d <= g.Inner {
		return Center()
	}
	if d > g.Outer {
		return Outside()
	}

	v := p.Sub(g.Center)
	angle := normalize(math.Atan2(v.Y, v.X))
	adjusted := normalize(angle + rotation)

	i := int(math.Floor(adjusted / segmentSpan))
	return Segment(min(max(i, 0), Segments-1))
}

// SegmentMidAngle is the angle halfway between vertices i and i+1.
func SegmentMidAngle(i int) float64 {
	return float64(i)*segmentSpan - rotation + segmentSpan/2
}

// SegmentQuad is the quadrilateral bounded by outer vertices i, i+1 and inner
// vertices i+1, i, in that order.
func (g Geometry) SegmentQuad(i int) Polygon {
	var (
		outer = g.Vertices(g.Outer)
		inner = g.Vertices(g.Inner)
		next  = (i + 1) % Segments
	)
	return Polygon{outer[i], outer[next], inner[next], inner[i]}
}

// CenterOctagon is the inner octagon drawn as the center button.
func (g Geometry) CenterOctagon() Polygon {
	v := g.Vertices(g.Inner)
	return Polygon(v[:])
}

// OuterOctagon is the outer boundary of the ring.
func (g Geometry) OuterOctagon() Polygon {
	v := g.Vertices(g.Outer)
	return Polygon(v[:])
}

// FocusTick returns a radial tick of the given length starting just outside
// the outer octagon, centered on segment i.
func (g Geometry) FocusTick(i int, gap, length float64) (Point, Point) {
	var (
		theta = SegmentMidAngle(i)
		// the edge midpoint of a regular octagon sits at the apothem.
		apothem = g.Outer * math.Cos(rotation)
		dir     = Point{X: math.Cos(theta), Y: math.Sin(theta)}
		from    = apothem + gap
		to      = from + length
	)
	return Point{X: g.Center.X + dir.X*from, Y: g.Center.Y + dir.Y*from},
		Point{X: g.Center.X + dir.X*to, Y: g.Center.Y + dir.Y*to}
}

// SegmentPoint is a point inside segment i, halfway between the two radii.
func (g Geometry) SegmentPoint(i int) Point {
	var (
		theta = SegmentMidAngle(i)
		r     = (g.Inner + g.Outer) / 2
	)
	return Point{X: g.Center.X + r*math.Cos(theta), Y: g.Center.Y + r*math.Sin(theta)}
}

func normalize(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
