package geometry

import "math"

// Polygon is a closed path; the last vertex joins the first.
type Polygon []Point

// Contains reports whether p lies inside the polygon using the even-odd rule.
func (poly Polygon) Contains(p Point) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// Edges returns each side of the polygon as a pair of endpoints.
func (poly Polygon) Edges() [][2]Point {
	if len(poly) < 2 {
		return nil
	}
	edges := make([][2]Point, 0, len(poly))
	for i := range poly {
		edges = append(edges, [2]Point{poly[i], poly[(i+1)%len(poly)]})
	}
	return edges
}

// Bounds returns the axis-aligned bounding box of the polygon.
func (poly Polygon) Bounds() (lo, hi Point) {
	if len(poly) == 0 {
		return Point{}, Point{}
	}
	lo = Point{X: math.Inf(1), Y: math.Inf(1)}
	hi = Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range poly {
		lo.X, lo.Y = math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)
		hi.X, hi.Y = math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)
	}
	return lo, hi
}

// Centroid is the mean of the vertices.
func (poly Polygon) Centroid() Point {
	if len(poly) == 0 {
		return Point{}
	}
	var c Point
	for _, p := range poly {
		c.X += p.X
		c.Y += p.Y
	}
	n := float64(len(poly))
	return Point{X: c.X / n, Y: c.Y / n}
}
