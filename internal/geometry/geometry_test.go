package geometry

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		size float64
		want Geometry
	}{
		{
			name: "300 canvas",
			size: 300,
			want: Geometry{Center: Point{X: 150, Y: 150}, Outer: 120, Inner: 72},
		},
		{
			name: "zero size",
			size: 0,
			want: Geometry{},
		},
		{
			name: "negative size",
			size: -10,
			want: Geometry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := New(tt.size)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("New(%v) mismatch (-want +got):\n%s", tt.size, diff)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	g := New(300)

	tests := []struct {
		name  string
		point Point
		want  Hit
	}{
		{name: "center point", point: Point{X: 150, Y: 150}, want: Center()},
		{name: "below the canvas", point: Point{X: 150, Y: 400}, want: Outside()},
		{name: "on inner radius", point: Point{X: 222, Y: 150}, want: Center()},
		{name: "on outer radius", point: Point{X: 270, Y: 150}, want: Segment(0)},
		{name: "just past outer radius", point: Point{X: 270.001, Y: 150}, want: Outside()},
		{name: "east", point: Point{X: 250, Y: 150}, want: Segment(0)},
		{name: "south east", point: Point{X: 220, Y: 220}, want: Segment(1)},
		{name: "south", point: Point{X: 150, Y: 250}, want: Segment(2)},
		{name: "south west", point: Point{X: 80, Y: 220}, want: Segment(3)},
		{name: "west", point: Point{X: 50, Y: 150}, want: Segment(4)},
		{name: "north west", point: Point{X: 80, Y: 80}, want: Segment(5)},
		// segment 0 starts at east, so screen north is segment 6.
		{name: "north", point: Point{X: 150, Y: 30}, want: Segment(6)},
		{name: "north east", point: Point{X: 220, Y: 80}, want: Segment(7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := g.Classify(tt.point); got != tt.want {
				t.Errorf("Classify(%+v) = %+v, want %+v", tt.point, got, tt.want)
			}
		})
	}
}

func TestClassifyZeroGeometry(t *testing.T) {
	t.Parallel()

	var g Geometry
	for _, p := range []Point{{}, {X: 1, Y: 1}, {X: -5, Y: 3}} {
		if got := g.Classify(p); got.Kind != HitOutside {
			t.Errorf("zero Geometry.Classify(%+v) = %v, want outside", p, got.Kind)
		}
	}
}

func TestClassifyBoundaryAngles(t *testing.T) {
	t.Parallel()

	g := New(300)
	r := (g.Inner + g.Outer) / 2

	// every vertex angle starts the segment whose span begins there.
	for i := range Segments {
		theta := float64(i)*math.Pi/4 - math.Pi/8 + 1e-9
		p := Point{X: g.Center.X + r*math.Cos(theta), Y: g.Center.Y + r*math.Sin(theta)}
		got := g.Classify(p)
		if got != Segment(i) {
			t.Errorf("boundary %d: Classify = %+v, want segment %d", i, got, i)
		}
	}
}

func TestClassifyPartition(t *testing.T) {
	t.Parallel()

	g := New(300)
	counts := make(map[HitKind]int)
	segments := make(map[int]int)

	for y := 0.0; y <= 300; y += 2.5 {
		for x := 0.0; x <= 300; x += 2.5 {
			p := Point{X: x, Y: y}
			hit := g.Classify(p)

			// pure: the same point always yields the same result.
			if again := g.Classify(p); again != hit {
				t.Fatalf("Classify(%+v) not deterministic: %+v then %+v", p, hit, again)
			}

			counts[hit.Kind]++
			switch hit.Kind {
			case HitSegment:
				if hit.Segment < 0 || hit.Segment >= Segments {
					t.Fatalf("Classify(%+v) segment %d out of range", p, hit.Segment)
				}
				segments[hit.Segment]++
				if d := p.Dist(g.Center); d <= g.Inner || d > g.Outer {
					t.Fatalf("Classify(%+v) = segment at distance %v", p, d)
				}
			case HitCenter:
				if d := p.Dist(g.Center); d > g.Inner {
					t.Fatalf("Classify(%+v) = center at distance %v", p, d)
				}
			}
		}
	}

	if counts[HitCenter] == 0 || counts[HitOutside] == 0 {
		t.Errorf("grid missed a region: %v", counts)
	}
	if len(segments) != Segments {
		t.Errorf("grid reached %d segments, want %d", len(segments), Segments)
	}
	// the ring is rotationally symmetric so each segment covers a similar area.
	for i, n := range segments {
		if n < segments[0]*8/10 || n > segments[0]*12/10 {
			t.Errorf("segment %d covers %d samples, segment 0 covers %d", i, n, segments[0])
		}
	}
}

func TestVertices(t *testing.T) {
	t.Parallel()

	g := New(300)
	vs := g.Vertices(g.Outer)

	for i, v := range vs {
		if d := v.Dist(g.Center); math.Abs(d-g.Outer) > 1e-9 {
			t.Errorf("vertex %d at distance %v, want %v", i, d, g.Outer)
		}
	}

	// edge 0 joins vertices at ∓π/8, so it is vertical on the east side.
	if math.Abs(vs[0].X-vs[1].X) > 1e-9 {
		t.Errorf("edge 0 not vertical: %+v -> %+v", vs[0], vs[1])
	}
	if vs[0].Y >= g.Center.Y || vs[1].Y <= g.Center.Y {
		t.Errorf("edge 0 does not straddle the center row: %+v -> %+v", vs[0], vs[1])
	}
}

func TestSegmentQuadMatchesClassify(t *testing.T) {
	t.Parallel()

	g := New(300)
	for i := range Segments {
		quad := g.SegmentQuad(i)
		if len(quad) != 4 {
			t.Fatalf("SegmentQuad(%d) has %d vertices", i, len(quad))
		}

		mid := g.SegmentPoint(i)
		if !quad.Contains(mid) {
			t.Errorf("SegmentQuad(%d) does not contain its midpoint %+v", i, mid)
		}
		if got := g.Classify(mid); got != Segment(i) {
			t.Errorf("Classify(SegmentPoint(%d)) = %+v", i, got)
		}
		if quad.Contains(g.Center) {
			t.Errorf("SegmentQuad(%d) contains the center", i)
		}
	}
}

func TestFocusTick(t *testing.T) {
	t.Parallel()

	g := New(300)
	for i := range Segments {
		from, to := g.FocusTick(i, 4, 10)

		if d := from.Dist(g.Center); d <= g.Outer*math.Cos(math.Pi/8) {
			t.Errorf("tick %d starts inside the ring at %v", i, d)
		}
		if l := from.Dist(to); math.Abs(l-10) > 1e-9 {
			t.Errorf("tick %d length = %v, want 10", i, l)
		}

		// extending the tick back toward the center lands in its own segment.
		back := Point{
			X: g.Center.X + (from.X-g.Center.X)*0.8,
			Y: g.Center.Y + (from.Y-g.Center.Y)*0.8,
		}
		if got := g.Classify(back); got != Segment(i) {
			t.Errorf("tick %d points at %+v", i, got)
		}
	}
}

func TestPolygonContains(t *testing.T) {
	t.Parallel()

	square := Polygon{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}

	tests := []struct {
		point Point
		want  bool
	}{
		{point: Point{X: 5, Y: 5}, want: true},
		{point: Point{X: 0.5, Y: 9.5}, want: true},
		{point: Point{X: 11, Y: 5}, want: false},
		{point: Point{X: -1, Y: -1}, want: false},
	}
	for _, tt := range tests {
		if got := square.Contains(tt.point); got != tt.want {
			t.Errorf("Contains(%+v) = %v, want %v", tt.point, got, tt.want)
		}
	}

	lo, hi := square.Bounds()
	if lo != (Point{}) || hi != (Point{X: 10, Y: 10}) {
		t.Errorf("Bounds() = %+v, %+v", lo, hi)
	}
	if c := square.Centroid(); c != (Point{X: 5, Y: 5}) {
		t.Errorf("Centroid() = %+v", c)
	}
	if n := len(square.Edges()); n != 4 {
		t.Errorf("len(Edges()) = %d, want 4", n)
	}
}
