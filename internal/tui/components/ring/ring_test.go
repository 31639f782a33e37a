package ring

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	drawille "github.com/exrook/drawille-go"

	"github.com/garrettladley/lumi/internal/color"
	"github.com/garrettladley/lumi/internal/geometry"
	"github.com/garrettladley/lumi/internal/ring"
	"github.com/garrettladley/lumi/internal/tui/components/braille"
)

var red = color.RGB{R: 255}

func colourPrefix(c color.RGB) string {
	return strings.SplitN(lipgloss.NewStyle().Foreground(c).Render("⣿"), "⣿", 2)[0]
}

func TestSurfaceSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cols, rows int
		want       int
	}{
		{cols: 40, rows: 20, want: 80},
		{cols: 40, rows: 10, want: 40},
		{cols: 0, rows: 10, want: 0},
	}
	for _, tt := range tests {
		if got := SurfaceSize(tt.cols, tt.rows); got != tt.want {
			t.Errorf("SurfaceSize(%d, %d) = %d, want %d", tt.cols, tt.rows, got, tt.want)
		}
	}

	if cols, rows := CellsFor(80); cols != 40 || rows != 20 {
		t.Errorf("CellsFor(80) = %d, %d", cols, rows)
	}
	if cols, rows := CellsFor(62); cols != 31 || rows != 16 {
		t.Errorf("CellsFor(62) = %d, %d", cols, rows)
	}
}

func TestDotCenterRoundTrip(t *testing.T) {
	t.Parallel()

	// every segment's middle is reachable by clicking the cell that holds it.
	g := geometry.New(80)
	for i := range geometry.Segments {
		p := g.SegmentPoint(i)
		col, row := int(p.X)/braille.DotsPerCol, int(p.Y)/braille.DotsPerRow
		if hit := g.Classify(DotCenter(col, row)); hit != geometry.Segment(i) {
			t.Errorf("cell (%d, %d) for segment %d classified as %+v", col, row, i, hit)
		}
	}
	if hit := g.Classify(DotCenter(20, 10)); hit.Kind != geometry.HitCenter {
		t.Errorf("middle cell classified as %v", hit.Kind)
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	c := ring.NewController(80, red)
	c.Tap(2)

	style := ring.DefaultStyle()
	scene := ring.Render(c.View(), style)
	out := New(40, 20, color.RGB{R: 255, G: 255, B: 255}).Render(scene)

	lines := strings.Split(braille.Strip(out), "\n")
	if len(lines) != 20 {
		t.Fatalf("got %d lines, want 20", len(lines))
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != 40 {
			t.Errorf("line %d has %d cells, want 40", i, n)
		}
	}
	if !strings.Contains(lines[10], "OFF 3") && !strings.Contains(lines[9], "OFF 3") {
		t.Errorf("label missing from the middle rows:\n%s", strings.Join(lines, "\n"))
	}

	lit := red.Blend(style.Background, style.FillAlpha)
	if !strings.Contains(out, colourPrefix(lit)) {
		t.Error("lit segment colour not drawn")
	}
	if !strings.Contains(out, colourPrefix(style.Tick)) {
		t.Error("focus tick not drawn")
	}
}

func TestRenderWithoutFocusHasNoTick(t *testing.T) {
	t.Parallel()

	c := ring.NewController(80, red)
	style := ring.DefaultStyle()
	out := New(40, 20, color.RGB{R: 255, G: 255, B: 255}).Render(ring.Render(c.View(), style))

	if strings.Contains(out, colourPrefix(style.Tick)) {
		t.Error("tick drawn without focus")
	}
	if !strings.Contains(braille.Strip(out), "ALL ON") {
		t.Error("label missing")
	}
}

func TestRenderEmpty(t *testing.T) {
	t.Parallel()

	if got := New(0, 0, red).Render(ring.Scene{}); got != "" {
		t.Errorf("zero-size component rendered %q", got)
	}
	if got := braille.Strip(New(4, 2, red).Render(ring.Scene{})); strings.TrimSpace(got) != "" {
		t.Errorf("invalid geometry rendered %q", got)
	}
}

func TestDrawLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		from, to geometry.Point
		want     int
	}{
		{name: "horizontal", from: geometry.Point{X: 0, Y: 0}, to: geometry.Point{X: 7, Y: 0}, want: 8},
		{name: "diagonal", from: geometry.Point{X: 0, Y: 0}, to: geometry.Point{X: 3, Y: 3}, want: 4},
		{name: "reverse", from: geometry.Point{X: 5, Y: 2}, to: geometry.Point{X: 1, Y: 2}, want: 5},
		{name: "point", from: geometry.Point{X: 2, Y: 2}, to: geometry.Point{X: 2, Y: 2}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			canvas := drawille.NewCanvas()
			drawLine(&canvas, tt.from, tt.to)
			if got := countDots(braille.Frame(&canvas, 8, 4)); got != tt.want {
				t.Errorf("drew %d dots, want %d", got, tt.want)
			}
		})
	}
}

func TestFillPolygonDensity(t *testing.T) {
	t.Parallel()

	square := geometry.Polygon{{X: 0, Y: 0}, {X: 8, Y: 0}, {X: 8, Y: 8}, {X: 0, Y: 8}}

	solid := drawille.NewCanvas()
	fillPolygon(&solid, square, true)
	sparse := drawille.NewCanvas()
	fillPolygon(&sparse, square, false)

	if got := countDots(braille.Frame(&solid, 8, 8)); got != 64 {
		t.Errorf("solid fill has %d dots, want 64", got)
	}
	if got := countDots(braille.Frame(&sparse, 8, 8)); got != 32 {
		t.Errorf("sparse fill has %d dots, want 32", got)
	}
}

func countDots(frame string) int {
	n := 0
	for _, r := range frame {
		if braille.IsBraille(r) {
			for bits := r - braille.Empty; bits != 0; bits &= bits - 1 {
				n++
			}
		}
	}
	return n
}
