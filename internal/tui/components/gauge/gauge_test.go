package gauge

import (
	"image/color"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/lumi/internal/tui/components/braille"
)

var red = color.RGBA{R: 255, A: 255}

func TestIsInArcRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		px, py int
		start  float64
		sweep  float64
		want   bool
	}{
		{name: "top inside first slot", px: 1, py: -10, start: 270, sweep: 45, want: true},
		{name: "right outside first slot", px: 10, py: 0, start: 270, sweep: 45, want: false},
		{name: "right inside wrapped slot", px: 10, py: 1, start: 315, sweep: 60, want: true},
		{name: "start beyond 360", px: 0, py: 10, start: 405, sweep: 50, want: true},
		{name: "start beyond 360 excludes left", px: -10, py: 0, start: 405, sweep: 50, want: false},
		{name: "full sweep", px: -3, py: 7, start: 270, sweep: 360, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := isInArcRange(0, 0, tt.px, tt.py, tt.start, tt.sweep); got != tt.want {
				t.Errorf("isInArcRange(%d, %d, %v, %v) = %v, want %v", tt.px, tt.py, tt.start, tt.sweep, got, tt.want)
			}
		})
	}
}

func TestGaugeRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		lit       int
		total     int
		wantValue string
	}{
		{name: "none lit", lit: 0, total: 8, wantValue: "0/8"},
		{name: "some lit", lit: 3, total: 8, wantValue: "3/8"},
		{name: "all lit", lit: 8, total: 8, wantValue: "8/8"},
		{name: "clamped", lit: 11, total: 8, wantValue: "8/8"},
		{name: "no slots", lit: 0, total: 0, wantValue: "--"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := New(tt.lit, tt.total, "LIT", red).Render()
			stripped := braille.Strip(out)
			lines := strings.Split(stripped, "\n")

			if want := gaugeDotsHeight/4 + 1; len(lines) != want {
				t.Fatalf("got %d lines, want %d", len(lines), want)
			}
			if w := lipgloss.Width(out); w != gaugeDotsWidth/2 {
				t.Errorf("width = %d, want %d", w, gaugeDotsWidth/2)
			}
			if !strings.Contains(stripped, tt.wantValue) {
				t.Errorf("output missing value %q:\n%s", tt.wantValue, stripped)
			}
			if !strings.Contains(lines[len(lines)-1], "LIT") {
				t.Errorf("last line = %q, want label", lines[len(lines)-1])
			}
		})
	}
}

func TestGaugeLitChangesColourNotShape(t *testing.T) {
	t.Parallel()

	dark := New(0, 8, "LIT", red).Render()
	lit := New(8, 8, "LIT", red).Render()
	if dark == lit {
		t.Fatal("lighting every slot did not change the output")
	}

	darkTop := strings.Split(braille.Strip(dark), "\n")[0]
	litTop := strings.Split(braille.Strip(lit), "\n")[0]
	if darkTop != litTop {
		t.Errorf("ring shape changed:\n%q\n%q", darkTop, litTop)
	}
}
