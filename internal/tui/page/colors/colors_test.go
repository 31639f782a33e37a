package colors

import (
	"strings"
	"testing"

	"github.com/garrettladley/lumi/internal/color"
	"github.com/garrettladley/lumi/internal/palette"
	"github.com/garrettladley/lumi/internal/tui/components/braille"
	"github.com/garrettladley/lumi/internal/tui/theme"
)

func TestNewSelectsCurrent(t *testing.T) {
	t.Parallel()

	s := New(palette.Default(), color.MustParseHex("#00ffff"))
	got, _, ok := s.Selected()
	if !ok || got != color.MustParseHex("#00ffff") {
		t.Errorf("Selected() = %v, %v; want cyan", got, ok)
	}
}

func TestMove(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		start  int
		dx, dy int
		want   int
	}{
		{name: "right", start: 0, dx: 1, want: 1},
		{name: "down a row", start: 1, dy: 1, want: 5},
		{name: "left edge clamps", start: 0, dx: -1, want: 0},
		{name: "bottom clamps", start: 6, dy: 1, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := New(palette.Default(), color.RGB{})
			s.Cursor = tt.start
			if got := s.Move(tt.dx, tt.dy).Cursor; got != tt.want {
				t.Errorf("Cursor = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHexEntry(t *testing.T) {
	t.Parallel()

	s := New(palette.Default(), color.RGB{})

	// typing is ignored until the field has focus.
	s = s.Type("ff")
	if s.Input != "" {
		t.Fatalf("Input = %q before editing", s.Input)
	}

	s = s.ToggleEditing().Type("#12zZ3a").Type("Bcdef")
	if s.Input != "123abc" {
		t.Fatalf("Input = %q, want 123abc", s.Input)
	}

	got, _, ok := s.Selected()
	if !ok || got != (color.RGB{R: 0x12, G: 0x3a, B: 0xbc}) {
		t.Errorf("Selected() = %v, %v", got, ok)
	}

	s = s.Backspace().Backspace()
	_, s, ok = s.Selected()
	if ok || s.Err == "" {
		t.Errorf("incomplete hex accepted: %+v", s)
	}
}

func TestView(t *testing.T) {
	t.Parallel()

	s := New(palette.Default(), color.RGB{}).ToggleEditing().Type("ff8")
	got := braille.Strip(View(theme.New(), s))
	for _, want := range []string{"Red", "Orange", "› hex #ff8___"} {
		if !strings.Contains(got, want) {
			t.Errorf("View() missing %q:\n%s", want, got)
		}
	}
}
