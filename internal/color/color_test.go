package color

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseHex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{name: "yellow", input: "#ffff00", want: RGB{R: 255, G: 255, B: 0}},
		{name: "upper case", input: "#FF8000", want: RGB{R: 255, G: 128, B: 0}},
		{name: "missing hash", input: "00ffff", want: RGB{R: 0, G: 255, B: 255}},
		{name: "surrounding space", input: "  #0000ff ", want: RGB{B: 255}},
		{name: "black", input: "#000000", want: RGB{}},
		{name: "short form rejected", input: "#fff", wantErr: true},
		{name: "not hex", input: "#gggggg", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseHex(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidHex) {
					t.Fatalf("ParseHex(%q) error = %v, want ErrInvalidHex", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"#ff0000", "#00ff00", "#0000ff", "#ffff00", "#00ffff", "#ff00ff", "#ffffff", "#ff8000"} {
		if got := MustParseHex(s).Hex(); got != s {
			t.Errorf("MustParseHex(%q).Hex() = %q", s, got)
		}
	}
}

func TestQuery(t *testing.T) {
	t.Parallel()

	got := MustParseHex("#ff8001").Query()
	want := map[string][]string{
		"r": {"255"},
		"g": {"128"},
		"b": {"1"},
	}
	if diff := cmp.Diff(want, map[string][]string(got)); diff != "" {
		t.Errorf("Query() mismatch (-want +got):\n%s", diff)
	}
}

func TestBlend(t *testing.T) {
	t.Parallel()

	red := RGB{R: 255}

	if got := red.Blend(Black, 1); got != red {
		t.Errorf("opaque blend = %+v, want %+v", got, red)
	}
	if got := red.Blend(Black, 0); got != Black {
		t.Errorf("transparent blend = %+v, want %+v", got, Black)
	}

	half := red.Blend(Black, 0.5)
	if half.R < 126 || half.R > 129 || half.G != 0 || half.B != 0 {
		t.Errorf("half blend = %+v, want R≈128", half)
	}
}
