package palette

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/lumi/internal/color"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	p := Default()
	if len(p.Swatches) != 8 {
		t.Fatalf("len(Swatches) = %d, want 8", len(p.Swatches))
	}
	if got := p.Swatches[3].Color.RGB(); got != color.Yellow {
		t.Errorf("fourth preset = %v, want yellow", got)
	}

	// callers may append without touching the shared presets.
	p.Swatches[0].Name = "changed"
	if Presets[0].Name != "Red" {
		t.Error("Default() aliases Presets")
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		want    []string
		wantErr bool
	}{
		{
			name: "user swatches appended",
			doc: `
swatches:
  - name: Teal
    color: "#008080"
  - color: "#123456"
`,
			want: []string{"Teal", "#123456"},
		},
		{
			name: "duplicates of presets dropped",
			doc: `
swatches:
  - name: Also Red
    color: "#FF0000"
  - name: Pink
    color: "#ffc0cb"
  - name: Pink Again
    color: "#ffc0cb"
`,
			want: []string{"Pink"},
		},
		{
			name: "empty document",
			doc:  "",
			want: nil,
		},
		{
			name:    "bad colour",
			doc:     "swatches:\n  - name: Nope\n    color: \"#zzzzzz\"\n",
			wantErr: true,
		},
		{
			name:    "not yaml",
			doc:     "swatches: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := Parse([]byte(tt.doc))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}

			var extra []string
			for _, s := range p.Swatches[len(Presets):] {
				extra = append(extra, s.Name)
			}
			if diff := cmp.Diff(tt.want, extra); diff != "" {
				t.Errorf("extra swatches mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	p, err := Load(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("Load(missing) error: %v", err)
	}
	if len(p.Swatches) != len(Presets) {
		t.Errorf("Load(missing) has %d swatches, want presets only", len(p.Swatches))
	}

	path := filepath.Join(dir, "palette.yaml")
	if err := os.WriteFile(path, []byte("swatches:\n  - name: Lime\n    color: \"#bfff00\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	p, err = Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	last := p.Swatches[len(p.Swatches)-1]
	if last.Name != "Lime" || last.Color.RGB() != color.MustParseHex("#bfff00") {
		t.Errorf("last swatch = %+v", last)
	}
}
