// Package palette provides the colour presets offered by the colour picker.
package palette

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/garrettladley/lumi/internal/color"
)

type Swatch struct {
	Name  string   `yaml:"name"`
	Color HexColor `yaml:"color"`
}

// HexColor decodes a "#RRGGBB" YAML scalar.
type HexColor color.RGB

func (h *HexColor) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	rgb, err := color.ParseHex(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*h = HexColor(rgb)
	return nil
}

func (h HexColor) RGB() color.RGB { return color.RGB(h) }

type Palette struct {
	Swatches []Swatch `yaml:"swatches"`
}

// Presets are always offered, ahead of any user swatches.
var Presets = []Swatch{
	{Name: "Red", Color: HexColor(color.MustParseHex("#ff0000"))},
	{Name: "Green", Color: HexColor(color.MustParseHex("#00ff00"))},
	{Name: "Blue", Color: HexColor(color.MustParseHex("#0000ff"))},
	{Name: "Yellow", Color: HexColor(color.MustParseHex("#ffff00"))},
	{Name: "Cyan", Color: HexColor(color.MustParseHex("#00ffff"))},
	{Name: "Magenta", Color: HexColor(color.MustParseHex("#ff00ff"))},
	{Name: "White", Color: HexColor(color.MustParseHex("#ffffff"))},
	{Name: "Orange", Color: HexColor(color.MustParseHex("#ff8000"))},
}

func Default() Palette {
	return Palette{Swatches: append([]Swatch(nil), Presets...)}
}

// Parse decodes a palette document and appends its swatches to the presets.
// Swatches whose colour duplicates an earlier one are dropped.
func Parse(data []byte) (Palette, error) {
	var user Palette
	if err := yaml.Unmarshal(data, &user); err != nil {
		return Palette{}, fmt.Errorf("failed to parse palette: %w", err)
	}

	p := Default()
	seen := make(map[HexColor]struct{}, len(p.Swatches)+len(user.Swatches))
	for _, s := range p.Swatches {
		seen[s.Color] = struct{}{}
	}
	for _, s := range user.Swatches {
		if _, ok := seen[s.Color]; ok {
			continue
		}
		seen[s.Color] = struct{}{}
		if strings.TrimSpace(s.Name) == "" {
			s.Name = s.Color.RGB().Hex()
		}
		p.Swatches = append(p.Swatches, s)
	}
	return p, nil
}

// Load reads the palette file at path. A missing file yields the presets.
func Load(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Palette{}, fmt.Errorf("failed to read palette: %w", err)
	}
	return Parse(data)
}
