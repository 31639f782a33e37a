package color

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is the opaque colour carried per face. It is never interpreted beyond
// its three channels.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

var (
	Black  = RGB{}
	Yellow = RGB{R: 0xff, G: 0xff}
)

// Default is the panel's starting colour.
var Default = Yellow

var ErrInvalidHex = errors.New("invalid hex colour")

// ParseHex decomposes a "#RRGGBB" string into three base-16 bytes.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 7 {
		return RGB{}, fmt.Errorf("%w: %q (want #RRGGBB)", ErrInvalidHex, s)
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q: %w", ErrInvalidHex, s, err)
	}

	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// MustParseHex is ParseHex for compile-time constants.
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string { return c.Hex() }

// Query returns the r, g, b query parameters the device expects.
func (c RGB) Query() url.Values {
	v := make(url.Values, 3)
	v.Set("r", strconv.Itoa(int(c.R)))
	v.Set("g", strconv.Itoa(int(c.G)))
	v.Set("b", strconv.Itoa(int(c.B)))
	return v
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Blend mixes c over bg with the given opacity in [0, 1].
func (c RGB) Blend(bg RGB, alpha float64) RGB {
	alpha = min(max(alpha, 0), 1)
	r, g, b := bg.colorful().BlendRgb(c.colorful(), alpha).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// RGBA implements image/color.Color so an RGB can be handed to lipgloss.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}
