package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/lumi/internal/ring"
)

type Theme struct {
	background color.Color
	foreground color.Color
	base       lipgloss.Style
	ring       ring.Style
}

func New() Theme {
	var t Theme

	t.background = ColorBgDark
	t.foreground = ColorWhite
	t.base = lipgloss.NewStyle().Foreground(t.foreground)
	t.ring = ring.DefaultStyle()

	return t
}

func (t Theme) Base() lipgloss.Style {
	return t.base
}

func (t Theme) TextAccent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorAccent)
}

func (t Theme) TextDim() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorDim)
}

func (t Theme) Background() color.Color {
	return t.background
}

func (t Theme) Foreground() color.Color {
	return t.foreground
}

// Ring is the palette the octagonal control is drawn with.
func (t Theme) Ring() ring.Style {
	return t.ring
}

// Modal frames pickers drawn over the control.
func (t Theme) Modal() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBgLight).
		Background(t.background).
		Padding(1, 2)
}
