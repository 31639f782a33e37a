// Package toast renders short-lived status notices.
package toast

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/lumi/internal/tui/theme"
)

type Kind uint8

const (
	Info Kind = iota
	Success
	Danger
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Danger:
		return "danger"
	default:
		return "info"
	}
}

func (k Kind) color() color.Color {
	switch k {
	case Success:
		return theme.ColorSuccess
	case Danger:
		return theme.ColorDanger
	default:
		return theme.ColorInfo
	}
}

// Toast is one notice. Seq identifies it so an expiry timer only dismisses
// the toast it was started for.
type Toast struct {
	Seq  int
	Kind Kind
	Text string
}

func (t Toast) Render() string {
	if t.Text == "" {
		return ""
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Kind.color()).
		Foreground(theme.ColorWhite).
		Padding(0, 1).
		Render(t.Text)
}
