// Package footer renders the bottom bar: key hints on the left, the
// connection indicator on the right.
package footer

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Hints is the key help shown on the control page.
const Hints = "←/→ focus · space toggle · a all · c colour · p patterns · q quit"

type Footer struct {
	hints        string
	rightContent string
	width        int
	padding      int
}

func New(hints, rightContent string, width int) Footer {
	return Footer{
		hints:        hints,
		rightContent: rightContent,
		width:        width,
		padding:      2,
	}
}

func (f Footer) Render() string {
	leftContent := f.leftContent()

	leftWidth := lipgloss.Width(leftContent)
	rightWidth := lipgloss.Width(f.rightContent)
	spacerWidth := max(f.width-leftWidth-rightWidth-(f.padding*2), 1)

	return lipgloss.NewStyle().
		PaddingLeft(f.padding).
		PaddingRight(f.padding).
		Render(leftContent + strings.Repeat(" ", spacerWidth) + f.rightContent)
}
