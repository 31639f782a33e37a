//go:build release

package footer

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/lumi/internal/tui/theme"
)

var hintStyle = lipgloss.NewStyle().Foreground(theme.ColorDim)

func (f Footer) leftContent() string {
	return hintStyle.Render(f.hints)
}
