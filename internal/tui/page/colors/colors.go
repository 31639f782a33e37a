// Package colors is the colour picker modal: palette swatches plus free hex
// entry.
package colors

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/lumi/internal/color"
	"github.com/garrettladley/lumi/internal/palette"
	"github.com/garrettladley/lumi/internal/tui/theme"
)

const (
	columns   = 4
	hexDigits = 6
)

type State struct {
	Swatches []palette.Swatch
	Cursor   int
	// Editing is true while the hex field has focus.
	Editing bool
	Input   string
	Err     string
}

// New opens the picker with the cursor on the swatch matching current, if
// any.
func New(p palette.Palette, current color.RGB) State {
	s := State{Swatches: p.Swatches}
	for i, sw := range p.Swatches {
		if sw.Color.RGB() == current {
			s.Cursor = i
			break
		}
	}
	return s
}

// Move shifts the swatch cursor by dx columns and dy rows, clamped to the
// grid.
func (s State) Move(dx, dy int) State {
	n := len(s.Swatches)
	if n == 0 || s.Editing {
		return s
	}
	next := s.Cursor + dx + dy*columns
	if next >= 0 && next < n {
		s.Cursor = next
	}
	return s
}

// ToggleEditing switches focus between the swatches and the hex field.
func (s State) ToggleEditing() State {
	s.Editing = !s.Editing
	s.Err = ""
	return s
}

// Type appends hex digits to the input; anything else is ignored.
func (s State) Type(text string) State {
	if !s.Editing {
		return s
	}
	for _, r := range strings.ToLower(text) {
		if len(s.Input) >= hexDigits {
			break
		}
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') {
			s.Input += string(r)
		}
	}
	s.Err = ""
	return s
}

func (s State) Backspace() State {
	if s.Editing && s.Input != "" {
		s.Input = s.Input[:len(s.Input)-1]
	}
	return s
}

// Selected resolves the chosen colour. An incomplete hex entry is reported
// in Err and yields false.
func (s State) Selected() (color.RGB, State, bool) {
	if s.Editing {
		rgb, err := color.ParseHex("#" + s.Input)
		if err != nil {
			s.Err = "enter six hex digits"
			return color.RGB{}, s, false
		}
		return rgb, s, true
	}
	if s.Cursor < 0 || s.Cursor >= len(s.Swatches) {
		return color.RGB{}, s, false
	}
	return s.Swatches[s.Cursor].Color.RGB(), s, true
}

func View(t theme.Theme, s State) string {
	title := t.TextAccent().Bold(true).Render("Colour")
	hint := t.TextDim().Render("arrows move · tab hex · enter apply · esc close")

	parts := []string{title, "", gridView(t, s), "", inputView(t, s)}
	if s.Err != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.ColorDanger).Render(s.Err))
	}
	parts = append(parts, "", hint)

	return t.Modal().Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func gridView(t theme.Theme, s State) string {
	var (
		rows []string
		row  []string
	)
	for i, sw := range s.Swatches {
		chip := lipgloss.NewStyle().Foreground(sw.Color.RGB()).Render("██")
		name := lipgloss.NewStyle().Width(10).Render(" " + sw.Name)
		cell := chip + name
		if i == s.Cursor && !s.Editing {
			cell = t.TextAccent().Render("›") + cell
		} else {
			cell = " " + cell
		}
		row = append(row, cell)
		if len(row) == columns {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

func inputView(t theme.Theme, s State) string {
	field := "#" + s.Input + strings.Repeat("_", hexDigits-len(s.Input))
	if s.Editing {
		return t.TextAccent().Render("› hex " + field)
	}
	return t.TextDim().Render("  hex " + field)
}
