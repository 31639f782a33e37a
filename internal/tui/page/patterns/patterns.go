// Package patterns is the pattern picker modal.
package patterns

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/lumi/internal/client/lumi"
	"github.com/garrettladley/lumi/internal/tui/theme"
)

type Phase uint

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseError
)

type State struct {
	Phase    Phase
	Patterns []lumi.Pattern
	Cursor   int
	Err      string
}

// Loaded moves to the ready phase, keeping the cursor in range.
func (s State) Loaded(patterns []lumi.Pattern) State {
	s.Phase = PhaseReady
	s.Patterns = patterns
	s.Err = ""
	s.Cursor = min(max(s.Cursor, 0), max(len(patterns)-1, 0))
	return s
}

func (s State) Failed(err error) State {
	s.Phase = PhaseError
	s.Err = err.Error()
	return s
}

// Move shifts the cursor by delta, wrapping at both ends.
func (s State) Move(delta int) State {
	if n := len(s.Patterns); n > 0 {
		s.Cursor = ((s.Cursor+delta)%n + n) % n
	}
	return s
}

func (s State) Selected() (lumi.Pattern, bool) {
	if s.Phase != PhaseReady || s.Cursor < 0 || s.Cursor >= len(s.Patterns) {
		return lumi.Pattern{}, false
	}
	return s.Patterns[s.Cursor], true
}

func View(t theme.Theme, s State) string {
	title := t.TextAccent().Bold(true).Render("Patterns")
	hint := t.TextDim().Render("enter run · s stop · r reload · esc close")

	var body string
	switch s.Phase {
	case PhaseLoading:
		body = t.TextDim().Render("loading...")
	case PhaseError:
		body = lipgloss.NewStyle().Foreground(theme.ColorDanger).Render(s.Err)
	default:
		body = listView(t, s)
	}

	return t.Modal().Render(lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		body,
		"",
		hint,
	))
}

func listView(t theme.Theme, s State) string {
	if len(s.Patterns) == 0 {
		return t.TextDim().Render("no patterns")
	}

	var (
		selected = lipgloss.NewStyle().Foreground(theme.ColorAccent).Bold(true)
		lines    = make([]string, len(s.Patterns))
	)
	for i, p := range s.Patterns {
		line := fmt.Sprintf("%2d  %s", p.ID, p.Name)
		if i == s.Cursor {
			lines[i] = selected.Render("› " + line)
			continue
		}
		lines[i] = t.Base().Render("  " + line)
	}
	return strings.Join(lines, "\n")
}
