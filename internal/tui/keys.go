package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/lumi/internal/tui/components/toast"
	"github.com/garrettladley/lumi/internal/tui/page/colors"
	"github.com/garrettladley/lumi/internal/tui/page/patterns"
	"github.com/garrettladley/lumi/internal/xslog"
)

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		return m.quit()
	}
	if m.page != controlPage {
		if key == "q" {
			return m.quit()
		}
		return nil
	}

	switch m.modal {
	case patternsModal:
		return m.handlePatternsKey(key)
	case colorsModal:
		return m.handleColorsKey(msg)
	}

	switch key {
	case "q":
		return m.quit()
	case "left", "h":
		m.controller.StepFocus(-1)
	case "right", "l", "tab":
		m.controller.StepFocus(1)
	case "esc":
		m.controller.ClearFocus()
	case "space", "enter":
		return m.dispatch(m.controller.PressCenter())
	case "1", "2", "3", "4", "5", "6", "7", "8":
		return m.dispatch(m.controller.Tap(int(key[0] - '1')))
	case "a":
		return m.dispatch(m.controller.SetAll(true))
	case "x":
		return m.dispatch(m.controller.SetAll(false))
	case "c":
		m.modal = colorsModal
		m.state.colors = colors.New(m.deps.Palette, m.controller.Color())
	case "p":
		m.modal = patternsModal
		m.state.patterns = patterns.State{}
		return patterns.ListCmd(m.deps.Ctx, m.deps.Patterns)
	}
	return nil
}

func (m *Model) handlePatternsKey(key string) tea.Cmd {
	switch key {
	case "esc", "p", "q":
		m.modal = noModal
	case "up", "k":
		m.state.patterns = m.state.patterns.Move(-1)
	case "down", "j":
		m.state.patterns = m.state.patterns.Move(1)
	case "r":
		m.state.patterns = patterns.State{}
		return patterns.ListCmd(m.deps.Ctx, m.deps.Patterns)
	case "s":
		m.modal = noModal
		return patterns.StopCmd(m.deps.Ctx, m.deps.Patterns)
	case "enter", "space":
		p, ok := m.state.patterns.Selected()
		if !ok {
			return nil
		}
		m.modal = noModal
		m.deps.Logger.InfoContext(m.deps.Ctx, "running pattern",
			xslog.PatternID(p.ID),
			xslog.PatternName(p.Name),
		)
		return patterns.RunCmd(m.deps.Ctx, m.deps.Patterns, p)
	}
	return nil
}

func (m *Model) handleColorsKey(msg tea.KeyPressMsg) tea.Cmd {
	s := m.state.colors
	switch key := msg.String(); key {
	case "esc":
		m.modal = noModal
		return nil
	case "tab":
		s = s.ToggleEditing()
	case "backspace":
		s = s.Backspace()
	case "enter":
		rgb, next, ok := s.Selected()
		m.state.colors = next
		if !ok {
			return nil
		}
		m.modal = noModal
		effects := m.controller.ApplyColor(rgb)
		return tea.Batch(
			m.showToast(toast.Info, "colour "+rgb.Hex()),
			m.dispatch(effects),
		)
	case "left":
		s = s.Move(-1, 0)
	case "right":
		s = s.Move(1, 0)
	case "up":
		s = s.Move(0, -1)
	case "down":
		s = s.Move(0, 1)
	default:
		if s.Editing {
			s = s.Type(msg.Key().Text)
		} else if key == "c" || key == "q" {
			m.modal = noModal
			return nil
		}
	}
	m.state.colors = s
	return nil
}

func (m *Model) quit() tea.Cmd {
	if m.deps.Cancel != nil {
		m.deps.Cancel()
	}
	return tea.Quit
}
