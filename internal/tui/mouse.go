package tui

import (
	tea "charm.land/bubbletea/v2"
)

func (m *Model) pointerActive() bool {
	return m.page == controlPage && m.modal == noModal
}

func (m *Model) handleMouseDown(mouse tea.Mouse) tea.Cmd {
	if !m.pointerActive() || mouse.Button != tea.MouseLeft {
		return nil
	}
	p, ok := m.layout.surfacePoint(mouse.X, mouse.Y)
	if !ok {
		return nil
	}
	return m.dispatch(m.controller.PointerDown(p))
}

// handleMouseMove paints while dragging. Leaving the ring component ends the
// drag the same way leaving the control surface would.
func (m *Model) handleMouseMove(mouse tea.Mouse) tea.Cmd {
	if !m.pointerActive() {
		return nil
	}
	p, ok := m.layout.surfacePoint(mouse.X, mouse.Y)
	if !ok {
		m.controller.PointerLeave()
		return nil
	}
	return m.dispatch(m.controller.PointerMove(p))
}
