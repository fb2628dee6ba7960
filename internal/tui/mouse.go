package tui

import tea "github.com/charmbracelet/bubbletea"

const wheelStep = 3

// handleMouseMsg drives the grid selection with press, motion and release.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeModal {
		return m, nil
	}
	l := m.layout()

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scroll(-wheelStep)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scroll(wheelStep)
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if slot, ok := m.slotAt(msg.X, msg.Y, l); ok {
			m.setMode(ModeNormal, "mouse")
			m.cursor = slot
			m.ctrl.BeginSelection(slot)
			m.dragging = m.ctrl.Selecting()
			return m, nil
		}
		if i, ok := m.goalAt(msg.X, msg.Y, l); ok {
			m.ctrl.CancelSelection()
			m.setMode(ModeGoals, "mouse")
			m.goalCursor = i
		}

	case tea.MouseActionMotion:
		if !m.dragging {
			return m, nil
		}
		m.dragTo(msg.Y, l)

	case tea.MouseActionRelease:
		if !m.dragging {
			return m, nil
		}
		m.dragTo(msg.Y, l)
		return m.openTitleModal(m.ctrl.CommitSelection())
	}
	return m, nil
}

// dragTo extends the selection to the row under y, scrolling when the
// pointer leaves the grid.
func (m *Model) dragTo(y int, l layout) {
	switch {
	case y < l.gridTop:
		m.scroll(-1)
	case y >= l.gridTop+l.gridH:
		m.scroll(1)
	}
	slot := m.dragSlot(y, l)
	m.ctrl.ExtendSelection(slot)
	m.cursor = slot
}
