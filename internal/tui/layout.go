package tui

import "github.com/javiermolinar/daygrid/internal/tui/view"

const (
	modalWidth    = 56
	labelWidth    = 6 // "12 PM" right-aligned with one leading space
	headerHeight  = 2 // header line and a spacer
	appPadX       = 1 // AppStyle horizontal padding
	goalsGap      = 2
	minGoalsWidth = 24
	maxGoalsWidth = 40
	minSideBySide = 60 // narrower terminals hide the goals panel
)

// layout holds the geometry used both for rendering and for mouse hit tests.
type layout struct {
	innerW  int
	gridW   int
	goalsW  int
	gridH   int
	gridTop int
	gridX   int
	goalsX  int
}

func (m Model) layout() layout {
	l := layout{
		innerW:  max(m.width-2*appPadX, 0),
		gridTop: headerHeight,
		gridX:   appPadX,
	}
	l.gridW = l.innerW
	if l.innerW >= minSideBySide {
		l.goalsW = min(max(l.innerW/3, minGoalsWidth), maxGoalsWidth)
		l.gridW = l.innerW - l.goalsW - goalsGap
		l.goalsX = l.gridX + l.gridW + goalsGap
	}
	l.gridH = max(m.height-headerHeight-view.FooterHeight, 0)
	return l
}

// slotAt maps a terminal cell to the grid slot drawn there.
func (m Model) slotAt(x, y int, l layout) (int, bool) {
	if x < l.gridX || x >= l.gridX+l.gridW {
		return 0, false
	}
	row := y - l.gridTop
	if row < 0 || row >= l.gridH {
		return 0, false
	}
	slot := m.scrollOffset + row
	if slot >= m.totalSlots() {
		return 0, false
	}
	return slot, true
}

// dragSlot maps a row to a slot while dragging, pinning rows above or below
// the grid to its visible edge.
func (m Model) dragSlot(y int, l layout) int {
	row := min(max(y-l.gridTop, 0), max(l.gridH-1, 0))
	return min(m.scrollOffset+row, m.totalSlots()-1)
}

// goalAt maps a terminal cell to the goal drawn there.
func (m Model) goalAt(x, y int, l layout) (int, bool) {
	if l.goalsW == 0 || x < l.goalsX || x >= l.goalsX+l.goalsW {
		return 0, false
	}
	row := y - l.gridTop - 1 // the panel's first row is its title
	if row < 0 || row >= l.gridH-1 {
		return 0, false
	}
	i := m.goalsFirst(l) + row
	if i >= len(m.ctrl.Goals()) {
		return 0, false
	}
	return i, true
}

// goalsFirst is the first goal shown, matching view.RenderGoals scrolling.
func (m Model) goalsFirst(l layout) int {
	visible := l.gridH - 1
	if visible > 0 && m.goalCursor >= visible {
		return m.goalCursor - visible + 1
	}
	return 0
}

func (m Model) totalSlots() int {
	return m.ctrl.Grid().TotalSlots()
}

func (m *Model) setCursor(slot int) {
	m.cursor = m.ctrl.Grid().ClampSlot(slot)
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	l := m.layout()
	if l.gridH <= 0 {
		return
	}
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+l.gridH {
		m.scrollOffset = m.cursor - l.gridH + 1
	}
	m.clampScroll(l)
}

func (m *Model) scroll(delta int) {
	m.scrollOffset += delta
	m.clampScroll(m.layout())
}

func (m *Model) clampScroll(l layout) {
	maxOffset := max(m.totalSlots()-l.gridH, 0)
	m.scrollOffset = min(max(m.scrollOffset, 0), maxOffset)
}
