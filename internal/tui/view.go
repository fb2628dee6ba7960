package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/daygrid/internal/day"
	"github.com/javiermolinar/daygrid/internal/grid"
	"github.com/javiermolinar/daygrid/internal/planner"
	"github.com/javiermolinar/daygrid/internal/summary"
	"github.com/javiermolinar/daygrid/internal/tui/view"
)

// View renders the TUI.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	showModal := m.mode == ModeModal && m.modalType != ModalNone
	modal := ""
	if showModal {
		modal = m.renderModal()
	}

	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      m.renderAppContent(),
		ModalContent:     modal,
		ShowModal:        showModal,
		ModalBg:          m.styles.ModalBgColor,
		EmptyPlaceholder: "Loading...",
	}
}

func (m Model) renderAppContent() string {
	l := m.layout()
	if l.innerW < 20 || l.gridH <= 0 {
		return "Terminal too small"
	}

	vs := m.ctrl.View()
	bg := m.styles.colorBg

	header := view.RenderHeader(view.HeaderViewState{
		Width:      l.innerW,
		Date:       vs.Date,
		Now:        vs.Now,
		GoalsDone:  vs.GoalsDone(),
		GoalsAll:   len(vs.Goals),
		Blocks:     len(vs.Blocks),
		SaveOK:     vs.SaveOK,
		TitleStyle: m.styles.TitleStyle,
		DateStyle:  m.styles.HeaderDateStyle,
		MetaStyle:  m.styles.HeaderMetaStyle,
		WarnStyle:  m.styles.HeaderWarnStyle,
		Bg:         bg,
	})
	spacer := view.PlaceBox(l.innerW, 1, lipgloss.Top, "", bg)

	body := view.RenderGrid(view.GridViewState{
		Width:      l.gridW,
		Height:     l.gridH,
		LabelWidth: labelWidth,
		Lines:      m.gridLines(vs, l),
		Bg:         bg,
	})
	if l.goalsW > 0 {
		gap := view.PlaceBox(goalsGap, l.gridH, lipgloss.Top, "", bg)
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, gap, m.renderGoals(vs, l))
	}

	footer := view.RenderFooter(view.FooterViewState{
		InnerW:      l.innerW,
		StatusLine:  m.statusLine(vs),
		HelpLine:    m.helpLine(),
		StatusStyle: m.statusStyle(),
		HelpStyle:   m.styles.HelpStyle,
		Bg:          bg,
	})

	content := lipgloss.JoinVertical(lipgloss.Left, header, spacer, body, footer)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, bg)
}

// gridLines builds the visible slot rows.
func (m Model) gridLines(vs planner.ViewState, l layout) []view.GridLine {
	s := m.styles
	g := vs.Grid
	total := g.TotalSlots()
	nowSlot, nowOnGrid := vs.NowSlot()
	nowClock := vs.Now.Format("15:04")

	order := make(map[day.ID]int, len(vs.Blocks))
	for i, b := range vs.Blocks {
		order[b.ID] = i
	}

	lines := make([]view.GridLine, 0, l.gridH)
	for slot := m.scrollOffset; slot < total && len(lines) < l.gridH; slot++ {
		line := view.GridLine{
			LabelStyle:  s.LabelStyle,
			MarkerStyle: s.MarkerStyle,
			CellStyle:   s.EmptyCellStyle,
		}
		if mins := slot * grid.SlotMinutes; mins%60 == 0 {
			line.Label = grid.HourLabel(g.StartHour + mins/60)
		} else {
			line.CellStyle = s.HalfHourCellStyle
		}

		if nowOnGrid && slot == nowSlot {
			line.LabelStyle = s.LabelNowStyle
			line.Marker = "●"
			line.MarkerStyle = s.MarkerNowStyle
		}
		onCursor := m.mode == ModeNormal && slot == m.cursor
		if onCursor {
			line.Marker = "›"
			line.MarkerStyle = s.MarkerCursorStyle
		}

		blocks := vs.BlocksAt(slot)
		switch {
		case vs.Selected(slot):
			line.CellStyle = s.SelectionStyle
			if slot == vs.SelLo {
				line.Text = g.SlotToTime(vs.SelLo) + " - " + g.SlotToTime(vs.SelHi+1)
			}
		case len(blocks) > 0:
			b := blocks[0]
			line.CellStyle = m.blockStyle(order[b.ID], b.EndTime <= nowClock, onCursor)
			line.Text = blockLineText(b, slot, m.scrollOffset, len(blocks))
		case onCursor:
			line.CellStyle = s.CursorCellStyle
		}
		lines = append(lines, line)
	}
	return lines
}

func (m Model) blockStyle(index int, past, onCursor bool) lipgloss.Style {
	s := m.styles
	switch {
	case onCursor:
		return s.BlockCursorStyle
	case past && index%2 == 1:
		return s.BlockPastAltStyle
	case past:
		return s.BlockPastStyle
	case index%2 == 1:
		return s.BlockAltStyle
	default:
		return s.BlockStyle
	}
}

// blockLineText labels a block's first visible row with its title and the
// row after with its time range.
func blockLineText(b planner.BlockView, slot, firstVisible, stacked int) string {
	first := max(b.StartSlot, firstVisible)
	switch slot {
	case first:
		if stacked > 1 {
			return fmt.Sprintf("%s +%d", b.Title, stacked-1)
		}
		return b.Title
	case first + 1:
		return b.StartTime + " - " + b.EndTime
	}
	return ""
}

func (m Model) renderGoals(vs planner.ViewState, l layout) string {
	s := m.styles
	lines := make([]view.GoalLine, len(vs.Goals))
	for i, g := range vs.Goals {
		lines[i] = view.GoalLine{Text: g.Text, Done: g.Completed, Selected: i == m.goalCursor}
	}
	return view.RenderGoals(view.GoalsViewState{
		Width:             l.goalsW,
		Height:            l.gridH,
		Title:             fmt.Sprintf("Goals %d/%d", vs.GoalsDone(), len(vs.Goals)),
		Lines:             lines,
		Focused:           m.mode == ModeGoals,
		TitleStyle:        s.GoalsTitleStyle,
		TitleFocusedStyle: s.GoalsTitleFocusedStyle,
		ItemStyle:         s.GoalStyle,
		DoneStyle:         s.GoalDoneStyle,
		SelectedStyle:     s.GoalSelectedStyle,
		MutedStyle:        s.GoalsMutedStyle,
		Bg:                s.colorBg,
	})
}

func (m Model) statusLine(vs planner.ViewState) string {
	if m.statusMsg != "" {
		return m.statusMsg
	}
	if vs.Selecting {
		return fmt.Sprintf("Selecting %s - %s", vs.Grid.SlotToTime(vs.SelLo), vs.Grid.SlotToTime(vs.SelHi+1))
	}
	if m.mode == ModeNormal {
		if blocks := vs.BlocksAt(m.cursor); len(blocks) > 0 {
			b := blocks[0]
			return fmt.Sprintf("%s  %s - %s (%s)", b.Title, b.StartTime, b.EndTime, summary.FormatMinutes(b.Duration()))
		}
	}
	return ""
}

func (m Model) statusStyle() lipgloss.Style {
	if m.statusIsErr {
		return m.styles.ErrorStyle
	}
	return m.styles.StatusStyle
}

func (m Model) helpLine() string {
	var keys []string
	switch m.mode {
	case ModeGoals:
		keys = []string{"j/k move", "space toggle", "a add", "d delete", "tab grid", "H history", "y copy", "q quit"}
	default:
		if m.ctrl.Selecting() {
			keys = []string{"j/k extend", "enter name", "esc cancel"}
		} else {
			keys = []string{"drag or space select", "enter add", "x delete", "a goal", "tab goals", "t now", "n next free", "H history", "y copy", "q quit"}
		}
	}
	return strings.Join(keys, " · ")
}
