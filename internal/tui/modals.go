package tui

import (
	"fmt"
	"strings"

	"github.com/javiermolinar/daygrid/internal/day"
	"github.com/javiermolinar/daygrid/internal/summary"
	"github.com/javiermolinar/daygrid/internal/tui/view"
)

// renderModal renders the current modal.
func (m Model) renderModal() string {
	var modal view.Modal
	switch m.modalType {
	case ModalBlockTitle:
		modal = m.blockTitleModal()
	case ModalGoalInput:
		modal = view.Modal{
			Title:   "New goal",
			Body:    m.styles.ModalInputStyle.Render(m.input.View()),
			Buttons: []string{"[Enter] Add", "[Esc] Cancel"},
		}
	case ModalConfirmDelete:
		modal = m.confirmDeleteModal()
	case ModalHistory:
		modal = m.historyModal()
	default:
		return ""
	}
	return modal.Render(m.styles.modalStyles())
}

func (m Model) blockTitleModal() view.Modal {
	modal := view.Modal{
		Title:   "New block",
		Body:    m.styles.ModalInputStyle.Render(m.input.View()),
		Buttons: []string{"[Enter] Save", "[Esc] Cancel"},
	}
	if p := m.titlePrompt; p != nil {
		b := day.TimeBlock{StartTime: p.StartTime, EndTime: p.EndTime}
		modal.Meta = fmt.Sprintf("%s - %s  (%s)", p.StartTime, p.EndTime, summary.FormatMinutes(b.Duration()))
	}
	return modal
}

func (m Model) confirmDeleteModal() view.Modal {
	title := "Delete goal?"
	if m.pending.blockID != "" {
		title = "Delete block?"
	}
	return view.Modal{
		Title:   title,
		Body:    m.styles.ModalBodyStyle.Render(view.Truncate(m.pending.label, modalWidth-4)),
		Warn:    "This cannot be undone.",
		Buttons: []string{"[y] Delete", "[n] Cancel"},
	}
}

func (m Model) historyModal() view.Modal {
	modal := view.Modal{
		Title:   "History",
		Buttons: []string{"[Esc] Close", "[h/l] Day", "[y] Copy"},
	}
	switch {
	case !m.historyReady:
		modal.Meta = "Loading..."
	case len(m.history) == 0:
		modal.Meta = fmt.Sprintf("Nothing planned in the last %d days", summaryDays)
	default:
		modal.Title = fmt.Sprintf("History  %d/%d", m.historyIndex+1, len(m.history))
		modal.Body = m.renderHistoryBody(m.history[m.historyIndex])
	}
	return modal
}

// renderHistoryBody renders a day's summary text, one styled line at a time
// so the modal background survives line breaks.
func (m Model) renderHistoryBody(d summary.Day) string {
	s := m.styles
	lines := strings.Split(strings.TrimRight(summary.Text(d), "\n"), "\n")
	maxLines := max(m.height-12, 4)
	if len(lines) > maxLines {
		lines = append(lines[:maxLines-1], view.Ellipsis)
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		style := s.ModalBodyStyle
		if i == 0 {
			style = s.ModalTitleStyle
		}
		out[i] = style.Render(view.Truncate(line, modalWidth-4))
	}
	return strings.Join(out, "\n")
}
