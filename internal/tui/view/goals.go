package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// GoalLine is one goal in the side panel.
type GoalLine struct {
	Text     string
	Done     bool
	Selected bool
}

// GoalsViewState holds the goals side panel.
type GoalsViewState struct {
	Width   int
	Height  int
	Title   string
	Lines   []GoalLine
	Focused bool

	TitleStyle        lipgloss.Style
	TitleFocusedStyle lipgloss.Style
	ItemStyle         lipgloss.Style
	DoneStyle         lipgloss.Style
	SelectedStyle     lipgloss.Style
	MutedStyle        lipgloss.Style
	Bg                lipgloss.Color
}

// RenderGoals renders the panel, scrolling so the selected goal stays visible.
func RenderGoals(s GoalsViewState) string {
	if s.Width <= 0 || s.Height <= 0 {
		return ""
	}

	titleStyle := s.TitleStyle
	if s.Focused {
		titleStyle = s.TitleFocusedStyle
	}
	rows := []string{titleStyle.Render(PadRight(s.Title, s.Width))}

	visible := s.Height - 1
	if len(s.Lines) == 0 {
		rows = append(rows, s.MutedStyle.Render(PadRight("  no goals yet, press a", s.Width)))
		return PlaceBox(s.Width, s.Height, lipgloss.Top, strings.Join(rows, "\n"), s.Bg)
	}

	first := 0
	for i, line := range s.Lines {
		if line.Selected && i >= visible {
			first = i - visible + 1
		}
	}

	for i := first; i < len(s.Lines) && len(rows) <= visible; i++ {
		line := s.Lines[i]
		mark := "[ ] "
		style := s.ItemStyle
		if line.Done {
			mark = "[x] "
			style = s.DoneStyle
		}
		if line.Selected && s.Focused {
			style = s.SelectedStyle
		}
		rows = append(rows, style.Render(PadRight(" "+mark+line.Text, s.Width)))
	}
	return PlaceBox(s.Width, s.Height, lipgloss.Top, strings.Join(rows, "\n"), s.Bg)
}
