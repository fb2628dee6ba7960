package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/daygrid/internal/dateutil"
)

// HeaderViewState holds what the top line shows.
type HeaderViewState struct {
	Width     int
	Date      time.Time
	Now       time.Time
	GoalsDone int
	GoalsAll  int
	Blocks    int
	SaveOK    bool

	TitleStyle lipgloss.Style
	DateStyle  lipgloss.Style
	MetaStyle  lipgloss.Style
	WarnStyle  lipgloss.Style
	Bg         lipgloss.Color
}

// RenderHeader renders "daygrid  Monday, January 15   09:05 AM" with the
// day's counters right-aligned.
func RenderHeader(s HeaderViewState) string {
	left := s.TitleStyle.Render("daygrid") + s.DateStyle.Render("  "+dateutil.FormatDate(s.Date)+"  "+dateutil.FormatClock(s.Now))

	meta := fmt.Sprintf("goals %d/%d  blocks %d", s.GoalsDone, s.GoalsAll, s.Blocks)
	right := s.MetaStyle.Render(meta)
	if !s.SaveOK {
		right = s.WarnStyle.Render("not saved") + s.MetaStyle.Render("  "+meta)
	}

	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return PlaceBox(s.Width, 1, lipgloss.Top, left, s.Bg)
	}
	return PlaceBox(s.Width, 1, lipgloss.Top, left+lipgloss.NewStyle().Background(s.Bg).Render(strings.Repeat(" ", gap))+right, s.Bg)
}
