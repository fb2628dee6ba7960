// Package summary provides shared day summary utilities.
package summary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/daygrid/internal/dateutil"
	"github.com/javiermolinar/daygrid/internal/day"
)

// DefaultHistoryDays is how far back the history looks by default.
const DefaultHistoryDays = 7

// Stats aggregates a day's goals and blocks.
type Stats struct {
	GoalsTotal     int
	GoalsDone      int
	Blocks         int
	PlannedMinutes int
}

// Day holds one date's content and its stats.
type Day struct {
	Date   time.Time
	Goals  []day.Goal
	Blocks []day.TimeBlock
	Stats  Stats
}

// IsEmpty reports whether the day has no goals and no blocks.
func (d Day) IsEmpty() bool {
	return len(d.Goals) == 0 && len(d.Blocks) == 0
}

// SummarizeDay builds summary data for a date from its snapshot.
func SummarizeDay(date time.Time, snap day.Snapshot) Day {
	d := Day{
		Date:   dateutil.TruncateToDay(date),
		Goals:  snap.Goals,
		Blocks: snap.TimeBlocks,
	}
	d.Stats.GoalsTotal = len(snap.Goals)
	for _, g := range snap.Goals {
		if g.Completed {
			d.Stats.GoalsDone++
		}
	}
	d.Stats.Blocks = len(snap.TimeBlocks)
	for _, b := range snap.TimeBlocks {
		d.Stats.PlannedMinutes += b.Duration()
	}
	return d
}

// BuildHistory loads the days dates before today that have any content,
// most recent first. Legacy snapshots are migrated in memory only.
func BuildHistory(ctx context.Context, snaps *day.Snapshots, today time.Time, days int) []Day {
	if days <= 0 {
		days = DefaultHistoryDays
	}

	var history []Day
	for _, date := range dateutil.PreviousDays(today, days) {
		raw := snaps.Load(ctx, date)
		if raw.IsEmpty() {
			continue
		}
		history = append(history, SummarizeDay(date, raw.Snapshot()))
	}
	return history
}

// Text renders a plain-text summary of d, suitable for the clipboard.
func Text(d Day) string {
	var b strings.Builder
	b.WriteString(dateutil.FormatDate(d.Date))
	b.WriteString("\n")

	fmt.Fprintf(&b, "\nGoals (%d/%d)\n", d.Stats.GoalsDone, d.Stats.GoalsTotal)
	if len(d.Goals) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, g := range d.Goals {
		mark := " "
		if g.Completed {
			mark = "x"
		}
		fmt.Fprintf(&b, "  [%s] %s\n", mark, g.Text)
	}

	fmt.Fprintf(&b, "\nSchedule (%s planned)\n", FormatMinutes(d.Stats.PlannedMinutes))
	if len(d.Blocks) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, blk := range d.Blocks {
		fmt.Fprintf(&b, "  %s-%s  %s\n", blk.StartTime, blk.EndTime, blk.Title)
	}
	return b.String()
}

// FormatMinutes formats a duration in minutes as "2h30m", "45m" or "3h".
func FormatMinutes(m int) string {
	h, rest := m/60, m%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", rest)
	case rest == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%02dm", h, rest)
	}
}
