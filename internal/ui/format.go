package ui

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/daygrid/internal/day"
	"github.com/javiermolinar/daygrid/internal/grid"
	"github.com/javiermolinar/daygrid/internal/scheduler"
	"github.com/javiermolinar/daygrid/internal/summary"
)

const shortIDLen = 8

// PrintOpts configures day printing.
type PrintOpts struct {
	Verbose      bool // full titles and ids
	MaxDescWidth int  // maximum title width (0 = auto)
}

// CalcMaxDescWidth returns the title column width.
func (o PrintOpts) CalcMaxDescWidth(defaultWidth int) int {
	if o.MaxDescWidth > 0 {
		return o.MaxDescWidth
	}
	if !o.Verbose {
		return defaultWidth
	}
	// "  HH:MM-HH:MM  " + "  2h30m  " + id
	overhead := 15 + 9 + shortIDLen
	return max(termWidth()-overhead, defaultWidth)
}

// ShortID returns the id prefix the CLI prints and accepts.
func ShortID(id day.ID) string {
	s := id.String()
	if len(s) > shortIDLen {
		return s[:shortIDLen]
	}
	return s
}

func truncate(s string, width int) string {
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

// PrintDay writes a day's goals and schedule. Blocks are listed by start
// time.
func PrintDay(w io.Writer, d summary.Day, g grid.Grid, opts PrintOpts) {
	fmt.Fprintf(w, "=== %s ===\n\n", formatHeader(d.Date.Format("Monday, January 2, 2006")))

	fmt.Fprintf(w, "%s %s\n", formatHeader("Goals"), formatMuted(fmt.Sprintf("%d/%d", d.Stats.GoalsDone, d.Stats.GoalsTotal)))
	if len(d.Goals) == 0 {
		fmt.Fprintln(w, formatMuted("  (none)"))
	}
	for _, goal := range d.Goals {
		PrintGoalRow(w, goal)
	}

	fmt.Fprintf(w, "\n%s\n", formatHeader("Schedule"))
	if len(d.Blocks) == 0 {
		fmt.Fprintln(w, formatMuted("  (none)"))
	}
	width := opts.CalcMaxDescWidth(32)
	for _, b := range sortedBlocks(d.Blocks) {
		PrintBlockRow(w, b, g, width)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Planned: %s | Blocks: %d\n",
		formatDone(summary.FormatMinutes(d.Stats.PlannedMinutes)), d.Stats.Blocks)
	fmt.Fprintf(w, "Day: %s\n", DayBar(d.Stats.PlannedMinutes, g.TotalSlots()*grid.SlotMinutes, 20))
	fmt.Fprintf(w, "Free: %s\n", FreeTime(scheduler.New(g), d.Blocks))
}

// FreeTime lists the open ranges on the grid with their total.
func FreeTime(s *scheduler.Scheduler, blocks []day.TimeBlock) string {
	gaps := s.FreeGaps(blocks)
	if len(gaps) == 0 {
		return formatWarn("none")
	}
	ranges := make([]string, len(gaps))
	for i, g := range gaps {
		ranges[i] = g.Start + "-" + g.End
	}
	return fmt.Sprintf("%s (%s)", strings.Join(ranges, ", "), formatDone(summary.FormatMinutes(s.FreeMinutes(blocks))))
}

// PrintGoalRow writes one goal with its completion mark and short id.
func PrintGoalRow(w io.Writer, g day.Goal) {
	mark := "○"
	text := g.Text
	if g.Completed {
		mark = formatDone("✓")
		text = formatMuted(text)
	}
	fmt.Fprintf(w, "  %s  %s  %s\n", mark, text, formatMuted(ShortID(g.ID)))
}

// PrintBlockRow writes one block. Blocks outside the grid hours are flagged.
func PrintBlockRow(w io.Writer, b day.TimeBlock, g grid.Grid, width int) {
	title := truncate(b.Title, width)
	pad := max(width-ansi.StringWidth(title), 0)
	flag := ""
	if _, _, visible := g.Span(b.StartTime, b.EndTime); !visible {
		flag = "  " + formatWarn("(outside grid)")
	}
	fmt.Fprintf(w, "  %s-%s  %s%s  %5s  %s%s\n",
		b.StartTime, b.EndTime,
		formatBlock(title), strings.Repeat(" ", pad),
		summary.FormatMinutes(b.Duration()),
		formatMuted(ShortID(b.ID)), flag)
}

// PrintHistoryRow writes a one-line digest of a past day.
func PrintHistoryRow(w io.Writer, d summary.Day) {
	fmt.Fprintf(w, "  %-12s  goals %s  blocks %-2d  %s planned\n",
		d.Date.Format("Mon Jan 2"),
		formatDone(fmt.Sprintf("%d/%d", d.Stats.GoalsDone, d.Stats.GoalsTotal)),
		d.Stats.Blocks,
		summary.FormatMinutes(d.Stats.PlannedMinutes))
}

// DayBar renders how much of the grid is planned.
func DayBar(planned, total, width int) string {
	if total <= 0 {
		return "[" + strings.Repeat("░", width) + "] (0% planned)"
	}
	planned = min(planned, total)
	pct := (planned * 100) / total
	filled := (planned * width) / total
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %s", formatBlock(bar), formatDone(fmt.Sprintf("(%d%% planned)", pct)))
}

func sortedBlocks(blocks []day.TimeBlock) []day.TimeBlock {
	out := slices.Clone(blocks)
	slices.SortStableFunc(out, func(a, b day.TimeBlock) int {
		return cmp.Compare(a.StartTime, b.StartTime)
	})
	return out
}
