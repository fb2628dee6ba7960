// Package scheduler finds open time on the slot grid.
package scheduler

import (
	"time"

	"github.com/javiermolinar/daygrid/internal/day"
	"github.com/javiermolinar/daygrid/internal/grid"
)

// Scheduler answers where a new block fits on a day's grid.
type Scheduler struct {
	grid grid.Grid
}

// New creates a Scheduler for g.
func New(g grid.Grid) *Scheduler {
	return &Scheduler{grid: g}
}

// Gap is a run of slots no block covers. EndSlot is exclusive.
type Gap struct {
	StartSlot int
	EndSlot   int
	Start     string // "HH:MM"
	End       string // "HH:MM"
}

// Minutes returns the gap length.
func (g Gap) Minutes() int {
	return (g.EndSlot - g.StartSlot) * grid.SlotMinutes
}

// FreeGaps returns the maximal runs of uncovered slots, earliest first.
// Blocks are clipped to the grid the way they are drawn, so a block that
// only partly covers a slot still takes it.
func (s *Scheduler) FreeGaps(blocks []day.TimeBlock) []Gap {
	covered := s.covered(blocks)

	var gaps []Gap
	start := -1
	for slot := 0; slot <= len(covered); slot++ {
		free := slot < len(covered) && !covered[slot]
		switch {
		case free && start < 0:
			start = slot
		case !free && start >= 0:
			gaps = append(gaps, s.gap(start, slot))
			start = -1
		}
	}
	return gaps
}

// FreeMinutes returns the total uncovered time on the grid.
func (s *Scheduler) FreeMinutes(blocks []day.TimeBlock) int {
	total := 0
	for _, g := range s.FreeGaps(blocks) {
		total += g.Minutes()
	}
	return total
}

// NextAvailable returns the first free time at or after now, rounded up to
// the next slot boundary. It reports false when nothing is free for the rest
// of the grid.
func (s *Scheduler) NextAvailable(blocks []day.TimeBlock, now time.Time) (Gap, bool) {
	from := s.slotAtOrAfter(now)
	for _, g := range s.FreeGaps(blocks) {
		if g.EndSlot <= from {
			continue
		}
		return s.gap(max(g.StartSlot, from), g.EndSlot), true
	}
	return Gap{}, false
}

// IsFree reports whether every slot in [lo, hi] is on the grid and uncovered.
func (s *Scheduler) IsFree(blocks []day.TimeBlock, lo, hi int) bool {
	if lo > hi || !s.grid.Contains(lo) || !s.grid.Contains(hi) {
		return false
	}
	covered := s.covered(blocks)
	for slot := lo; slot <= hi; slot++ {
		if covered[slot] {
			return false
		}
	}
	return true
}

func (s *Scheduler) covered(blocks []day.TimeBlock) []bool {
	covered := make([]bool, s.grid.TotalSlots())
	for _, b := range blocks {
		start, end, ok := s.grid.Span(b.StartTime, b.EndTime)
		if !ok {
			continue
		}
		for slot := start; slot < end; slot++ {
			covered[slot] = true
		}
	}
	return covered
}

func (s *Scheduler) gap(start, end int) Gap {
	return Gap{
		StartSlot: start,
		EndSlot:   end,
		Start:     s.grid.SlotToTime(start),
		End:       s.grid.SlotToTime(end),
	}
}

// slotAtOrAfter maps now to the first slot that starts at or after it.
// Times before the grid map to slot 0.
func (s *Scheduler) slotAtOrAfter(now time.Time) int {
	minutes := (now.Hour()-s.grid.StartHour)*60 + now.Minute()
	if now.Second() > 0 || now.Nanosecond() > 0 {
		minutes++
	}
	if minutes <= 0 {
		return 0
	}
	return (minutes + grid.SlotMinutes - 1) / grid.SlotMinutes
}
