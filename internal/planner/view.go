package planner

import (
	"time"

	"github.com/javiermolinar/daygrid/internal/day"
	"github.com/javiermolinar/daygrid/internal/grid"
)

// BlockView is a block with its slot span on the visible grid.
// Visible is false when no part of the block falls on the grid; such blocks
// are kept but not drawn.
type BlockView struct {
	day.TimeBlock
	StartSlot int // inclusive
	EndSlot   int // exclusive
	Visible   bool
}

// Covers reports whether the block is drawn on slot.
func (b BlockView) Covers(slot int) bool {
	return b.Visible && slot >= b.StartSlot && slot < b.EndSlot
}

// ViewState is a render-ready copy of the controller state.
type ViewState struct {
	Date   time.Time
	Now    time.Time
	Grid   grid.Grid
	Goals  []day.Goal
	Blocks []BlockView

	Selecting bool
	SelLo     int
	SelHi     int

	PromptOpen  bool
	PromptStart string
	PromptEnd   string

	SaveOK bool
}

// View returns the current state for rendering.
func (c *Controller) View() ViewState {
	v := ViewState{
		Date:   c.state.Date,
		Now:    c.state.Now,
		Grid:   c.grid,
		Goals:  c.state.Goals.All(),
		SaveOK: c.saveOK,
	}

	blocks := c.state.Blocks.All()
	v.Blocks = make([]BlockView, 0, len(blocks))
	for _, b := range blocks {
		start, end, ok := c.grid.Span(b.StartTime, b.EndTime)
		v.Blocks = append(v.Blocks, BlockView{
			TimeBlock: b,
			StartSlot: start,
			EndSlot:   end,
			Visible:   ok,
		})
	}

	v.SelLo, v.SelHi, v.Selecting = c.state.Selection.Range()

	if p := c.state.Prompt; p != nil {
		v.PromptOpen = true
		v.PromptStart = p.StartTime
		v.PromptEnd = p.EndTime
	}
	return v
}

// Selected reports whether slot is inside the selection being dragged.
func (v ViewState) Selected(slot int) bool {
	return v.Selecting && slot >= v.SelLo && slot <= v.SelHi
}

// BlocksAt returns the blocks drawn on slot, in insertion order.
func (v ViewState) BlocksAt(slot int) []BlockView {
	var out []BlockView
	for _, b := range v.Blocks {
		if b.Covers(slot) {
			out = append(out, b)
		}
	}
	return out
}

// GoalsDone counts completed goals.
func (v ViewState) GoalsDone() int {
	n := 0
	for _, g := range v.Goals {
		if g.Completed {
			n++
		}
	}
	return n
}

// NowSlot returns the slot containing Now, and false when Now is off the grid.
func (v ViewState) NowSlot() (int, bool) {
	slot, ok := v.Grid.TimeToSlot(v.Now.Format("15:04"))
	return slot, ok && v.Grid.Contains(slot)
}
