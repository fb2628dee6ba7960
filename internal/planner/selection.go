package planner

import (
	"context"
	"strings"

	"github.com/javiermolinar/daygrid/internal/day"
)

// BeginSelection starts a drag at slot, clamped to the grid.
// It is ignored while a title prompt is open.
func (c *Controller) BeginSelection(slot int) {
	if c.state.Prompt != nil {
		return
	}
	c.state.Selection.Begin(c.grid.ClampSlot(slot))
}

// ExtendSelection moves the drag to slot, clamped to the grid. It reports
// whether the selection changed.
func (c *Controller) ExtendSelection(slot int) bool {
	return c.state.Selection.Extend(c.grid.ClampSlot(slot))
}

// CancelSelection discards the drag.
func (c *Controller) CancelSelection() {
	c.state.Selection.Cancel()
}

// Selecting reports whether a drag is in progress.
func (c *Controller) Selecting() bool {
	return c.state.Selection.Active()
}

// CommitSelection ends the drag and opens a title prompt for it.
// It returns nil when no drag was in progress.
func (c *Controller) CommitSelection() *TitlePrompt {
	lo, hi, ok := c.state.Selection.Commit()
	if !ok {
		return nil
	}
	return c.OnSelectionCommitted(lo, hi)
}

// OnSelectionCommitted opens a title prompt for the inclusive slot range
// [lo, hi]. The block it would create runs from lo's start to the end of hi.
// A prompt that is already open is cancelled first.
func (c *Controller) OnSelectionCommitted(lo, hi int) *TitlePrompt {
	if lo > hi {
		lo, hi = hi, lo
	}
	lo, hi = c.grid.ClampSlot(lo), c.grid.ClampSlot(hi)

	if p := c.state.Prompt; p != nil {
		p.Cancel()
	}
	p := &TitlePrompt{
		c:         c,
		StartSlot: lo,
		EndSlot:   hi,
		StartTime: c.grid.SlotToTime(lo),
		EndTime:   c.grid.SlotToTime(hi + 1),
	}
	c.state.Prompt = p
	return p
}

// Prompt returns the open title prompt, or nil.
func (c *Controller) Prompt() *TitlePrompt {
	return c.state.Prompt
}

// TitlePrompt asks for the title of a block about to be created.
// Exactly one of Confirm or Cancel takes effect; later calls do nothing.
type TitlePrompt struct {
	c *Controller

	StartSlot int
	EndSlot   int
	StartTime string
	EndTime   string

	done bool
}

// Done reports whether the prompt has been answered.
func (p *TitlePrompt) Done() bool {
	return p.done
}

// Confirm creates the block with the given title and persists the day.
// A blank title is treated as Cancel. It reports whether a block was added.
func (p *TitlePrompt) Confirm(ctx context.Context, title string) (day.TimeBlock, bool) {
	if p.done {
		return day.TimeBlock{}, false
	}
	p.close()

	title = strings.TrimSpace(title)
	if title == "" {
		return day.TimeBlock{}, false
	}
	b, err := p.c.AddBlock(ctx, title, p.StartTime, p.EndTime)
	if err != nil {
		return day.TimeBlock{}, false
	}
	return b, true
}

// Cancel discards the prompt without changing any state.
func (p *TitlePrompt) Cancel() {
	if p.done {
		return
	}
	p.close()
}

func (p *TitlePrompt) close() {
	p.done = true
	if p.c.state.Prompt == p {
		p.c.state.Prompt = nil
	}
}
