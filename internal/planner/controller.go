// Package planner ties the slot grid, the day's goals and time blocks, and
// snapshot persistence together behind a single-owner controller.
package planner

import (
	"context"
	"time"

	"github.com/javiermolinar/daygrid/internal/dateutil"
	"github.com/javiermolinar/daygrid/internal/day"
	"github.com/javiermolinar/daygrid/internal/grid"
	"github.com/javiermolinar/daygrid/internal/logger"
	"github.com/javiermolinar/daygrid/internal/summary"
)

// State is everything the controller owns for the active date.
type State struct {
	Date      time.Time // local midnight of the active date
	Now       time.Time
	Goals     day.GoalList
	Blocks    *day.BlockStore
	Selection grid.Selection
	Prompt    *TitlePrompt
}

// Controller owns the planner state. It is not safe for concurrent use:
// one event loop drives every method.
type Controller struct {
	grid      grid.Grid
	snapshots *day.Snapshots
	state     State
	saveOK    bool
}

// New creates a controller for now's date and loads its snapshot.
func New(ctx context.Context, g grid.Grid, snapshots *day.Snapshots, now time.Time) *Controller {
	c := &Controller{
		grid:      g,
		snapshots: snapshots,
		saveOK:    true,
		state: State{
			Now:    now,
			Blocks: day.NewBlockStore(),
		},
	}
	c.load(ctx, now)
	return c
}

// Grid returns the slot grid the controller places blocks on.
func (c *Controller) Grid() grid.Grid {
	return c.grid
}

// Date returns the active date.
func (c *Controller) Date() time.Time {
	return c.state.Date
}

// Now returns the time of the last tick.
func (c *Controller) Now() time.Time {
	return c.state.Now
}

// Goals returns the active day's goals.
func (c *Controller) Goals() []day.Goal {
	return c.state.Goals.All()
}

// Blocks returns the active day's blocks in insertion order.
func (c *Controller) Blocks() []day.TimeBlock {
	return c.state.Blocks.All()
}

// Snapshot returns the active day's state in its persisted form.
func (c *Controller) Snapshot() day.Snapshot {
	return day.Snapshot{
		Goals:      c.state.Goals.All(),
		TimeBlocks: c.state.Blocks.All(),
	}
}

// LastSaveOK reports whether the most recent write reached storage.
func (c *Controller) LastSaveOK() bool {
	return c.saveOK
}

// Tick records now. When now falls on a different local calendar date than
// the active one, the old day is persisted, any selection or open prompt is
// cancelled, and the new date's snapshot is loaded. It reports whether the
// date changed.
func (c *Controller) Tick(ctx context.Context, now time.Time) bool {
	c.state.Now = now
	if dateutil.SameDay(c.state.Date, now) {
		return false
	}

	prev := c.state.Date
	c.save(ctx)
	c.state.Selection.Cancel()
	if p := c.state.Prompt; p != nil {
		p.Cancel()
	}
	c.state.Goals.Reset()
	c.state.Blocks.Reset()
	c.load(ctx, now)

	logger.Info("day rollover", "from", dateutil.Key(prev), "to", dateutil.Key(c.state.Date))
	return true
}

// AddBlock validates and appends a block, then persists the day.
func (c *Controller) AddBlock(ctx context.Context, title, startTime, endTime string) (day.TimeBlock, error) {
	if err := day.ValidateBlock(title, startTime, endTime); err != nil {
		return day.TimeBlock{}, err
	}
	b := c.state.Blocks.Add(title, startTime, endTime)
	c.save(ctx)
	return b, nil
}

// RemoveBlock deletes a block and persists the day. An unknown id is a
// no-op and nothing is written.
func (c *Controller) RemoveBlock(ctx context.Context, id day.ID) bool {
	if !c.state.Blocks.Remove(id) {
		return false
	}
	c.save(ctx)
	return true
}

// FindBlock resolves a block id or unique id prefix.
func (c *Controller) FindBlock(ref string) (day.TimeBlock, bool) {
	return c.state.Blocks.Find(ref)
}

// AddGoal appends a goal and persists the day.
func (c *Controller) AddGoal(ctx context.Context, text string) (day.Goal, error) {
	g, err := c.state.Goals.Add(text)
	if err != nil {
		return day.Goal{}, err
	}
	c.save(ctx)
	return g, nil
}

// ToggleGoal flips a goal's completion and persists the day.
func (c *Controller) ToggleGoal(ctx context.Context, id day.ID) bool {
	if !c.state.Goals.Toggle(id) {
		return false
	}
	c.save(ctx)
	return true
}

// DeleteGoal removes a goal and persists the day.
func (c *Controller) DeleteGoal(ctx context.Context, id day.ID) bool {
	if !c.state.Goals.Remove(id) {
		return false
	}
	c.save(ctx)
	return true
}

// FindGoal resolves a goal id or unique id prefix.
func (c *Controller) FindGoal(ref string) (day.Goal, bool) {
	return c.state.Goals.Find(ref)
}

// History returns the previous days (7 when days <= 0) that have content,
// most recent first.
func (c *Controller) History(ctx context.Context, days int) []summary.Day {
	return summary.BuildHistory(ctx, c.snapshots, c.state.Date, days)
}

// Summary renders the active day as plain text.
func (c *Controller) Summary() string {
	return summary.Text(summary.SummarizeDay(c.state.Date, c.Snapshot()))
}

// Save persists the active day.
func (c *Controller) Save(ctx context.Context) bool {
	c.save(ctx)
	return c.saveOK
}

func (c *Controller) save(ctx context.Context) {
	c.saveOK = c.snapshots.Save(ctx, c.state.Date, c.Snapshot())
}

func (c *Controller) load(ctx context.Context, now time.Time) {
	c.state.Date = dateutil.TruncateToDay(now)
	raw := c.snapshots.Load(ctx, c.state.Date)
	c.state.Goals.Load(raw.Goals)
	c.state.Blocks.Load(raw.TimeBlocks)
	logger.Debug("loaded day", "date", dateutil.Key(c.state.Date),
		"goals", c.state.Goals.Len(), "blocks", c.state.Blocks.Len())
}

// Snapshots returns the store the controller persists to.
func (c *Controller) Snapshots() *day.Snapshots {
	return c.snapshots
}
