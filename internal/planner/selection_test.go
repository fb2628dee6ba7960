package planner

import (
	"context"
	"strings"
	"testing"

	"github.com/javiermolinar/daygrid/internal/grid"
)

func contains(s, sub string) bool {
	return strings.Contains(s, sub)
}

func TestCommitSelection_SingleSlot(t *testing.T) {
	c, _ := newTestController(t)
	g := c.Grid()

	c.BeginSelection(3)
	p := c.CommitSelection()
	if p == nil {
		t.Fatal("CommitSelection returned nil")
	}
	if p.StartTime != g.SlotToTime(3) || p.EndTime != g.SlotToTime(4) {
		t.Errorf("prompt range = %s-%s, want %s-%s", p.StartTime, p.EndTime, g.SlotToTime(3), g.SlotToTime(4))
	}

	b, ok := p.Confirm(context.Background(), "Focus")
	if !ok {
		t.Fatal("Confirm did not add a block")
	}
	if b.StartTime != "09:30" || b.EndTime != "10:00" || b.Duration() != 30 {
		t.Errorf("block = %+v, want a 30 minute block at 09:30", b)
	}
}

func TestCommitSelection_ReverseDrag(t *testing.T) {
	c, _ := newTestController(t)

	c.BeginSelection(5)
	if !c.ExtendSelection(2) {
		t.Fatal("ExtendSelection(2) reported no change")
	}
	p := c.CommitSelection()
	if p.StartSlot != 2 || p.EndSlot != 5 {
		t.Errorf("prompt slots = (%d, %d), want (2, 5)", p.StartSlot, p.EndSlot)
	}
	if p.StartTime != "09:00" || p.EndTime != "11:00" {
		t.Errorf("prompt range = %s-%s, want 09:00-11:00", p.StartTime, p.EndTime)
	}
	if c.Selecting() {
		t.Error("selection still active after commit")
	}
}

func TestCommitSelection_Idle(t *testing.T) {
	c, _ := newTestController(t)
	if p := c.CommitSelection(); p != nil {
		t.Errorf("CommitSelection while idle = %+v, want nil", p)
	}
	if c.ExtendSelection(4) {
		t.Error("ExtendSelection while idle reported a change")
	}
}

func TestSelection_ClampsToGrid(t *testing.T) {
	c, _ := newTestController(t)
	last := c.Grid().TotalSlots() - 1

	c.BeginSelection(-4)
	c.ExtendSelection(99)
	p := c.CommitSelection()
	if p.StartSlot != 0 || p.EndSlot != last {
		t.Errorf("prompt slots = (%d, %d), want (0, %d)", p.StartSlot, p.EndSlot, last)
	}
	if p.StartTime != "08:00" || p.EndTime != "18:00" {
		t.Errorf("prompt range = %s-%s, want 08:00-18:00", p.StartTime, p.EndTime)
	}
}

func TestExtendSelection_Unchanged(t *testing.T) {
	c, _ := newTestController(t)
	c.BeginSelection(4)
	if c.ExtendSelection(4) {
		t.Error("extending to the current end reported a change")
	}
	if !c.ExtendSelection(6) || c.ExtendSelection(6) {
		t.Error("extend change reporting is wrong")
	}
}

func TestCancelSelection(t *testing.T) {
	c, _ := newTestController(t)
	c.BeginSelection(4)
	c.CancelSelection()

	if c.Selecting() || c.CommitSelection() != nil {
		t.Error("cancelled selection still committed")
	}
}

func TestTitlePrompt_BlankConfirmCancels(t *testing.T) {
	c, store := newTestController(t)
	ctx := context.Background()

	p := c.OnSelectionCommitted(0, 1)
	if _, ok := p.Confirm(ctx, "   "); ok {
		t.Fatal("blank title added a block")
	}
	if !p.Done() || c.Prompt() != nil {
		t.Error("blank confirm did not close the prompt")
	}
	if len(c.Blocks()) != 0 {
		t.Errorf("blocks = %d, want 0", len(c.Blocks()))
	}
	if v, _ := store.Get(ctx, "planner_2024-01-15"); v != nil {
		t.Errorf("nothing should be written, got %s", v)
	}
}

func TestTitlePrompt_ExactlyOnce(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	p := c.OnSelectionCommitted(0, 1)
	if _, ok := p.Confirm(ctx, "First"); !ok {
		t.Fatal("first Confirm failed")
	}
	if _, ok := p.Confirm(ctx, "Second"); ok {
		t.Error("second Confirm took effect")
	}
	p.Cancel()
	if len(c.Blocks()) != 1 || c.Blocks()[0].Title != "First" {
		t.Errorf("blocks = %+v, want only First", c.Blocks())
	}

	q := c.OnSelectionCommitted(2, 2)
	q.Cancel()
	if _, ok := q.Confirm(ctx, "After cancel"); ok {
		t.Error("Confirm after Cancel took effect")
	}
	if len(c.Blocks()) != 1 {
		t.Errorf("blocks = %d, want 1", len(c.Blocks()))
	}
}

func TestTitlePrompt_NewPromptCancelsOld(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	old := c.OnSelectionCommitted(0, 0)
	current := c.OnSelectionCommitted(4, 5)
	if !old.Done() {
		t.Error("old prompt still open")
	}
	if c.Prompt() != current {
		t.Error("controller does not hold the new prompt")
	}
	if _, ok := old.Confirm(ctx, "Stale"); ok {
		t.Error("stale prompt added a block")
	}
	if c.Prompt() != current {
		t.Error("stale Confirm closed the new prompt")
	}
}

func TestBeginSelection_IgnoredWhilePromptOpen(t *testing.T) {
	c, _ := newTestController(t)
	c.OnSelectionCommitted(0, 0)

	c.BeginSelection(3)
	if c.Selecting() {
		t.Error("selection started while a prompt is open")
	}
}

func TestView(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	c.AddBlock(ctx, "Standup", "09:00", "09:30")
	c.AddBlock(ctx, "Late", "17:30", "19:00")
	c.AddBlock(ctx, "Early", "06:00", "07:00")
	c.AddBlock(ctx, "Odd", "10:15", "10:45")
	g, _ := c.AddGoal(ctx, "Ship")
	c.ToggleGoal(ctx, g.ID)
	c.BeginSelection(6)
	c.ExtendSelection(8)

	v := c.View()

	if v.GoalsDone() != 1 || len(v.Goals) != 1 {
		t.Errorf("goals = %d done of %d", v.GoalsDone(), len(v.Goals))
	}
	tests := []struct {
		title      string
		start, end int
		visible    bool
	}{
		{"Standup", 2, 3, true},
		{"Late", 19, 20, true},
		{"Early", 0, 0, false},
		{"Odd", 4, 6, true},
	}
	if len(v.Blocks) != len(tests) {
		t.Fatalf("blocks = %d, want %d", len(v.Blocks), len(tests))
	}
	for i, tt := range tests {
		b := v.Blocks[i]
		if b.Title != tt.title || b.Visible != tt.visible {
			t.Errorf("block %d = %s visible=%v, want %s visible=%v", i, b.Title, b.Visible, tt.title, tt.visible)
			continue
		}
		if tt.visible && (b.StartSlot != tt.start || b.EndSlot != tt.end) {
			t.Errorf("%s span = [%d, %d), want [%d, %d)", b.Title, b.StartSlot, b.EndSlot, tt.start, tt.end)
		}
	}

	// Exactly the slots in [6, 8] are selected.
	for slot := range grid.Default().TotalSlots() {
		want := slot >= 6 && slot <= 8
		if v.Selected(slot) != want {
			t.Errorf("Selected(%d) = %v, want %v", slot, v.Selected(slot), want)
		}
	}

	if got := v.BlocksAt(5); len(got) != 1 || got[0].Title != "Odd" {
		t.Errorf("BlocksAt(5) = %+v", got)
	}
	if got := v.BlocksAt(0); len(got) != 0 {
		t.Errorf("off-grid block drawn at slot 0: %+v", got)
	}
	if slot, ok := v.NowSlot(); !ok || slot != 4 {
		t.Errorf("NowSlot() = %d, %v; want 4, true", slot, ok)
	}
}

func TestView_Prompt(t *testing.T) {
	c, _ := newTestController(t)
	c.OnSelectionCommitted(2, 3)

	v := c.View()
	if !v.PromptOpen || v.PromptStart != "09:00" || v.PromptEnd != "10:00" {
		t.Errorf("prompt view = %v %s-%s", v.PromptOpen, v.PromptStart, v.PromptEnd)
	}
	if !v.SaveOK {
		t.Error("SaveOK should start true")
	}
}
