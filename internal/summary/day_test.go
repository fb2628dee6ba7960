package summary

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/daygrid/internal/day"
	"github.com/javiermolinar/daygrid/internal/db"
)

func TestSummarizeDay(t *testing.T) {
	date := time.Date(2025, 1, 15, 14, 30, 0, 0, time.Local)
	snap := day.Snapshot{
		Goals: []day.Goal{
			{ID: "g1", Text: "Ship release", Completed: true},
			{ID: "g2", Text: "Review PRs"},
		},
		TimeBlocks: []day.TimeBlock{
			{ID: "b1", Title: "Standup", StartTime: "09:00", EndTime: "09:30"},
			{ID: "b2", Title: "Deep work", StartTime: "10:00", EndTime: "12:00"},
		},
	}

	d := SummarizeDay(date, snap)

	if want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local); !d.Date.Equal(want) {
		t.Fatalf("date = %v, want %v", d.Date, want)
	}
	if d.Stats.GoalsTotal != 2 || d.Stats.GoalsDone != 1 {
		t.Fatalf("goals = %d/%d, want 1/2", d.Stats.GoalsDone, d.Stats.GoalsTotal)
	}
	if d.Stats.Blocks != 2 {
		t.Fatalf("blocks = %d, want 2", d.Stats.Blocks)
	}
	if d.Stats.PlannedMinutes != 150 {
		t.Fatalf("planned minutes = %d, want 150", d.Stats.PlannedMinutes)
	}
}

func TestBuildHistory(t *testing.T) {
	ctx := context.Background()
	snaps := day.NewSnapshots(db.NewMemory())
	today := time.Date(2025, 1, 15, 9, 0, 0, 0, time.Local)

	yesterday := today.AddDate(0, 0, -1)
	snaps.Save(ctx, yesterday, day.Snapshot{
		Goals: []day.Goal{{ID: "g1", Text: "Yesterday's goal"}},
	})
	// Three days back holds only an empty snapshot and must be skipped.
	snaps.Save(ctx, today.AddDate(0, 0, -3), day.Snapshot{})
	snaps.Save(ctx, today.AddDate(0, 0, -5), day.Snapshot{
		TimeBlocks: []day.TimeBlock{{ID: "b1", Title: "Old", StartTime: "09:00", EndTime: "10:00"}},
	})
	// Outside the window.
	snaps.Save(ctx, today.AddDate(0, 0, -8), day.Snapshot{
		Goals: []day.Goal{{ID: "g2", Text: "Too old"}},
	})
	// Today is never part of the history.
	snaps.Save(ctx, today, day.Snapshot{
		Goals: []day.Goal{{ID: "g3", Text: "Today"}},
	})

	history := BuildHistory(ctx, snaps, today, 7)
	if len(history) != 2 {
		t.Fatalf("history = %d days, want 2", len(history))
	}
	if got := history[0].Date.Day(); got != 14 {
		t.Errorf("first day = %d, want 14 (most recent first)", got)
	}
	if got := history[1].Date.Day(); got != 10 {
		t.Errorf("second day = %d, want 10", got)
	}
}

func TestBuildHistory_MigratesLegacyWithoutWriting(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemory()
	snaps := day.NewSnapshots(store)
	today := time.Date(2025, 1, 15, 9, 0, 0, 0, time.Local)

	legacy := []byte(`{"goals":[],"timeBlocks":{"09:00":"Standup","10:00":""}}`)
	key := day.StorageKey(today.AddDate(0, 0, -1))
	if err := store.Set(ctx, key, legacy); err != nil {
		t.Fatalf("seeding legacy snapshot: %v", err)
	}

	history := BuildHistory(ctx, snaps, today, 0)
	if len(history) != 1 {
		t.Fatalf("history = %d days, want 1", len(history))
	}
	blocks := history[0].Blocks
	if len(blocks) != 1 || blocks[0].Title != "Standup" || blocks[0].EndTime != "10:00" {
		t.Fatalf("migrated blocks = %+v", blocks)
	}

	stored, err := store.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(stored) != string(legacy) {
		t.Errorf("legacy snapshot was rewritten: %s", stored)
	}
}

func TestBuildHistory_SkipsLegacyDayWithOnlyEmptySlots(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemory()
	snaps := day.NewSnapshots(store)
	today := time.Date(2025, 1, 15, 9, 0, 0, 0, time.Local)

	empty := []byte(`{"goals":[],"timeBlocks":{"09:00":"","10:00":""}}`)
	if err := store.Set(ctx, day.StorageKey(today.AddDate(0, 0, -2)), empty); err != nil {
		t.Fatalf("seeding legacy snapshot: %v", err)
	}

	if history := BuildHistory(ctx, snaps, today, 0); len(history) != 0 {
		t.Errorf("history = %+v, want no days", history)
	}
}

func TestText(t *testing.T) {
	d := SummarizeDay(time.Date(2025, 1, 13, 0, 0, 0, 0, time.Local), day.Snapshot{
		Goals: []day.Goal{{ID: "g1", Text: "Ship", Completed: true}},
		TimeBlocks: []day.TimeBlock{
			{ID: "b1", Title: "Standup", StartTime: "09:00", EndTime: "09:30"},
		},
	})

	text := Text(d)
	for _, want := range []string{
		"Monday, January 13",
		"Goals (1/1)",
		"[x] Ship",
		"Schedule (30m planned)",
		"09:00-09:30  Standup",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("summary missing %q:\n%s", want, text)
		}
	}
}

func TestText_Empty(t *testing.T) {
	text := Text(SummarizeDay(time.Date(2025, 1, 13, 0, 0, 0, 0, time.Local), day.Snapshot{}))
	if strings.Count(text, "(none)") != 2 {
		t.Errorf("expected two (none) placeholders:\n%s", text)
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		mins int
		want string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h"},
		{150, "2h30m"},
		{125, "2h05m"},
	}
	for _, tt := range tests {
		if got := FormatMinutes(tt.mins); got != tt.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tt.mins, got, tt.want)
		}
	}
}
