package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestView_Empty(t *testing.T) {
	env := newTestEnv(t)
	env.model.width, env.model.height = 0, 0
	if got := env.model.View(); got != "Loading..." {
		t.Errorf("View() = %q, want Loading...", got)
	}
}

func TestView_TooSmall(t *testing.T) {
	env := newTestEnv(t)
	env.send(t, tea.WindowSizeMsg{Width: 10, Height: 3})
	if got := env.model.View(); !strings.Contains(got, "Terminal too small") {
		t.Errorf("View() = %q", got)
	}
}

func TestView_Layout(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	if _, err := env.ctrl.AddBlock(ctx, "Standup", "09:00", "10:00"); err != nil {
		t.Fatalf("AddBlock() error = %v", err)
	}
	if _, err := env.ctrl.AddGoal(ctx, "Ship the release"); err != nil {
		t.Fatalf("AddGoal() error = %v", err)
	}

	out := env.model.View()
	lines := strings.Split(out, "\n")
	if len(lines) != 30 {
		t.Fatalf("View() has %d lines, want 30", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 100 {
			t.Errorf("line %d width = %d, want 100: %q", i, w, line)
		}
	}

	for _, want := range []string{"daygrid", "Monday, January 15", "Goals 0/1", "Ship the release", "8 AM", "9 AM", "Standup", "09:00 - 10:00"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	l := env.model.layout()
	// Slot 2 is 09:00, the first row of Standup.
	row := ansi.Strip(lines[l.gridTop+2])
	if !strings.Contains(row, "Standup") {
		t.Errorf("row for 09:00 = %q", row)
	}
	// The now marker sits on 10:00, which is also the cursor slot.
	if cur := ansi.Strip(lines[l.gridTop+4]); !strings.Contains(cur, "›") {
		t.Errorf("cursor row = %q", cur)
	}
}

func TestView_NarrowHidesGoals(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.ctrl.AddGoal(context.Background(), "Hidden goal"); err != nil {
		t.Fatalf("AddGoal() error = %v", err)
	}
	env.send(t, tea.WindowSizeMsg{Width: 50, Height: 30})

	if out := env.model.View(); strings.Contains(out, "Hidden goal") {
		t.Error("narrow terminals should hide the goals panel")
	}
	if l := env.model.layout(); l.goalsW != 0 || l.gridW != l.innerW {
		t.Errorf("layout = %+v", l)
	}
}

func TestView_Selection(t *testing.T) {
	env := newTestEnv(t)
	env.keys(t, " ", "j")

	out := env.model.View()
	if !strings.Contains(out, "10:00 - 11:00") {
		t.Errorf("selection label missing:\n%s", out)
	}
	if !strings.Contains(out, "Selecting 10:00 - 11:00") {
		t.Error("footer should describe the selection")
	}
}

func TestView_TitleModal(t *testing.T) {
	env := newTestEnv(t)
	env.keys(t, " ", "j", "j", "enter")

	out := env.model.View()
	for _, want := range []string{"New block", "10:00 - 11:30", "1h30m", "[Enter] Save"} {
		if !strings.Contains(out, want) {
			t.Errorf("modal missing %q", want)
		}
	}
}

func TestView_ConfirmDeleteModal(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.ctrl.AddBlock(context.Background(), "Standup", "10:00", "10:30"); err != nil {
		t.Fatalf("AddBlock() error = %v", err)
	}
	env.keys(t, "x")

	out := env.model.View()
	for _, want := range []string{"Delete block?", "Standup", "This cannot be undone."} {
		if !strings.Contains(out, want) {
			t.Errorf("modal missing %q", want)
		}
	}
}

func TestView_ScrollFollowsCursor(t *testing.T) {
	env := newTestEnv(t)
	env.send(t, tea.WindowSizeMsg{Width: 100, Height: 14})
	l := env.model.layout()
	if l.gridH != 10 {
		t.Fatalf("gridH = %d, want 10", l.gridH)
	}

	env.keys(t, "G")
	if env.model.cursor != 19 {
		t.Fatalf("cursor = %d, want 19", env.model.cursor)
	}
	if env.model.scrollOffset != 10 {
		t.Errorf("scrollOffset = %d, want 10", env.model.scrollOffset)
	}
	if out := env.model.View(); !strings.Contains(out, "5 PM") || strings.Contains(out, "8 AM") {
		t.Errorf("scrolled view should show the end of the day:\n%s", out)
	}

	env.keys(t, "g")
	if env.model.scrollOffset != 0 {
		t.Errorf("scrollOffset = %d, want 0", env.model.scrollOffset)
	}
}

func TestMouseWheelScroll(t *testing.T) {
	env := newTestEnv(t)
	env.send(t, tea.WindowSizeMsg{Width: 100, Height: 14})

	env.send(t, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if env.model.scrollOffset != wheelStep {
		t.Errorf("scrollOffset = %d, want %d", env.model.scrollOffset, wheelStep)
	}
	for range 10 {
		env.send(t, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	}
	if env.model.scrollOffset != 10 {
		t.Errorf("scrollOffset = %d, want clamp at 10", env.model.scrollOffset)
	}
}

func TestSlotAt(t *testing.T) {
	env := newTestEnv(t)
	l := env.model.layout()

	tests := []struct {
		name   string
		x, y   int
		want   int
		wantOK bool
	}{
		{"first row", l.gridX, l.gridTop, 0, true},
		{"last slot", l.gridX + 5, l.gridTop + 19, 19, true},
		{"below last slot", l.gridX + 5, l.gridTop + 20, 0, false},
		{"header", l.gridX + 5, 0, 0, false},
		{"goals panel", l.goalsX, l.gridTop + 3, 0, false},
		{"left padding", 0, l.gridTop + 3, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := env.model.slotAt(tt.x, tt.y, l)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("slotAt(%d, %d) = (%d, %v), want (%d, %v)", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
