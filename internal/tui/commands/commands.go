// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/daygrid/internal/day"
	"github.com/javiermolinar/daygrid/internal/summary"
)

// TickMsg carries the wall clock for the periodic day check.
type TickMsg struct {
	Time time.Time
}

// HistoryLoadedMsg is sent when the previous days have been read. For is
// the date the window was counted back from.
type HistoryLoadedMsg struct {
	For  time.Time
	Days []summary.Day
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// Tick schedules the next day check after interval.
func Tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// LoadHistory reads the days before date that have content. It only touches
// storage, so it is safe to run off the update loop.
func LoadHistory(snaps *day.Snapshots, date time.Time, days int) tea.Cmd {
	return func() tea.Msg {
		return HistoryLoadedMsg{For: date, Days: summary.BuildHistory(context.Background(), snaps, date, days)}
	}
}

// CopyToClipboard writes text with write and reports the outcome as a status.
func CopyToClipboard(write func(string) error, text, what string) tea.Cmd {
	return func() tea.Msg {
		if write == nil {
			return ErrMsg{Err: fmt.Errorf("clipboard unavailable")}
		}
		if err := write(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying %s: %w", what, err)}
		}
		return StatusMsgCmd{Msg: "Copied " + what + " to clipboard"}
	}
}

// Status returns a command that shows msg in the status line.
func Status(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}
