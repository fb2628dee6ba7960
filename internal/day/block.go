// Package day defines the planner's per-day domain: goals, time blocks, the
// persisted snapshot and its legacy migration.
package day

import (
	"errors"
	"fmt"
	"strings"

	"github.com/javiermolinar/daygrid/internal/grid"
)

// Validation errors.
var (
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrEmptyGoal         = errors.New("goal text cannot be empty")
	ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")
	ErrEndBeforeStart    = errors.New("end time must be after start time")
)

// TimeBlock is a titled interval placed on the day's grid.
type TimeBlock struct {
	ID        ID     `json:"id"`
	Title     string `json:"title"`
	StartTime string `json:"startTime"` // "HH:MM", 24h
	EndTime   string `json:"endTime"`   // "HH:MM", 24h
}

// Duration returns the block length in minutes, or 0 for malformed times.
func (b TimeBlock) Duration() int {
	start, err1 := grid.ParseTime(b.StartTime)
	end, err2 := grid.ParseTime(b.EndTime)
	if err1 != nil || err2 != nil || end < start {
		return 0
	}
	return end - start
}

// ValidateBlock checks the fields of a block before it is created.
func ValidateBlock(title, start, end string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	startMins, err := grid.ParseTime(start)
	if err != nil {
		return fmt.Errorf("start time: %w", ErrInvalidTimeFormat)
	}
	endMins, err := grid.ParseTime(end)
	if err != nil {
		return fmt.Errorf("end time: %w", ErrInvalidTimeFormat)
	}
	if endMins <= startMins {
		return ErrEndBeforeStart
	}
	return nil
}
