// Package grid provides the half-hour slot grid: conversion between wall-clock
// times and slot indices, and the drag selection state machine.
package grid

import (
	"errors"
	"fmt"
)

// Grid errors.
var (
	ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")
	ErrInvalidHours      = errors.New("grid start hour must be before end hour, both within 0-24")
)

const (
	// SlotMinutes is the fixed slot granularity.
	SlotMinutes = 30
	// DefaultStartHour is the first hour shown on the grid.
	DefaultStartHour = 8
	// DefaultEndHour is the grid's closing hour (exclusive).
	DefaultEndHour = 18
)

// Grid describes a single day's slot grid between StartHour and EndHour.
// Slot 0 starts at StartHour; slot TotalSlots() is the closing boundary.
type Grid struct {
	StartHour int
	EndHour   int
}

// New creates a Grid, validating the hour range.
func New(startHour, endHour int) (Grid, error) {
	if startHour < 0 || endHour > 24 || startHour >= endHour {
		return Grid{}, fmt.Errorf("%w: %d-%d", ErrInvalidHours, startHour, endHour)
	}
	return Grid{StartHour: startHour, EndHour: endHour}, nil
}

// Default returns the 08:00-18:00 grid.
func Default() Grid {
	return Grid{StartHour: DefaultStartHour, EndHour: DefaultEndHour}
}

// TotalSlots returns the number of 30-minute slots on the grid.
func (g Grid) TotalSlots() int {
	return (g.EndHour - g.StartHour) * 60 / SlotMinutes
}

// SlotToTime converts a slot index to "HH:MM".
// Index TotalSlots() is valid and yields the grid's closing time.
func (g Grid) SlotToTime(index int) string {
	total := index * SlotMinutes
	return FormatMinutes(g.StartHour*60 + total)
}

// TimeToSlot converts "HH:MM" to the slot containing it. It reports false
// for malformed input. Times outside the grid produce negative indices or
// indices >= TotalSlots(); callers decide whether to clip or reject.
func (g Grid) TimeToSlot(t string) (int, bool) {
	mins, err := ParseTime(t)
	if err != nil {
		return 0, false
	}
	return floorDiv(mins-g.StartHour*60, SlotMinutes), true
}

// Contains reports whether slot addresses a slot on the grid.
func (g Grid) Contains(slot int) bool {
	return slot >= 0 && slot < g.TotalSlots()
}

// ClampSlot pins slot into [0, TotalSlots()-1].
func (g Grid) ClampSlot(slot int) int {
	if slot < 0 {
		return 0
	}
	if last := g.TotalSlots() - 1; slot > last {
		return last
	}
	return slot
}

// Span returns the visible slot range [start, end) covered by a block.
// An end time that is not slot-aligned rounds up to the next boundary.
// ok is false when nothing of the block falls on the grid.
func (g Grid) Span(startTime, endTime string) (start, end int, ok bool) {
	startMins, err := ParseTime(startTime)
	if err != nil {
		return 0, 0, false
	}
	endMins, err := ParseTime(endTime)
	if err != nil {
		return 0, 0, false
	}

	origin := g.StartHour * 60
	start = floorDiv(startMins-origin, SlotMinutes)
	end = ceilDiv(endMins-origin, SlotMinutes)

	start = max(start, 0)
	end = min(end, g.TotalSlots())
	if end <= start {
		return 0, 0, false
	}
	return start, end, true
}

// Hours returns the hours labelled on the grid, one per two slots.
func (g Grid) Hours() []int {
	hours := make([]int, 0, g.EndHour-g.StartHour)
	for h := g.StartHour; h < g.EndHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// HourLabel formats an hour the way the grid labels it: "9 AM", "12 PM", "1 PM".
func HourLabel(hour int) string {
	switch {
	case hour == 0 || hour == 24:
		return "12 AM"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	case hour == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
