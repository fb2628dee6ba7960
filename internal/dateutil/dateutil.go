// Package dateutil provides calendar-date helpers for the planner.
//
// Every date is a local calendar date: the storage key and the day-change
// check both use the wall clock of the machine the planner runs on.
package dateutil

import (
	"errors"
	"strings"
	"time"
)

// KeyLayout is the layout of a date key.
const KeyLayout = "2006-01-02"

// Validation errors.
var (
	ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")
)

// Key returns the YYYY-MM-DD key of t's local calendar date.
func Key(t time.Time) string {
	return t.Format(KeyLayout)
}

// SameDay reports whether a and b fall on the same calendar date.
// b is compared in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseDate parses a date string in YYYY-MM-DD format as a local date.
// If the string is empty, returns today's date.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return TruncateToDay(time.Now()), nil
	}
	t, err := time.ParseInLocation(KeyLayout, s, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// ParseRelativeDate parses a date string that can be:
//   - Empty string or "today": returns relativeTo's date
//   - "yesterday" or "tomorrow"
//   - Absolute date: "2025-01-15" (YYYY-MM-DD)
//
// All inputs are case-insensitive.
func ParseRelativeDate(s string, relativeTo time.Time) (time.Time, error) {
	today := TruncateToDay(relativeTo)
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	}

	result, err := time.ParseInLocation(KeyLayout, input, relativeTo.Location())
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return result, nil
}

// PreviousDays returns the n dates before today, most recent first.
func PreviousDays(today time.Time, n int) []time.Time {
	today = TruncateToDay(today)
	dates := make([]time.Time, 0, n)
	for i := 1; i <= n; i++ {
		dates = append(dates, today.AddDate(0, 0, -i))
	}
	return dates
}

// FormatDate formats t the way the header shows it: "Monday, January 15".
func FormatDate(t time.Time) string {
	return t.Format("Monday, January 2")
}

// FormatClock formats t as a 12-hour clock: "09:05 AM".
func FormatClock(t time.Time) string {
	return t.Format("03:04 PM")
}
