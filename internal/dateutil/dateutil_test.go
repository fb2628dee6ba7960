package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"midday", time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC), "2024-01-15"},
		{"just after local midnight", time.Date(2024, 1, 16, 0, 5, 0, 0, loc), "2024-01-16"},
		{"just before local midnight", time.Date(2024, 1, 15, 23, 55, 0, 0, loc), "2024-01-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.in); got != tt.want {
				t.Errorf("Key(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestKey_UsesLocalDateNotUTC(t *testing.T) {
	// 00:05 on the 16th in UTC+10 is still the 15th in UTC.
	loc := time.FixedZone("UTC+10", 10*60*60)
	now := time.Date(2024, 1, 16, 0, 5, 0, 0, loc)

	if got := Key(now); got != "2024-01-16" {
		t.Errorf("Key() = %q, want local date 2024-01-16", got)
	}
	if utc := Key(now.UTC()); utc != "2024-01-15" {
		t.Fatalf("sanity: UTC key = %q, want 2024-01-15", utc)
	}
}

func TestSameDay(t *testing.T) {
	base := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		b    time.Time
		want bool
	}{
		{"same instant", base, true},
		{"later same day", time.Date(2024, 1, 15, 23, 59, 0, 0, time.UTC), true},
		{"next day", time.Date(2024, 1, 16, 0, 5, 0, 0, time.UTC), false},
		{"same day previous month", time.Date(2023, 12, 15, 9, 0, 0, 0, time.UTC), false},
		{"same day previous year", time.Date(2023, 1, 15, 9, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameDay(base, tt.b); got != tt.want {
				t.Errorf("SameDay(%v, %v) = %v, want %v", base, tt.b, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		got, err := ParseDate("2025-01-15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("empty defaults to today", func(t *testing.T) {
		got, err := ParseDate("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if Key(got) != Key(time.Now()) {
			t.Errorf("got %v, want today", got)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := ParseDate("01-15-2025")
		if !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("got error %v, want %v", err, ErrInvalidDateFormat)
		}
	})
}

func TestParseRelativeDate(t *testing.T) {
	ref := time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "2025-01-15", false},
		{"today", "2025-01-15", false},
		{"  Today ", "2025-01-15", false},
		{"yesterday", "2025-01-14", false},
		{"tomorrow", "2025-01-16", false},
		{"2024-12-31", "2024-12-31", false},
		{"next-monday", "", true},
		{"15/01/2025", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRelativeDate(tt.in, ref)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDateFormat) {
					t.Errorf("ParseRelativeDate(%q) error = %v, want ErrInvalidDateFormat", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if Key(got) != tt.want {
				t.Errorf("ParseRelativeDate(%q) = %s, want %s", tt.in, Key(got), tt.want)
			}
		})
	}
}

func TestPreviousDays(t *testing.T) {
	today := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	got := PreviousDays(today, 7)

	want := []string{
		"2024-03-01", "2024-02-29", "2024-02-28", "2024-02-27",
		"2024-02-26", "2024-02-25", "2024-02-24",
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, d := range got {
		if Key(d) != want[i] {
			t.Errorf("day %d = %s, want %s", i, Key(d), want[i])
		}
	}
}

func TestFormat(t *testing.T) {
	ts := time.Date(2024, 1, 15, 14, 5, 0, 0, time.UTC)
	if got := FormatDate(ts); got != "Monday, January 15" {
		t.Errorf("FormatDate() = %q", got)
	}
	if got := FormatClock(ts); got != "02:05 PM" {
		t.Errorf("FormatClock() = %q", got)
	}
}
