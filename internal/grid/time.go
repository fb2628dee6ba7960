package grid

import "fmt"

// ParseTime converts "HH:MM" to minutes since midnight.
// Hours are not capped at 23: a block carried over from an hour-based
// schedule may end at "24:30".
func ParseTime(t string) (int, error) {
	if len(t) != 5 || t[2] != ':' {
		return 0, fmt.Errorf("%w, got %q", ErrInvalidTimeFormat, t)
	}
	if !isDigit(t[0]) || !isDigit(t[1]) || !isDigit(t[3]) || !isDigit(t[4]) {
		return 0, fmt.Errorf("%w, got %q", ErrInvalidTimeFormat, t)
	}
	hours := int(t[0]-'0')*10 + int(t[1]-'0')
	mins := int(t[3]-'0')*10 + int(t[4]-'0')
	if mins > 59 {
		return 0, fmt.Errorf("%w, got %q", ErrInvalidTimeFormat, t)
	}
	return hours*60 + mins, nil
}

// FormatMinutes converts minutes since midnight to "HH:MM".
func FormatMinutes(m int) string {
	if m < 0 {
		m = 0
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// AddHour returns t shifted one hour later, minutes preserved and no wrap at
// midnight.
func AddHour(t string) (string, error) {
	mins, err := ParseTime(t)
	if err != nil {
		return "", err
	}
	return FormatMinutes(mins + 60), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
