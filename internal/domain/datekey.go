package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateKey returns the storage key of the calendar day t falls on, in t's location.
// Every read and write path builds keys through this function.
func DateKey(t time.Time) string {
	return t.Format(DateFormat)
}

// ParseDateKey parses a YYYY-MM-DD key into midnight of that day in loc
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateFormat, strings.TrimSpace(key), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", key, err)
	}
	return t, nil
}

// NormalizeDateKey validates a key and returns its canonical form
func NormalizeDateKey(key string) (string, error) {
	t, err := ParseDateKey(key, time.UTC)
	if err != nil {
		return "", err
	}
	return DateKey(t), nil
}

// StartOfDay truncates t to midnight in its own location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// CompareDateKeys compares two normalized keys; YYYY-MM-DD sorts lexicographically
func CompareDateKeys(a, b string) int {
	return strings.Compare(a, b)
}

// DateKeyInRange reports whether key lies in the closed range [start, end]
func DateKeyInRange(key, start, end string) bool {
	return CompareDateKeys(key, start) >= 0 && CompareDateKeys(key, end) <= 0
}
