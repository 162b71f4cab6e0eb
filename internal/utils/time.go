package utils

import (
	"fmt"
	"time"

	"github.com/walkiapp/walki/internal/constants"
)

// Today returns today's date string (YYYY-MM-DD) in local time.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// DaysAgo returns the date string for n days before today.
func DaysAgo(n int) string {
	return time.Now().AddDate(0, 0, -n).Format(constants.DateFormat)
}

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	return t, nil
}

// ValidateDateFormat checks if the string matches the standard date format.
func ValidateDateFormat(dateStr string) bool {
	_, err := ParseDate(dateStr)
	return err == nil
}

// SameDay reports whether two times fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Format(constants.DateFormat) == b.Format(constants.DateFormat)
}

// Clock formats a time as a display clock string (e.g. "7:30 AM").
func Clock(t time.Time) string {
	return t.Format(constants.ClockFormat)
}
