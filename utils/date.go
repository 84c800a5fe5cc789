package utils

import "time"

// DayFormat is the calendar-day layout used across all stored series and
// forecast output.
const DayFormat = "2006-01-02"

// ParseDay parses an ISO-8601 calendar date in UTC.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DayFormat, s, time.UTC)
}

// FormatDay renders a time as an ISO-8601 calendar date.
func FormatDay(t time.Time) string {
	return t.Format(DayFormat)
}

// DayOffset returns the number of whole days from base to t.
func DayOffset(base, t time.Time) int {
	return int(t.Sub(base).Hours() / 24)
}
