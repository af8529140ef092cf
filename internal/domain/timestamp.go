package domain

import (
	"strings"
	"time"
)

// TimestampLayout is the literal input format: YYYY-MM-DD HH:MM:SS, 24-hour clock
const TimestampLayout = "2006-01-02 15:04:05"

// ParseTimestamp parses a civil UTC timestamp in TimestampLayout.
// field names the input in the returned InvalidTimeFormatError.
// time.Parse also accepts fractional seconds and single-digit hours, so the
// parsed value must format back to the trimmed input exactly.
func ParseTimestamp(field, value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	t, err := time.ParseInLocation(TimestampLayout, trimmed, time.UTC)
	if err != nil || FormatTimestamp(t) != trimmed {
		return time.Time{}, &InvalidTimeFormatError{Field: field, Value: value}
	}
	return t, nil
}

// FormatTimestamp renders t in TimestampLayout (UTC)
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
