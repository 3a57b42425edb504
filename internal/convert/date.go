package convert

import (
	"fmt"
	"strings"
	"time"
)

// Date parses text against the candidate layouts in order and returns
// the first successful parse truncated to a pure date in UTC.
func Date(s string, layouts []string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty value")
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return truncateToDate(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%q matches no known date format", s)
}

// DateValue converts a scalar to a pure date. Values that are already
// dates pass through (truncated); anything else must be parseable text.
func DateValue(v any, layouts []string) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return truncateToDate(d), nil
	case string:
		return Date(d, layouts)
	case nil:
		return time.Time{}, fmt.Errorf("null value")
	default:
		return time.Time{}, fmt.Errorf("cannot parse %T as date", v)
	}
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
