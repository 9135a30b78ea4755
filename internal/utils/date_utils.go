package utils

import (
	"fmt"
	"strings"
	"time"
)

// ShowTimeDisplayLayout mirrors the medium date format the directory has
// always rendered, e.g. "Mon 06, 15, 2026 8:00PM".
const ShowTimeDisplayLayout = "Mon 01, 02, 2006 3:04PM"

// showTimeInputLayouts are the accepted forms for a submitted start_time,
// most specific first.
var showTimeInputLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// FormatShowTime renders a show start time for display.
func FormatShowTime(t time.Time) string {
	return t.Format(ShowTimeDisplayLayout)
}

// ParseShowTime parses a submitted start_time form value.
func ParseShowTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("start time is empty")
	}

	for _, layout := range showTimeInputLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized start time %q", value)
}
