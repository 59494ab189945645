package domain

import "time"

// Default log window bounds. A log query with no explicit range spans
// effectively all entries.
var (
	LogWindowStart = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	LogWindowEnd   = time.Date(3000, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// dateLayouts are the accepted input formats, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

// NormalizeDate parses input as a calendar date ("2006-01-02") or an
// RFC 3339 timestamp. An empty or unparsable input returns fallback
// rather than an error; callers supply the documented default for their
// context (window bound, or the current time for a new entry).
func NormalizeDate(input string, fallback time.Time) time.Time {
	if input == "" {
		return fallback
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, input); err == nil {
			return t.UTC()
		}
	}
	return fallback
}
