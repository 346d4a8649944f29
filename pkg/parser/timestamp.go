package parser

import (
	"strings"
	"time"
)

// timestampLayouts are tried in order; the first layout that parses wins.
// The order is a priority list, so layouts that are prefixes or ambiguous
// subsets of others must stay in this sequence.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999",
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05.999999Z",
	"02/01/2006 15:04",
	"2/1/2006 15:04",
}

// isoFallbackLayouts handle general ISO-8601 input after a trailing "Z" has
// been normalized to an explicit zero offset.
var isoFallbackLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02",
}

// ParseTimestamp converts a textual timestamp into a time.Time.
// Returns a *TimestampParseError if the text matches no supported layout.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	iso := s
	if strings.HasSuffix(iso, "Z") {
		iso = strings.TrimSuffix(iso, "Z") + "+00:00"
	}
	for _, layout := range isoFallbackLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t, nil
		}
	}

	return time.Time{}, &TimestampParseError{Value: s}
}

// FormatTimestamp renders t in the canonical textual form: ISO date and time
// separated by "T", a 6-digit fractional part only when the instant has
// sub-second precision, and a UTC offset only when the instant carries a
// non-zero offset. Output round-trips through ParseTimestamp.
func FormatTimestamp(t time.Time) string {
	layout := "2006-01-02T15:04:05"
	if t.Nanosecond() != 0 {
		layout = "2006-01-02T15:04:05.000000"
	}
	if _, offset := t.Zone(); offset != 0 {
		layout += "-07:00"
	}
	return t.Format(layout)
}
