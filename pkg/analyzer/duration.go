package analyzer

import (
	"fmt"
	"strings"
)

// FormatDuration converts a non-negative duration in seconds into a
// human-readable phrase like "2 days, 3 hours, 15 minutes".
//
// Seconds are shown only when days, hours, and minutes are all zero; a
// non-zero seconds remainder under larger units is dropped. An exactly-zero
// duration renders as "0 seconds".
func FormatDuration(seconds float64) string {
	if seconds == 0 {
		return "0 seconds"
	}

	total := int64(seconds)
	days := total / 86400
	remaining := total % 86400
	hours := remaining / 3600
	remaining %= 3600
	minutes := remaining / 60
	secs := remaining % 60

	var parts []string
	if days > 0 {
		parts = append(parts, pluralize(days, "day"))
	}
	if hours > 0 {
		parts = append(parts, pluralize(hours, "hour"))
	}
	if minutes > 0 {
		parts = append(parts, pluralize(minutes, "minute"))
	}
	if secs > 0 && len(parts) == 0 {
		parts = append(parts, pluralize(secs, "second"))
	}

	if len(parts) == 0 {
		return "0 seconds"
	}
	return strings.Join(parts, ", ")
}

func pluralize(n int64, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
