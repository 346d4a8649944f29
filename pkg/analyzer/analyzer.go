package analyzer

import (
	"sort"

	"github.com/ccollicutt/logsift/pkg/parser"
)

// GenerateUserStats aggregates log entries into one UserStats per distinct
// user. Output is sorted ascending by user ID regardless of input order;
// an empty input produces an empty output.
func GenerateUserStats(entries []parser.LogEntry) []UserStats {
	if len(entries) == 0 {
		return nil
	}

	groups := make(map[string][]parser.LogEntry)
	for _, e := range entries {
		groups[e.UserID] = append(groups[e.UserID], e)
	}

	stats := make([]UserStats, 0, len(groups))
	for userID, group := range groups {
		first := group[0].Timestamp
		last := group[0].Timestamp
		for _, e := range group[1:] {
			if e.Timestamp.Before(first) {
				first = e.Timestamp
			}
			if e.Timestamp.After(last) {
				last = e.Timestamp
			}
		}

		stats = append(stats, UserStats{
			UserID:         userID,
			FirstTimestamp: first,
			LastTimestamp:  last,
			AccessCounter:  len(group),
			UsageAge:       last.Sub(first).Seconds(),
			IPAddresses: distinctSorted(group, func(e parser.LogEntry) string {
				return e.IPAddress
			}),
			EventContexts: distinctSorted(group, func(e parser.LogEntry) string {
				return e.EventContext
			}),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].UserID < stats[j].UserID
	})

	return stats
}

// distinctSorted collects the deduplicated key values from a group of
// entries, sorted ascending for deterministic output.
func distinctSorted(entries []parser.LogEntry, key func(parser.LogEntry) string) []string {
	seen := make(map[string]bool, len(entries))
	values := make([]string, 0, len(entries))
	for _, e := range entries {
		v := key(e)
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values
}
