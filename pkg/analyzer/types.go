// Package analyzer provides per-user aggregation of log entries.
package analyzer

import "time"

// UserStats represents aggregated statistics for a single user.
type UserStats struct {
	// UserID is the grouping key.
	UserID string

	// FirstTimestamp is the earliest entry timestamp for the user.
	FirstTimestamp time.Time

	// LastTimestamp is the latest entry timestamp for the user.
	LastTimestamp time.Time

	// AccessCounter is the number of entries contributing to this user.
	AccessCounter int

	// UsageAge is LastTimestamp - FirstTimestamp in seconds, never negative.
	UsageAge float64

	// IPAddresses is the set of observed IP addresses, sorted ascending.
	IPAddresses []string

	// EventContexts is the set of observed event contexts, sorted ascending.
	EventContexts []string
}
