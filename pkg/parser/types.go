// Package parser provides log file reading and parsing functionality.
package parser

import "time"

// LogEntry represents a single access log entry.
//
// Entries are immutable once constructed: every field is populated during
// parsing and never rewritten by later pipeline stages.
type LogEntry struct {
	// Timestamp is the parsed timestamp of the entry.
	Timestamp time.Time

	// UserID identifies the user that generated the entry.
	UserID string

	// EventContext is the context the event occurred in (e.g. a course or page).
	EventContext string

	// Component is the subsystem that emitted the event.
	Component string

	// Event is the event name.
	Event string

	// Description is the free-form event description.
	Description string

	// Origin records how the event was generated (e.g. web, cli).
	Origin string

	// IPAddress is the originating IP address.
	IPAddress string
}
