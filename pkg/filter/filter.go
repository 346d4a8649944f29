// Package filter narrows log entry sequences by time window and IP address.
package filter

import (
	"fmt"
	"time"

	"github.com/ccollicutt/logsift/pkg/parser"
)

// Filter holds the active predicates. A Filter with no options keeps every
// entry.
type Filter struct {
	start     *time.Time
	end       *time.Time
	ipAddress *string
}

// Option configures a Filter.
type Option func(*Filter)

// WithStart keeps entries with a timestamp at or after t (inclusive).
func WithStart(t time.Time) Option {
	return func(f *Filter) {
		f.start = &t
	}
}

// WithEnd keeps entries with a timestamp at or before t (inclusive).
func WithEnd(t time.Time) Option {
	return func(f *Filter) {
		f.end = &t
	}
}

// WithIPAddress keeps entries whose IP address exactly equals ip
// (case-sensitive).
func WithIPAddress(ip string) Option {
	return func(f *Filter) {
		f.ipAddress = &ip
	}
}

// New creates a filter from the given options.
func New(opts ...Option) *Filter {
	f := &Filter{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Active reports whether any predicate is set.
func (f *Filter) Active() bool {
	return f.start != nil || f.end != nil || f.ipAddress != nil
}

// Describe returns a human-readable description of each active predicate.
func (f *Filter) Describe() []string {
	var desc []string
	if f.start != nil {
		desc = append(desc, fmt.Sprintf("start >= %s", parser.FormatTimestamp(*f.start)))
	}
	if f.end != nil {
		desc = append(desc, fmt.Sprintf("end <= %s", parser.FormatTimestamp(*f.end)))
	}
	if f.ipAddress != nil {
		desc = append(desc, fmt.Sprintf("ip == %s", *f.ipAddress))
	}
	return desc
}

// Apply returns the entries that satisfy every active predicate, preserving
// input order. The input slice is never modified. With no active predicates
// the input is returned as-is.
func (f *Filter) Apply(entries []parser.LogEntry) []parser.LogEntry {
	if !f.Active() {
		return entries
	}

	filtered := make([]parser.LogEntry, 0, len(entries))
	for _, e := range entries {
		if f.start != nil && e.Timestamp.Before(*f.start) {
			continue
		}
		if f.end != nil && e.Timestamp.After(*f.end) {
			continue
		}
		if f.ipAddress != nil && e.IPAddress != *f.ipAddress {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}
