// Package output provides serialization and report formatting for pipeline
// results.
package output

import (
	"time"

	"github.com/ccollicutt/logsift/pkg/analyzer"
	"github.com/ccollicutt/logsift/pkg/parser"
)

// EntryRecord is the external JSON shape of a filtered log entry.
type EntryRecord struct {
	Timestamp    string `json:"timestamp"`
	UserID       string `json:"user_id"`
	EventContext string `json:"event_context"`
	Component    string `json:"component"`
	Event        string `json:"event"`
	Description  string `json:"description"`
	Origin       string `json:"origin"`
	IPAddress    string `json:"ip_address"`
}

// StatsRecord is the external JSON shape of one user's aggregated statistics.
type StatsRecord struct {
	UserID         string   `json:"user_id"`
	FirstTimestamp string   `json:"first_timestamp"`
	LastTimestamp  string   `json:"last_timestamp"`
	AccessCounter  int      `json:"access_counter"`
	UsageAge       string   `json:"usage_age"`
	IPAddresses    []string `json:"ip_addresses"`
	EventContexts  []string `json:"event_contexts"`
}

// NewEntryRecords converts log entries to their external representation,
// preserving order. The result is never nil so an empty set serializes as [].
func NewEntryRecords(entries []parser.LogEntry) []EntryRecord {
	records := make([]EntryRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, EntryRecord{
			Timestamp:    parser.FormatTimestamp(e.Timestamp),
			UserID:       e.UserID,
			EventContext: e.EventContext,
			Component:    e.Component,
			Event:        e.Event,
			Description:  e.Description,
			Origin:       e.Origin,
			IPAddress:    e.IPAddress,
		})
	}
	return records
}

// NewStatsRecords converts user statistics to their external representation,
// preserving the analyzer's user-ID ordering. The result is never nil so an
// empty set serializes as [].
func NewStatsRecords(stats []analyzer.UserStats) []StatsRecord {
	records := make([]StatsRecord, 0, len(stats))
	for _, s := range stats {
		records = append(records, StatsRecord{
			UserID:         s.UserID,
			FirstTimestamp: parser.FormatTimestamp(s.FirstTimestamp),
			LastTimestamp:  parser.FormatTimestamp(s.LastTimestamp),
			AccessCounter:  s.AccessCounter,
			UsageAge:       analyzer.FormatDuration(s.UsageAge),
			IPAddresses:    s.IPAddresses,
			EventContexts:  s.EventContexts,
		})
	}
	return records
}

// Report is the complete output of a pipeline run.
type Report struct {
	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`

	// Stats contains one record per user, sorted by user ID.
	Stats []StatsRecord `json:"stats"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate counts for a pipeline run.
type Summary struct {
	// EntriesParsed is the number of entries read from the input file.
	EntriesParsed int `json:"entries_parsed"`

	// EntriesFiltered is the number of entries that survived filtering.
	EntriesFiltered int `json:"entries_filtered"`

	// Users is the number of distinct users in the filtered entries.
	Users int `json:"users"`
}

// Metadata provides context about a pipeline run.
type Metadata struct {
	// InputFile is the path of the log file that was processed.
	InputFile string `json:"input_file"`

	// Filters describes the active filter predicates, if any.
	Filters []string `json:"filters,omitempty"`

	// ProcessedAt is when processing completed.
	ProcessedAt time.Time `json:"processed_at"`

	// Duration is how long processing took.
	Duration time.Duration `json:"duration"`
}

// NewReport creates a Report from aggregation results.
func NewReport(parsed, filtered int, stats []analyzer.UserStats, meta Metadata) *Report {
	return &Report{
		Summary: Summary{
			EntriesParsed:   parsed,
			EntriesFiltered: filtered,
			Users:           len(stats),
		},
		Stats:    NewStatsRecords(stats),
		Metadata: meta,
	}
}

// HasResults returns true if at least one user produced statistics.
func (r *Report) HasResults() bool {
	return len(r.Stats) > 0
}
