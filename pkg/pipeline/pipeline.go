// Package pipeline orchestrates the parse, filter, and aggregate stages and
// persists their output.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ccollicutt/logsift/pkg/analyzer"
	"github.com/ccollicutt/logsift/pkg/filter"
	"github.com/ccollicutt/logsift/pkg/output"
	"github.com/ccollicutt/logsift/pkg/parser"
)

// Options configures a pipeline run.
type Options struct {
	// InputPath is the JSON log file to process (required).
	InputPath string

	// LogsOutput is the destination for the filtered entries file.
	// Empty disables writing it.
	LogsOutput string

	// StatsOutput is the destination for the user statistics file.
	// Empty disables writing it.
	StatsOutput string

	// Start keeps entries with a timestamp at or after it (inclusive).
	Start *time.Time

	// End keeps entries with a timestamp at or before it (inclusive).
	End *time.Time

	// IPAddress keeps entries with this exact IP address. Empty means no
	// constraint.
	IPAddress string
}

// Result holds the outcome of a pipeline run.
type Result struct {
	// EntriesParsed is the number of entries read from the input file.
	EntriesParsed int

	// Entries are the entries that survived filtering, input order preserved.
	Entries []parser.LogEntry

	// Stats are the per-user statistics, sorted by user ID.
	Stats []analyzer.UserStats

	// Filters describes the active filter predicates.
	Filters []string
}

// Run executes the pipeline: parse the input, apply the filters, aggregate
// per-user statistics, then write the filtered entries and statistics files.
//
// Parse failures propagate unmodified so callers can inspect the typed
// errors; write failures are wrapped to distinguish them.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := parser.ParseFile(opts.InputPath)
	if err != nil {
		return nil, err
	}

	var filterOpts []filter.Option
	if opts.Start != nil {
		filterOpts = append(filterOpts, filter.WithStart(*opts.Start))
	}
	if opts.End != nil {
		filterOpts = append(filterOpts, filter.WithEnd(*opts.End))
	}
	if opts.IPAddress != "" {
		filterOpts = append(filterOpts, filter.WithIPAddress(opts.IPAddress))
	}

	f := filter.New(filterOpts...)
	filtered := f.Apply(entries)

	result := &Result{
		EntriesParsed: len(entries),
		Entries:       filtered,
		Stats:         analyzer.GenerateUserStats(filtered),
		Filters:       f.Describe(),
	}

	if opts.LogsOutput != "" {
		if err := writeJSON(opts.LogsOutput, output.NewEntryRecords(filtered)); err != nil {
			return nil, fmt.Errorf("writing filtered logs: %w", err)
		}
	}

	if opts.StatsOutput != "" {
		if err := writeJSON(opts.StatsOutput, output.NewStatsRecords(result.Stats)); err != nil {
			return nil, fmt.Errorf("writing user statistics: %w", err)
		}
	}

	return result, nil
}

func writeJSON(path string, v interface{}) error {
	f, err := os.Create(path) // #nosec G304 -- user-provided output paths are expected
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
