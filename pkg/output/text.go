package output

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "LogSift: %d entries parsed, %d after filtering, %d users\n",
		report.Summary.EntriesParsed,
		report.Summary.EntriesFiltered,
		report.Summary.Users)
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	// Header
	fmt.Fprintln(w, "=== LogSift User Activity Report ===")
	fmt.Fprintln(w)

	if len(report.Metadata.Filters) > 0 {
		fmt.Fprintf(w, "Filters: %s\n", strings.Join(report.Metadata.Filters, ", "))
		fmt.Fprintln(w)
	}

	if !report.HasResults() {
		fmt.Fprintln(w, "No matching entries")
		fmt.Fprintln(w)
	}

	for i := range report.Stats {
		f.formatUser(&report.Stats[i], w)
	}

	// Summary
	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d users, %d entries after filtering (of %d parsed)\n",
		report.Summary.Users,
		report.Summary.EntriesFiltered,
		report.Summary.EntriesParsed)

	if f.opts.Verbose {
		fmt.Fprintf(w, "Input: %s\n", report.Metadata.InputFile)
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(1e6))
	}

	return nil
}

func (f *TextFormatter) formatUser(stats *StatsRecord, w io.Writer) {
	fmt.Fprintf(w, "%s\n", stats.UserID)
	fmt.Fprintf(w, "  First seen: %s\n", stats.FirstTimestamp)
	fmt.Fprintf(w, "  Last seen:  %s\n", stats.LastTimestamp)
	fmt.Fprintf(w, "  Accesses:   %d\n", stats.AccessCounter)
	fmt.Fprintf(w, "  Usage age:  %s\n", stats.UsageAge)

	if f.opts.Verbose {
		fmt.Fprintf(w, "  IP addresses: %s\n", strings.Join(stats.IPAddresses, ", "))
		fmt.Fprintf(w, "  Contexts:     %s\n", strings.Join(stats.EventContexts, ", "))
	}

	fmt.Fprintln(w)
}
