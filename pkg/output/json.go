package output

import (
	"context"
	"encoding/json"
	"io"
)

// JSONFormatter renders a report as indented JSON, suitable for piping
// into jq or another tool.
type JSONFormatter struct {
	opts FormatOptions
}

func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

func (f *JSONFormatter) Name() string {
	return "json"
}

// Format writes the report to w. In quiet mode only the summary counts
// are emitted; the per-user stats and metadata are dropped.
func (f *JSONFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	var v interface{} = report
	if f.opts.Quiet {
		v = report.Summary
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
