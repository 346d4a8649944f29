package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ccollicutt/logsift/pkg/output"
	"github.com/ccollicutt/logsift/pkg/parser"
)

const testInput = `[
	["2024-01-15 10:00:00","u1","web","auth","login","d","o","1.1.1.1"],
	["2024-01-15 13:00:00","u1","quiz","auth","login","d","o","2.2.2.2"],
	["2024-01-15 11:00:00","u2","web","auth","login","d","o","3.3.3.3"]
]`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logs.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readJSON(t *testing.T, path string, v interface{}) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("unmarshaling %s: %v", path, err)
	}
}

func TestRun_NoFilters(t *testing.T) {
	dir := t.TempDir()
	logsOut := filepath.Join(dir, "filtered.json")
	statsOut := filepath.Join(dir, "stats.json")

	result, err := Run(context.Background(), Options{
		InputPath:   writeInput(t, testInput),
		LogsOutput:  logsOut,
		StatsOutput: statsOut,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.EntriesParsed != 3 {
		t.Errorf("EntriesParsed = %d, want 3", result.EntriesParsed)
	}
	if len(result.Entries) != 3 {
		t.Errorf("Got %d filtered entries, want 3", len(result.Entries))
	}
	if len(result.Stats) != 2 {
		t.Errorf("Got %d stats, want 2", len(result.Stats))
	}

	var entries []output.EntryRecord
	readJSON(t, logsOut, &entries)
	if len(entries) != 3 {
		t.Errorf("logs file has %d records, want 3", len(entries))
	}
	if entries[0].Timestamp != "2024-01-15T10:00:00" {
		t.Errorf("first record timestamp = %q", entries[0].Timestamp)
	}

	var stats []output.StatsRecord
	readJSON(t, statsOut, &stats)
	if len(stats) != 2 {
		t.Fatalf("stats file has %d records, want 2", len(stats))
	}
	if stats[0].UserID != "u1" || stats[1].UserID != "u2" {
		t.Errorf("stats not sorted by user id: %q, %q", stats[0].UserID, stats[1].UserID)
	}
	if stats[0].AccessCounter != 2 {
		t.Errorf("u1 access_counter = %d, want 2", stats[0].AccessCounter)
	}
	if stats[0].UsageAge != "3 hours" {
		t.Errorf("u1 usage_age = %q, want \"3 hours\"", stats[0].UsageAge)
	}
	if stats[1].UsageAge != "0 seconds" {
		t.Errorf("u2 usage_age = %q, want \"0 seconds\"", stats[1].UsageAge)
	}
}

func TestRun_SingleEntryScenario(t *testing.T) {
	dir := t.TempDir()
	statsOut := filepath.Join(dir, "stats.json")

	input := `[["2024-01-15 10:00:00","u1","web","auth","login","d","o","1.1.1.1"]]`
	result, err := Run(context.Background(), Options{
		InputPath:   writeInput(t, input),
		StatsOutput: statsOut,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(result.Entries) != 1 {
		t.Errorf("Got %d entries, want 1", len(result.Entries))
	}

	var stats []output.StatsRecord
	readJSON(t, statsOut, &stats)
	if len(stats) != 1 {
		t.Fatalf("stats file has %d records, want 1", len(stats))
	}
	if stats[0].AccessCounter != 1 {
		t.Errorf("access_counter = %d, want 1", stats[0].AccessCounter)
	}
	if stats[0].UsageAge != "0 seconds" {
		t.Errorf("usage_age = %q, want \"0 seconds\"", stats[0].UsageAge)
	}
}

func TestRun_TimeWindow(t *testing.T) {
	start := time.Date(2024, 1, 15, 11, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 15, 13, 0, 0, 0, time.UTC)

	result, err := Run(context.Background(), Options{
		InputPath: writeInput(t, testInput),
		Start:     &start,
		End:       &end,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(result.Entries) != 2 {
		t.Errorf("Got %d entries, want 2 (bounds inclusive)", len(result.Entries))
	}
	if len(result.Filters) != 2 {
		t.Errorf("Got %d filter descriptions, want 2", len(result.Filters))
	}
}

func TestRun_IPFilterNoMatch(t *testing.T) {
	dir := t.TempDir()
	logsOut := filepath.Join(dir, "filtered.json")
	statsOut := filepath.Join(dir, "stats.json")

	result, err := Run(context.Background(), Options{
		InputPath:   writeInput(t, testInput),
		LogsOutput:  logsOut,
		StatsOutput: statsOut,
		IPAddress:   "10.0.0.1",
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(result.Entries) != 0 {
		t.Errorf("Got %d entries, want 0", len(result.Entries))
	}
	if len(result.Stats) != 0 {
		t.Errorf("Got %d stats, want 0", len(result.Stats))
	}

	// Empty results still serialize as lists, not null.
	for _, path := range []string{logsOut, statsOut} {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if strings.TrimSpace(string(data)) != "[]" {
			t.Errorf("%s = %q, want []", path, strings.TrimSpace(string(data)))
		}
	}
}

func TestRun_MissingInput(t *testing.T) {
	_, err := Run(context.Background(), Options{
		InputPath: "/nonexistent/logs.json",
	})
	if err == nil {
		t.Fatal("Run() expected error for missing input")
	}

	var srcErr *parser.SourceUnavailableError
	if !errors.As(err, &srcErr) {
		t.Errorf("error = %T, want *parser.SourceUnavailableError", err)
	}
}

func TestRun_ParseErrorPropagatesUnmodified(t *testing.T) {
	input := `[["2024-01-15 10:00:00","u1","web"]]`
	_, err := Run(context.Background(), Options{
		InputPath: writeInput(t, input),
	})
	if err == nil {
		t.Fatal("Run() expected error")
	}

	var schemaErr *parser.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Errorf("error = %T, want *parser.SchemaError", err)
	}
}

func TestRun_WriteFailureWrapped(t *testing.T) {
	_, err := Run(context.Background(), Options{
		InputPath:  writeInput(t, testInput),
		LogsOutput: "/nonexistent/dir/out.json",
	})
	if err == nil {
		t.Fatal("Run() expected error for unwritable output")
	}
	if !strings.Contains(err.Error(), "writing filtered logs") {
		t.Errorf("error = %v, want wrapped write failure", err)
	}
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{InputPath: writeInput(t, testInput)})
	if err != context.Canceled {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}
