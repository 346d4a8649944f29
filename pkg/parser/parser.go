package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// entryFieldCount is the fixed number of positional fields per entry:
// timestamp, user id, event context, component, event, description,
// origin, ip address.
const entryFieldCount = 8

// ParseFile reads and parses a JSON log file.
// Returns a *SourceUnavailableError if the file cannot be opened; all other
// failure modes are those of Parse.
func ParseFile(path string) ([]LogEntry, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, &SourceUnavailableError{Path: path, Err: err}
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes a JSON document whose root is a list of 8-field lists into
// log entries, preserving input order.
//
// Parsing is all-or-nothing: the first invalid entry aborts the whole parse.
// Fields other than the timestamp are coerced to their textual form and never
// rejected on type.
func Parse(r io.Reader) ([]LogEntry, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var root interface{}
	if err := dec.Decode(&root); err != nil {
		return nil, &MalformedInputError{Err: err}
	}

	// Decode only consumes the first JSON value; anything after it makes the
	// document as a whole malformed.
	if _, err := dec.Token(); err != io.EOF {
		return nil, &MalformedInputError{Err: fmt.Errorf("unexpected content after top-level value")}
	}

	list, ok := root.([]interface{})
	if !ok {
		return nil, &SchemaError{Index: -1, Message: "root must be a list"}
	}

	entries := make([]LogEntry, 0, len(list))
	for idx, raw := range list {
		fields, ok := raw.([]interface{})
		if !ok {
			return nil, &SchemaError{Index: idx, Message: "must be a list"}
		}

		if len(fields) != entryFieldCount {
			return nil, &SchemaError{
				Index:   idx,
				Message: fmt.Sprintf("must have exactly %d fields, got %d", entryFieldCount, len(fields)),
			}
		}

		ts, err := ParseTimestamp(stringify(fields[0]))
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", idx, err)
		}

		entries = append(entries, LogEntry{
			Timestamp:    ts,
			UserID:       stringify(fields[1]),
			EventContext: stringify(fields[2]),
			Component:    stringify(fields[3]),
			Event:        stringify(fields[4]),
			Description:  stringify(fields[5]),
			Origin:       stringify(fields[6]),
			IPAddress:    stringify(fields[7]),
		})
	}

	return entries, nil
}

// stringify coerces a decoded JSON value to its textual form. Numbers keep
// their literal text (the decoder runs with UseNumber), null becomes the
// empty string, and nested values re-marshal to compact JSON.
func stringify(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		if x {
			return "true"
		}
		return "false"
	case nil:
		return ""
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprintf("%v", x)
		}
		return string(b)
	}
}
