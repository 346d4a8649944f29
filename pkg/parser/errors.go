package parser

import "fmt"

// SourceUnavailableError indicates the input file could not be located or opened.
type SourceUnavailableError struct {
	Path string
	Err  error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("reading log file %s: %v", e.Path, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error { return e.Err }

// MalformedInputError indicates the input is not syntactically valid JSON.
type MalformedInputError struct {
	Err error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("invalid JSON format: %v", e.Err)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// SchemaError indicates syntactically valid input that violates the
// fixed-shape contract: wrong root type, wrong entry type, or wrong field
// count. Index is the 0-based position of the offending entry, or -1 when
// the root value itself is at fault.
type SchemaError struct {
	Index   int
	Message string
}

func (e *SchemaError) Error() string {
	if e.Index < 0 {
		return e.Message
	}
	return fmt.Sprintf("entry %d: %s", e.Index, e.Message)
}

// TimestampParseError indicates a timestamp field matched none of the
// supported layouts.
type TimestampParseError struct {
	Value string
}

func (e *TimestampParseError) Error() string {
	return fmt.Sprintf("unable to parse timestamp: %q", e.Value)
}
