// Package parsererror defines the typed errors raised while reading cycling records.
package parsererror

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is matched by every UnsupportedFormatError through errors.Is.
var ErrUnsupportedFormat = errors.New("unsupported format")

// UnsupportedFormatError reports a source whose encoding could not be determined,
// either from its name suffix or from its content.
type UnsupportedFormatError struct {
	FilePath  string
	Extension string
	Reason    string
}

func (e *UnsupportedFormatError) Error() string {
	msg := fmt.Sprintf("unsupported format for '%s'", e.FilePath)
	if e.Extension != "" {
		msg += fmt.Sprintf(" (extension %q)", e.Extension)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Is lets errors.Is(err, ErrUnsupportedFormat) match.
func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// MalformedRecordError describes a record that was skipped during parsing.
// It is logged, never returned from a parse call.
type MalformedRecordError struct {
	Line  int
	Key   string
	Field string
	Value string
	Err   error
}

func (e *MalformedRecordError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("line %d: malformed %s record: %s='%s'", e.Line, e.Key, e.Field, e.Value)
	}
	return fmt.Sprintf("line %d: malformed %s record: %s='%s': %v",
		e.Line, e.Key, e.Field, e.Value, e.Err)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

// SourceError wraps a failure to open or read a record source.
type SourceError struct {
	FilePath string
	Op       string
	Err      error
}

func (e *SourceError) Error() string {
	if e.FilePath == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s '%s': %v", e.Op, e.FilePath, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
