package parser

import (
	"bufio"
	"io"
	"strings"

	"fjacquet/charge-calc/internal/parsererror"
)

// maxLineSize bounds a single text line.
const maxLineSize = 16 * 1024 * 1024

// ReadLineRecords splits text into whitespace-separated records, one per
// non-blank line.
func ReadLineRecords(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var records []Record
	line := 0
	for scanner.Scan() {
		line++
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		records = append(records, Record{Line: line, Key: parts[0], Fields: parts[1:]})
	}
	if err := scanner.Err(); err != nil {
		return nil, &parsererror.SourceError{Op: "read lines", Err: err}
	}
	return records, nil
}
