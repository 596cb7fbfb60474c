// Package export writes charge summaries to CSV, XLSX, JSON and YAML, and the
// point level detail of a document to CSV.
package export

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format names an export encoding.
type Format string

// Supported export formats.
const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Extension returns the file suffix written for f.
func (f Format) Extension() string {
	return "." + string(f)
}

// ParseFormat validates a user supplied format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatCSV, FormatXLSX, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want csv, xlsx, json or yaml)", name)
	}
}

// FormatForPath infers the export format from the output file suffix.
func FormatForPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot infer export format from %q", path)
	}
	return ParseFormat(ext)
}
