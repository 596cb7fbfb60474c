package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"fjacquet/charge-calc/internal/fileutils"
	"fjacquet/charge-calc/internal/logging"
	"fjacquet/charge-calc/internal/models"
	"fjacquet/charge-calc/internal/parsererror"
)

// Recognized file name suffixes.
const (
	ExtTabular  = ".xlsx"
	ExtLineText = ".edf"
)

// SupportedExtensions lists the suffixes accepted by EncodingForPath.
var SupportedExtensions = []string{ExtTabular, ExtLineText}

// EncodingForPath selects the encoding from the file name suffix, ignoring case.
func EncodingForPath(path string) (Encoding, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ExtTabular:
		return Tabular, nil
	case ExtLineText:
		return LineText, nil
	default:
		return 0, &parsererror.UnsupportedFormatError{FilePath: path, Extension: ext}
	}
}

// ParseFile reads the whole file at path and parses it with the encoding chosen
// by its suffix. With content sniffing enabled, unknown suffixes fall back to
// DetectEncoding.
func (p *Parser) ParseFile(path string) (models.Document, error) {
	log := p.logger.WithField(logging.FieldFile, path)

	data, err := fileutils.ReadFile(path)
	if err != nil {
		return models.Document{}, &parsererror.SourceError{FilePath: path, Op: "read", Err: err}
	}

	enc, err := EncodingForPath(path)
	if err != nil {
		if !p.sniffContent || !errors.Is(err, parsererror.ErrUnsupportedFormat) {
			return models.Document{}, err
		}
		detected, reason, detectErr := DetectEncoding(data)
		if detectErr != nil {
			return models.Document{}, &parsererror.UnsupportedFormatError{
				FilePath:  path,
				Extension: strings.ToLower(filepath.Ext(path)),
				Reason:    reason,
			}
		}
		log.Info("Encoding detected from content",
			logging.F(logging.FieldEncoding, detected.String()),
			logging.F(logging.FieldReason, reason))
		enc = detected
	}

	log.Info("Parsing cycling records", logging.F(logging.FieldEncoding, enc.String()))

	doc, err := p.Parse(enc, bytes.NewReader(data))
	if err != nil {
		var srcErr *parsererror.SourceError
		if errors.As(err, &srcErr) && srcErr.FilePath == "" {
			srcErr.FilePath = path
		}
		return models.Document{}, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return doc, nil
}

// ParseReader parses r using the encoding implied by name.
func (p *Parser) ParseReader(name string, r io.Reader) (models.Document, error) {
	enc, err := EncodingForPath(name)
	if err != nil {
		return models.Document{}, err
	}
	return p.Parse(enc, r)
}
