// Package parser turns cycling test records into a cycle/step/point tree.
//
// Both supported encodings, a tabular workbook and a plain-text line format,
// are reduced to a sequence of Records and fed through one state machine.
// They differ only in how a dp record lays out its fields and in whether the
// explicit de step terminator is honored.
package parser

import (
	"fmt"
	"io"

	"fjacquet/charge-calc/internal/logging"
	"fjacquet/charge-calc/internal/models"
)

// Encoding identifies the record shape of a source.
type Encoding int

const (
	// Tabular is a spreadsheet grid: key in the first column, values after it.
	Tabular Encoding = iota + 1
	// LineText is whitespace-separated text lines.
	LineText
)

func (e Encoding) String() string {
	switch e {
	case Tabular:
		return "tabular"
	case LineText:
		return "line-text"
	default:
		return fmt.Sprintf("encoding(%d)", int(e))
	}
}

// Record discriminator keys.
const (
	KeyCycle      = "cy"
	KeyStep       = "st"
	KeyDataPoint  = "dp"
	KeyTerminator = "de"
)

// Record is one row or line of a source: a discriminator key and the values
// that follow it. Line is the 1-based position in the source.
type Record struct {
	Line   int
	Key    string
	Fields []string
}

// Parser reads record sources into documents.
type Parser struct {
	BaseParser
	sniffContent bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithContentSniffing makes ParseFile fall back to content detection when the
// file name suffix is not recognized.
func WithContentSniffing(enabled bool) Option {
	return func(p *Parser) {
		p.sniffContent = enabled
	}
}

// New creates a Parser. A nil logger is replaced by a default one.
func New(logger logging.Logger, opts ...Option) *Parser {
	p := &Parser{BaseParser: NewBaseParser(logger)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseTabular parses a workbook in the tabular encoding.
func (p *Parser) ParseTabular(r io.Reader) (models.Document, error) {
	records, err := ReadTabularRecords(r)
	if err != nil {
		return models.Document{}, err
	}
	return p.Assemble(Tabular, records), nil
}

// ParseLineText parses text in the line encoding.
func (p *Parser) ParseLineText(r io.Reader) (models.Document, error) {
	records, err := ReadLineRecords(r)
	if err != nil {
		return models.Document{}, err
	}
	return p.Assemble(LineText, records), nil
}

// Parse parses r with the given encoding.
func (p *Parser) Parse(enc Encoding, r io.Reader) (models.Document, error) {
	switch enc {
	case Tabular:
		return p.ParseTabular(r)
	case LineText:
		return p.ParseLineText(r)
	default:
		return models.Document{}, fmt.Errorf("parse: unknown encoding %s", enc)
	}
}
