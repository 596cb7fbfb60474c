package export

import (
	"fmt"
	"io"

	"fjacquet/charge-calc/internal/fileutils"
	"fjacquet/charge-calc/internal/logging"
	"fjacquet/charge-calc/internal/models"
)

// Options configures an Exporter.
type Options struct {
	Delimiter      rune
	IncludeHeaders bool
	Precision      int
	SheetName      string
}

// DefaultOptions mirrors the configuration defaults.
func DefaultOptions() Options {
	return Options{
		Delimiter: ',',
		Precision: models.DefaultPrecision,
		SheetName: "Charges",
	}
}

// Exporter renders summaries in the supported formats.
type Exporter struct {
	logger logging.Logger
	opts   Options
}

// New creates an Exporter. Zero option values fall back to DefaultOptions.
func New(logger logging.Logger, opts Options) *Exporter {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	def := DefaultOptions()
	if opts.Delimiter == 0 {
		opts.Delimiter = def.Delimiter
	}
	if opts.SheetName == "" {
		opts.SheetName = def.SheetName
	}
	if opts.Precision < 0 {
		opts.Precision = def.Precision
	}
	return &Exporter{logger: logger, opts: opts}
}

// Options returns the effective options.
func (e *Exporter) Options() Options {
	return e.opts
}

// Write renders summary to w in format f.
func (e *Exporter) Write(w io.Writer, f Format, summary models.Summary) error {
	switch f {
	case FormatCSV:
		return e.WriteCSV(w, summary.Rows(e.opts.Precision))
	case FormatXLSX:
		return e.WriteXLSX(w, summary.Rows(e.opts.Precision))
	case FormatJSON:
		return WriteJSON(w, summary)
	case FormatYAML:
		return WriteYAML(w, summary)
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
}

// ExportFile writes summary to path, creating parent directories as needed.
func (e *Exporter) ExportFile(path string, f Format, summary models.Summary) (err error) {
	file, err := fileutils.CreateFile(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing %s: %w", path, cerr)
		}
	}()

	if err := e.Write(file, f, summary); err != nil {
		return fmt.Errorf("error writing %s export: %w", f, err)
	}

	e.logger.Info("Exported charge summary",
		logging.F(logging.FieldOutputFile, path),
		logging.F(logging.FieldFormat, string(f)),
		logging.F(logging.FieldCycles, len(summary.Cycles)))
	return nil
}

// ExportPoints writes the point level CSV of doc to path.
func (e *Exporter) ExportPoints(path string, doc models.Document) (err error) {
	file, err := fileutils.CreateFile(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing %s: %w", path, cerr)
		}
	}()

	rows := PointRows(doc, e.opts.Precision)
	if err := e.WritePoints(file, rows); err != nil {
		return fmt.Errorf("error writing point export: %w", err)
	}

	e.logger.Info("Exported measurement points",
		logging.F(logging.FieldOutputFile, path),
		logging.F(logging.FieldPoints, len(rows)))
	return nil
}
