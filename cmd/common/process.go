// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"fjacquet/charge-calc/internal/charge"
	"fjacquet/charge-calc/internal/export"
	"fjacquet/charge-calc/internal/fileutils"
	"fjacquet/charge-calc/internal/logging"
	"fjacquet/charge-calc/internal/models"
	"fjacquet/charge-calc/internal/parser"
)

// DocumentParser turns a file into a cycle document.
type DocumentParser interface {
	ParseFile(path string) (models.Document, error)
}

// LoadOptions controls how a file becomes a summary.
type LoadOptions struct {
	MergeDuplicateCycles bool
}

// LoadSummary parses inputFile and computes its charge summary.
func LoadSummary(p DocumentParser, inputFile string, opts LoadOptions, log logging.Logger) (models.Document, models.Summary, error) {
	if inputFile == "" {
		return models.Document{}, models.Summary{}, fmt.Errorf("input file must be specified")
	}

	doc, err := p.ParseFile(inputFile)
	if err != nil {
		return models.Document{}, models.Summary{}, err
	}

	if opts.MergeDuplicateCycles {
		before := len(doc.Cycles)
		doc = doc.MergeDuplicateCycles()
		if merged := before - len(doc.Cycles); merged > 0 {
			log.Info("Merged duplicate cycles", logging.F(logging.FieldCount, merged))
		}
	}

	if doc.IsEmpty() {
		log.Warn("No cycles found", logging.F(logging.FieldFile, inputFile))
	}

	return doc, charge.Summarize(filepath.Base(inputFile), doc), nil
}

// WriteTable prints the summary table with tab separated columns. With
// withEnergy set, a fourth column carries step and cycle energies.
func WriteTable(w io.Writer, summary models.Summary, precision int, withEnergy bool) error {
	energies := energyColumn(summary, precision)
	for i, row := range summary.Rows(precision) {
		cols := row.Strings()
		if withEnergy {
			cols = append(cols, energies[i])
		}
		if _, err := fmt.Fprintln(w, strings.Join(cols, "\t")); err != nil {
			return err
		}
	}
	return nil
}

// energyColumn aligns energy strings with the rows produced by Summary.Rows.
func energyColumn(summary models.Summary, precision int) []string {
	var col []string
	format := func(v *float64) string {
		if v == nil {
			return ""
		}
		return models.FormatValue(*v, precision)
	}
	for _, c := range summary.Cycles {
		col = append(col, "")
		for _, s := range c.Steps {
			col = append(col, format(s.Energy))
		}
		col = append(col, format(c.TotalEnergy))
	}
	return col
}

// ExportRequest describes one export run.
type ExportRequest struct {
	Input  string
	Output string
	// Format overrides the format inferred from Output when non-empty.
	Format string
	Points bool
	LoadOptions
}

// ExportFile parses req.Input and writes the summary, or the point detail when
// req.Points is set, to req.Output.
func ExportFile(p DocumentParser, exp *export.Exporter, req ExportRequest, log logging.Logger) error {
	if req.Output == "" {
		return fmt.Errorf("output file must be specified")
	}

	doc, summary, err := LoadSummary(p, req.Input, req.LoadOptions, log)
	if err != nil {
		return err
	}

	if req.Points {
		return exp.ExportPoints(req.Output, doc)
	}

	format, err := resolveFormat(req.Format, req.Output)
	if err != nil {
		return err
	}
	return exp.ExportFile(req.Output, format, summary)
}

func resolveFormat(name, output string) (export.Format, error) {
	if name != "" {
		return export.ParseFormat(name)
	}
	return export.FormatForPath(output)
}

// BatchResult counts the outcome of a directory run.
type BatchResult struct {
	Processed int
	Failed    int
}

// ProcessDirectory exports every supported file of inputDir into outputDir in
// format. A failing file is logged and skipped.
func ProcessDirectory(p DocumentParser, exp *export.Exporter, inputDir, outputDir, format string, opts LoadOptions, log logging.Logger) (BatchResult, error) {
	var result BatchResult
	if inputDir == "" || outputDir == "" {
		return result, fmt.Errorf("input and output directories must be specified")
	}

	f, err := export.ParseFormat(format)
	if err != nil {
		return result, err
	}

	files, err := fileutils.ListFilesWithExtensions(inputDir, parser.SupportedExtensions...)
	if err != nil {
		return result, fmt.Errorf("failed to read input directory: %w", err)
	}
	if len(files) == 0 {
		log.Warn("No supported files found in input directory", logging.F(logging.FieldFile, inputDir))
		return result, nil
	}

	log.Info("Found files for processing", logging.F(logging.FieldCount, len(files)))

	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return result, err
	}

	for _, input := range files {
		output := fileutils.ReplaceExtension(input, outputDir, f.Extension())
		req := ExportRequest{Input: input, Output: output, Format: string(f), LoadOptions: opts}
		if err := ExportFile(p, exp, req, log); err != nil {
			log.WithError(err).Error("Failed to process file",
				logging.F(logging.FieldInputFile, input))
			result.Failed++
			continue
		}
		result.Processed++
	}

	return result, nil
}
