package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"fjacquet/charge-calc/internal/models"

	"github.com/gocarina/gocsv"
)

// WriteCSV writes the table rows verbatim, with a Cycle,Step,Charge header
// only when IncludeHeaders is set.
func (e *Exporter) WriteCSV(w io.Writer, rows []models.SummaryRow) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = e.opts.Delimiter
	out := gocsv.NewSafeCSVWriter(csvWriter)

	if e.opts.IncludeHeaders {
		if err := gocsv.MarshalCSV(rows, out); err != nil {
			return fmt.Errorf("error writing CSV data: %w", err)
		}
		return nil
	}
	if err := gocsv.MarshalCSVWithoutHeaders(rows, out); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// ReadCSV reads back a table written by WriteCSV with the same options.
func (e *Exporter) ReadCSV(r io.Reader) ([]models.SummaryRow, error) {
	csvReader := csv.NewReader(r)
	csvReader.Comma = e.opts.Delimiter

	var rows []models.SummaryRow
	var err error
	if e.opts.IncludeHeaders {
		err = gocsv.UnmarshalCSV(csvReader, &rows)
	} else {
		err = gocsv.UnmarshalCSVWithoutHeaders(csvReader, &rows)
	}
	if errors.Is(err, gocsv.ErrEmptyCSVFile) {
		return []models.SummaryRow{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading CSV data: %w", err)
	}
	return rows, nil
}
