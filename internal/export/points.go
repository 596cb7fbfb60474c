package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"fjacquet/charge-calc/internal/charge"
	"fjacquet/charge-calc/internal/models"

	"github.com/gocarina/gocsv"
)

// PointRow is one measurement point with the charge of its step and cycle.
type PointRow struct {
	Cycle            int    `csv:"cycle"`
	Step             int    `csv:"step"`
	Time             string `csv:"time"`
	Voltage          string `csv:"voltage"`
	Current          string `csv:"current"`
	Charge           string `csv:"charge"`
	CalculatedCharge string `csv:"calculatedCharge"`
	TotalCycleCharge string `csv:"totalCycleCharge"`
}

// PointRows flattens doc into one row per measurement point. Charge is empty
// when the source did not report one.
func PointRows(doc models.Document, precision int) []PointRow {
	rows := make([]PointRow, 0)
	for _, c := range doc.Cycles {
		charges := make([]float64, len(c.Steps))
		for i, s := range c.Steps {
			charges[i] = charge.Calculate(s.Points)
		}
		total := models.FormatValue(charge.Total(charges), precision)

		for i, s := range c.Steps {
			stepCharge := models.FormatValue(charges[i], precision)
			for _, p := range s.Points {
				row := PointRow{
					Cycle:            c.ID,
					Step:             s.ID,
					Time:             formatFloat(p.Time),
					Voltage:          formatFloat(p.Voltage),
					Current:          formatFloat(p.Current),
					CalculatedCharge: stepCharge,
					TotalCycleCharge: total,
				}
				if q, ok := p.ReportedCharge(); ok {
					row.Charge = formatFloat(q)
				}
				rows = append(rows, row)
			}
		}
	}
	return rows
}

// WritePoints writes rows with a header, using the configured delimiter.
func (e *Exporter) WritePoints(w io.Writer, rows []PointRow) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = e.opts.Delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
