package export

import (
	"fmt"
	"io"

	"fjacquet/charge-calc/internal/models"

	"github.com/xuri/excelize/v2"
)

var xlsxHeader = []interface{}{"Cycle", "Step", "Charge"}

// WriteXLSX writes the table to a single worksheet named after the configured
// sheet name, under a bold Cycle, Step, Charge header row.
func (e *Exporter) WriteXLSX(w io.Writer, rows []models.SummaryRow) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	sheet := e.opts.SheetName
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("error creating sheet %q: %w", sheet, err)
	}
	f.SetActiveSheet(index)
	if sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("error removing default sheet: %w", err)
		}
	}

	header := xlsxHeader
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "C1", bold); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{row.Cycle, row.Step, row.Charge}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("error writing row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(sheet, "A", "C", 16); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("error writing workbook: %w", err)
	}
	return nil
}
