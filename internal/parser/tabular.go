package parser

import (
	"io"
	"strings"

	"fjacquet/charge-calc/internal/parsererror"

	"github.com/xuri/excelize/v2"
)

// ReadTabularRecords reads the first worksheet of a workbook into records.
// Rows with an empty first cell are skipped; cell values are read raw so that
// numbers are not altered by the cell's display format.
func ReadTabularRecords(r io.Reader) ([]Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &parsererror.SourceError{Op: "open workbook", Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &parsererror.SourceError{Op: "read sheet " + sheets[0], Err: err}
	}

	return RowsToRecords(rows), nil
}

// RowsToRecords converts grid rows into records, trimming every cell.
func RowsToRecords(rows [][]string) []Record {
	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		key := strings.TrimSpace(row[0])
		if key == "" {
			continue
		}
		fields := make([]string, len(row)-1)
		for j, cell := range row[1:] {
			fields[j] = strings.TrimSpace(cell)
		}
		records = append(records, Record{Line: i + 1, Key: key, Fields: fields})
	}
	return records
}
