package parser

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"fjacquet/charge-calc/internal/models"
	"fjacquet/charge-calc/internal/parsererror"
)

// Tabular column offsets, relative to the cell after the key.
const (
	tabularTime    = 0
	tabularVoltage = 1
	tabularCurrent = 2
	tabularCharge  = 4
)

var errMissingFields = errors.New("missing numeric fields")

func (e Encoding) hasTerminator() bool {
	return e == Tabular
}

// point converts a dp record into a measurement point for this encoding.
func (e Encoding) point(rec Record) (models.MeasurementPoint, error) {
	if e == Tabular {
		return tabularPoint(rec)
	}
	return linePoint(rec)
}

// tabularPoint reads time, voltage and current from the first three value cells
// and the reported charge from the fifth. Empty or missing numeric cells count
// as 0; an empty or missing charge cell means no reported charge.
func tabularPoint(rec Record) (models.MeasurementPoint, error) {
	var values [3]float64
	names := [3]string{"time", "voltage", "current"}
	for i, col := range []int{tabularTime, tabularVoltage, tabularCurrent} {
		v, err := cellFloat(rec, col, names[i])
		if err != nil {
			return models.MeasurementPoint{}, err
		}
		values[i] = v
	}

	point := models.NewPoint(values[0], values[1], values[2])
	if tabularCharge < len(rec.Fields) && strings.TrimSpace(rec.Fields[tabularCharge]) != "" {
		q, err := cellFloat(rec, tabularCharge, "charge")
		if err != nil {
			return models.MeasurementPoint{}, err
		}
		point = models.NewPointWithCharge(values[0], values[1], values[2], q)
	}
	return point, nil
}

// linePoint requires time, voltage and current; trailing tokens are ignored and
// the line encoding never reports a charge.
func linePoint(rec Record) (models.MeasurementPoint, error) {
	if len(rec.Fields) < 3 {
		return models.MeasurementPoint{}, &parsererror.MalformedRecordError{
			Line:  rec.Line,
			Key:   rec.Key,
			Field: "fields",
			Value: strings.Join(rec.Fields, " "),
			Err:   errMissingFields,
		}
	}

	var values [3]float64
	names := [3]string{"time", "voltage", "current"}
	for i := range values {
		v, err := strconv.ParseFloat(rec.Fields[i], 64)
		if err != nil {
			return models.MeasurementPoint{}, &parsererror.MalformedRecordError{
				Line: rec.Line, Key: rec.Key, Field: names[i], Value: rec.Fields[i], Err: err,
			}
		}
		values[i] = v
	}
	return models.NewPoint(values[0], values[1], values[2]), nil
}

func cellFloat(rec Record, col int, name string) (float64, error) {
	if col >= len(rec.Fields) {
		return 0, nil
	}
	raw := strings.TrimSpace(rec.Fields[col])
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &parsererror.MalformedRecordError{
			Line: rec.Line, Key: rec.Key, Field: name, Value: raw, Err: err,
		}
	}
	return v, nil
}

// parseID reads the identifier of a cy or st record. A missing or unparsable
// identifier becomes prev+1, or 1 when there is no previous one; the error is
// returned alongside the default for unparsable values.
func parseID(rec Record, prev int, hasPrev bool) (int, *parsererror.MalformedRecordError) {
	fallback := 1
	if hasPrev {
		fallback = prev + 1
	}

	if len(rec.Fields) == 0 {
		return fallback, nil
	}
	raw := strings.TrimSpace(rec.Fields[0])
	if raw == "" {
		return fallback, nil
	}

	if id, err := strconv.Atoi(raw); err == nil {
		return id, nil
	}
	// workbooks may store identifiers as floats
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f == math.Trunc(f) && math.Abs(f) <= math.MaxInt32 {
		return int(f), nil
	}

	return fallback, &parsererror.MalformedRecordError{
		Line:  rec.Line,
		Key:   rec.Key,
		Field: "id",
		Value: raw,
		Err:   strconv.ErrSyntax,
	}
}
