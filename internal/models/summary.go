package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultPrecision is the number of decimals used for charge strings.
const DefaultPrecision = 6

// Row labels used by the summary table.
const (
	TotalLabel  = "Total"
	cyclePrefix = "Cycle"
	stepPrefix  = "Step"
)

// StepSummary holds the computed values of one step.
type StepSummary struct {
	ID     int      `json:"step" yaml:"step"`
	Points int      `json:"points" yaml:"points"`
	Charge float64  `json:"charge" yaml:"charge"`
	Energy *float64 `json:"energy,omitempty" yaml:"energy,omitempty"`
}

// CycleSummary holds the computed values of one cycle.
type CycleSummary struct {
	ID          int           `json:"cycle" yaml:"cycle"`
	Steps       []StepSummary `json:"steps" yaml:"steps"`
	TotalCharge float64       `json:"total_charge" yaml:"total_charge"`
	TotalEnergy *float64      `json:"total_energy,omitempty" yaml:"total_energy,omitempty"`
}

// Summary is the per-cycle, per-step result of one source file.
type Summary struct {
	Source string         `json:"source,omitempty" yaml:"source,omitempty"`
	Cycles []CycleSummary `json:"cycles" yaml:"cycles"`
}

// SummaryRow is one line of the rendered table.
type SummaryRow struct {
	Cycle  string `csv:"Cycle" json:"cycle"`
	Step   string `csv:"Step" json:"step"`
	Charge string `csv:"Charge" json:"charge"`
}

// Strings returns the row as a string slice.
func (r SummaryRow) Strings() []string {
	return []string{r.Cycle, r.Step, r.Charge}
}

// Rows renders the summary as a flat table: a header row per cycle, one row per
// step and a closing Total row.
func (s Summary) Rows(precision int) []SummaryRow {
	rows := make([]SummaryRow, 0)
	for _, c := range s.Cycles {
		rows = append(rows, SummaryRow{Cycle: fmt.Sprintf("%s %d", cyclePrefix, c.ID)})
		for _, st := range c.Steps {
			rows = append(rows, SummaryRow{
				Step:   fmt.Sprintf("%s %d", stepPrefix, st.ID),
				Charge: FormatValue(st.Charge, precision),
			})
		}
		rows = append(rows, SummaryRow{Step: TotalLabel, Charge: FormatValue(c.TotalCharge, precision)})
	}
	return rows
}

// FormatValue renders v as a fixed-point string with precision decimals. The
// exact binary value is rounded half to even and a negative value keeps its
// sign when it rounds to zero, so the output matches printf's %.*f.
func FormatValue(v float64, precision int) string {
	if precision < 0 {
		precision = DefaultPrecision
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("%.*f", precision, v)
	}
	s := exactDecimal(v).StringFixedBank(int32(precision))
	if math.Signbit(v) && !strings.HasPrefix(s, "-") {
		s = "-" + s
	}
	return s
}

// exactDecimal expands v to every digit of its binary value; NewFromFloat
// would keep only the shortest decimal that round-trips.
func exactDecimal(v float64) decimal.Decimal {
	return decimal.RequireFromString(strconv.FormatFloat(v, 'f', exactDigits, 64))
}

// exactDigits covers the longest fractional expansion of a float64 (2^-1074).
const exactDigits = 1074
