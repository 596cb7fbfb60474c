package models

// MeasurementPoint is one sampled instant of a step.
// Charge is nil unless the source reported a value at this point.
type MeasurementPoint struct {
	Time    float64  `json:"time" yaml:"time"`
	Voltage float64  `json:"voltage" yaml:"voltage"`
	Current float64  `json:"current" yaml:"current"`
	Charge  *float64 `json:"charge,omitempty" yaml:"charge,omitempty"`
}

// NewPoint builds a point without a reported charge.
func NewPoint(time, voltage, current float64) MeasurementPoint {
	return MeasurementPoint{Time: time, Voltage: voltage, Current: current}
}

// NewPointWithCharge builds a point carrying a reported charge.
func NewPointWithCharge(time, voltage, current, charge float64) MeasurementPoint {
	c := charge
	return MeasurementPoint{Time: time, Voltage: voltage, Current: current, Charge: &c}
}

// ReportedCharge returns the reported charge and whether one is present.
func (p MeasurementPoint) ReportedCharge() (float64, bool) {
	if p.Charge == nil {
		return 0, false
	}
	return *p.Charge, true
}

// Step is one phase within a cycle.
type Step struct {
	ID     int                `json:"step" yaml:"step"`
	Points []MeasurementPoint `json:"dp" yaml:"dp"`
}

// Cycle is one charge/discharge iteration.
type Cycle struct {
	ID    int    `json:"cycle" yaml:"cycle"`
	Steps []Step `json:"steps" yaml:"steps"`
}

// Document is the full parse result, in source order.
type Document struct {
	Cycles []Cycle `json:"cycles" yaml:"cycles"`
}

// Counts returns the number of cycles, steps and points in the document.
func (d Document) Counts() (cycles, steps, points int) {
	cycles = len(d.Cycles)
	for _, c := range d.Cycles {
		steps += len(c.Steps)
		for _, s := range c.Steps {
			points += len(s.Points)
		}
	}
	return cycles, steps, points
}

// IsEmpty reports whether the document holds no cycles.
func (d Document) IsEmpty() bool {
	return len(d.Cycles) == 0
}

// MergeDuplicateCycles returns a document where cycles sharing an identifier are
// combined into the first one, steps concatenated in source order. Cycle order
// is the order of first appearance; nothing is sorted.
func (d Document) MergeDuplicateCycles() Document {
	index := make(map[int]int, len(d.Cycles))
	merged := make([]Cycle, 0, len(d.Cycles))

	for _, c := range d.Cycles {
		pos, seen := index[c.ID]
		if !seen {
			index[c.ID] = len(merged)
			steps := make([]Step, len(c.Steps))
			copy(steps, c.Steps)
			merged = append(merged, Cycle{ID: c.ID, Steps: steps})
			continue
		}
		merged[pos].Steps = append(merged[pos].Steps, c.Steps...)
	}

	return Document{Cycles: merged}
}
