package chart

import (
	"fmt"
	"strings"

	"fjacquet/charge-calc/internal/models"
)

// Quantity selects the value drawn on the Y axis.
type Quantity string

// Plottable quantities.
const (
	Voltage Quantity = "voltage"
	Current Quantity = "current"
	Charge  Quantity = "charge"
)

// ParseQuantity validates a quantity name.
func ParseQuantity(name string) (Quantity, error) {
	switch q := Quantity(strings.ToLower(strings.TrimSpace(name))); q {
	case Voltage, Current, Charge:
		return q, nil
	default:
		return "", fmt.Errorf("unknown quantity %q (want voltage, current or charge)", name)
	}
}

// Label is the Y axis caption for q.
func (q Quantity) Label() string {
	switch q {
	case Voltage:
		return "Voltage (V)"
	case Current:
		return "Current (A)"
	default:
		return "Charge"
	}
}

// Series is one plottable line.
type Series struct {
	X       []float64
	Y       []float64
	HasData bool
}

// CycleSeries holds the three quantities of one cycle on a shared time axis.
type CycleSeries struct {
	Cycle   int
	Voltage Series
	Current Series
	Charge  Series
}

// Get returns the series for q.
func (c CycleSeries) Get(q Quantity) Series {
	switch q {
	case Current:
		return c.Current
	case Charge:
		return c.Charge
	default:
		return c.Voltage
	}
}

// BuildCycleSeries flattens c and derives its series, downsampled to maxPoints
// when maxPoints is positive. The charge line uses reported charges when the
// cycle has any, with 0 where a point has none; otherwise it is the running
// trapezoidal integral of current over the flattened time axis.
func BuildCycleSeries(c models.Cycle, maxPoints int) CycleSeries {
	points := FlattenCycle(c)
	charges := chargeValues(points)

	idx := make([]int, len(points))
	for i := range idx {
		idx[i] = i
	}
	if maxPoints > 0 {
		idx = Downsample(idx, maxPoints)
	}

	cs := CycleSeries{Cycle: c.ID}
	for _, i := range idx {
		p := points[i]
		cs.Voltage.X = append(cs.Voltage.X, p.Time)
		cs.Voltage.Y = append(cs.Voltage.Y, p.Voltage)
		cs.Current.X = append(cs.Current.X, p.Time)
		cs.Current.Y = append(cs.Current.Y, p.Current)
		cs.Charge.X = append(cs.Charge.X, p.Time)
		cs.Charge.Y = append(cs.Charge.Y, charges[i])
	}
	hasData := len(idx) > 0
	cs.Voltage.HasData = hasData
	cs.Current.HasData = hasData
	cs.Charge.HasData = hasData
	return cs
}

// BuildAllSeries builds the series of every cycle of doc, in order.
func BuildAllSeries(doc models.Document, maxPoints int) []CycleSeries {
	out := make([]CycleSeries, 0, len(doc.Cycles))
	for _, c := range doc.Cycles {
		out = append(out, BuildCycleSeries(c, maxPoints))
	}
	return out
}

func chargeValues(points []Point) []float64 {
	values := make([]float64, len(points))

	reported := false
	for _, p := range points {
		if p.Charge != nil {
			reported = true
			break
		}
	}
	if reported {
		for i, p := range points {
			if p.Charge != nil {
				values[i] = *p.Charge
			}
		}
		return values
	}

	for i := 1; i < len(points); i++ {
		dt := points[i].Time - points[i-1].Time
		values[i] = values[i-1] + (points[i-1].Current+points[i].Current)/2*dt
	}
	return values
}
