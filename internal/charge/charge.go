// Package charge derives per-step charge and energy from measurement points.
package charge

import (
	"math"
	"sort"

	"fjacquet/charge-calc/internal/models"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// ConstantTolerance is the absolute deviation from the first sample under which
// a signal is treated as constant.
const ConstantTolerance = 1e-9

// Calculate returns the charge of one step.
//
// The latest point carrying a reported charge wins. Without one, current is
// integrated over time: a constant current gives I0*(tN-t0), anything else the
// trapezoidal sum over consecutive samples. Empty input yields 0.
func Calculate(points []models.MeasurementPoint) float64 {
	if len(points) == 0 {
		return 0
	}

	for i := len(points) - 1; i >= 0; i-- {
		if q, ok := points[i].ReportedCharge(); ok {
			return q
		}
	}

	times := make([]float64, len(points))
	currents := make([]float64, len(points))
	for i, p := range points {
		times[i] = p.Time
		currents[i] = p.Current
	}

	if isConstant(currents) {
		return currents[0] * (times[len(times)-1] - times[0])
	}
	return trapezoid(times, currents)
}

// Total sums independently computed step charges.
func Total(stepCharges []float64) float64 {
	if len(stepCharges) == 0 {
		return 0
	}
	return floats.Sum(stepCharges)
}

func isConstant(values []float64) bool {
	for _, v := range values {
		if !(math.Abs(v-values[0]) < ConstantTolerance) {
			return false
		}
	}
	return true
}

// trapezoid integrates y over x. Time is not validated: a decreasing sample
// contributes a negative area instead of being rejected.
func trapezoid(x, y []float64) float64 {
	if len(x) < 2 {
		return 0
	}
	if sort.Float64sAreSorted(x) && !floats.HasNaN(x) {
		return integrate.Trapezoidal(x, y)
	}

	var q float64
	for i := 0; i < len(x)-1; i++ {
		q += (y[i] + y[i+1]) / 2 * (x[i+1] - x[i])
	}
	return q
}
