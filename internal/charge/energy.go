package charge

import (
	"math"

	"fjacquet/charge-calc/internal/models"

	"gonum.org/v1/gonum/floats"
)

// Energy integrates voltage*current over time for one step.
//
// It reports false when a voltage or current sample is not finite. Pairs with
// non-increasing time are skipped.
func Energy(points []models.MeasurementPoint) (float64, bool) {
	if len(points) == 0 {
		return 0, true
	}

	times := make([]float64, len(points))
	voltages := make([]float64, len(points))
	currents := make([]float64, len(points))
	for i, p := range points {
		if !isFinite(p.Voltage) || !isFinite(p.Current) {
			return 0, false
		}
		times[i] = p.Time
		voltages[i] = p.Voltage
		currents[i] = p.Current
	}

	if len(points) == 1 {
		return 0, true
	}

	powers := make([]float64, len(points))
	floats.MulTo(powers, voltages, currents)

	if isConstant(powers) {
		return powers[0] * (times[len(times)-1] - times[0]), true
	}

	var e float64
	for i := 0; i < len(times)-1; i++ {
		dt := times[i+1] - times[i]
		if dt <= 0 {
			continue
		}
		e += (powers[i] + powers[i+1]) / 2 * dt
	}
	return e, true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
