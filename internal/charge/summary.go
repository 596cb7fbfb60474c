package charge

import (
	"fjacquet/charge-calc/internal/models"
)

// Summarize computes the charge and energy of every step and the totals of
// every cycle of doc. Each step is computed independently; a cycle total is
// the sum of its step charges, not an integral over all of its points.
func Summarize(source string, doc models.Document) models.Summary {
	summary := models.Summary{
		Source: source,
		Cycles: make([]models.CycleSummary, 0, len(doc.Cycles)),
	}

	for _, c := range doc.Cycles {
		cs := models.CycleSummary{
			ID:    c.ID,
			Steps: make([]models.StepSummary, 0, len(c.Steps)),
		}

		charges := make([]float64, 0, len(c.Steps))
		var energyTotal float64
		energyDefined := true

		for _, s := range c.Steps {
			q := Calculate(s.Points)
			charges = append(charges, q)

			ss := models.StepSummary{ID: s.ID, Points: len(s.Points), Charge: q}
			if e, ok := Energy(s.Points); ok {
				ss.Energy = &e
				energyTotal += e
			} else {
				energyDefined = false
			}
			cs.Steps = append(cs.Steps, ss)
		}

		cs.TotalCharge = Total(charges)
		if energyDefined {
			total := energyTotal
			cs.TotalEnergy = &total
		}
		summary.Cycles = append(summary.Cycles, cs)
	}

	return summary
}
