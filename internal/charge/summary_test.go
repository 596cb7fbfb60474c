package charge

import (
	"math"
	"testing"

	"fjacquet/charge-calc/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	doc := models.Document{Cycles: []models.Cycle{
		{ID: 1, Steps: []models.Step{
			{ID: 1, Points: pts([3]float64{0, 1, 1}, [3]float64{1, 1, 1})},
			{ID: 2, Points: []models.MeasurementPoint{
				models.NewPoint(0, 1, 7),
				models.NewPointWithCharge(1, 1, 7, 0.25),
			}},
		}},
		{ID: 2, Steps: []models.Step{
			{ID: 1, Points: pts([3]float64{0, 1, 2}, [3]float64{1, 1, 2})},
		}},
	}}

	summary := Summarize("run.xlsx", doc)

	assert.Equal(t, "run.xlsx", summary.Source)
	require.Len(t, summary.Cycles, 2)

	first := summary.Cycles[0]
	require.Len(t, first.Steps, 2)
	assert.Equal(t, 1.0, first.Steps[0].Charge)
	assert.Equal(t, 0.25, first.Steps[1].Charge)
	assert.Equal(t, 2, first.Steps[1].Points)
	assert.InDelta(t, 1.25, first.TotalCharge, eps)
	require.NotNil(t, first.TotalEnergy)
	assert.InDelta(t, 1+7, *first.TotalEnergy, eps)

	assert.Equal(t, 2.0, summary.Cycles[1].TotalCharge)

	rows := summary.Rows(models.DefaultPrecision)
	assert.Equal(t, "1.250000", rows[3].Charge)
}

func TestSummarize_UndefinedEnergy(t *testing.T) {
	doc := models.Document{Cycles: []models.Cycle{
		{ID: 1, Steps: []models.Step{
			{ID: 1, Points: pts([3]float64{0, math.Inf(1), 1}, [3]float64{1, 1, 1})},
			{ID: 2, Points: pts([3]float64{0, 1, 1}, [3]float64{1, 1, 1})},
		}},
	}}

	summary := Summarize("", doc)

	cycle := summary.Cycles[0]
	assert.Nil(t, cycle.Steps[0].Energy)
	assert.NotNil(t, cycle.Steps[1].Energy)
	assert.Nil(t, cycle.TotalEnergy)
	assert.Equal(t, 2.0, cycle.TotalCharge)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize("empty.edf", models.Document{})
	assert.Empty(t, summary.Cycles)
	assert.Empty(t, summary.Rows(models.DefaultPrecision))
}
