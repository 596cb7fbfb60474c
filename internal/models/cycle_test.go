package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasurementPoint_ReportedCharge(t *testing.T) {
	plain := NewPoint(1, 3.7, 0.5)
	_, ok := plain.ReportedCharge()
	assert.False(t, ok)

	reported := NewPointWithCharge(1, 3.7, 0.5, 0.25)
	q, ok := reported.ReportedCharge()
	require.True(t, ok)
	assert.Equal(t, 0.25, q)
}

func TestDocument_Counts(t *testing.T) {
	doc := Document{Cycles: []Cycle{
		{ID: 1, Steps: []Step{
			{ID: 1, Points: []MeasurementPoint{NewPoint(0, 0, 1), NewPoint(1, 0, 1)}},
			{ID: 2},
		}},
		{ID: 2},
	}}

	cycles, steps, points := doc.Counts()
	assert.Equal(t, 2, cycles)
	assert.Equal(t, 2, steps)
	assert.Equal(t, 2, points)
	assert.False(t, doc.IsEmpty())
	assert.True(t, Document{}.IsEmpty())
}

func TestDocument_MergeDuplicateCycles(t *testing.T) {
	doc := Document{Cycles: []Cycle{
		{ID: 3, Steps: []Step{{ID: 1}}},
		{ID: 1, Steps: []Step{{ID: 1}}},
		{ID: 3, Steps: []Step{{ID: 2}, {ID: 3}}},
	}}

	merged := doc.MergeDuplicateCycles()

	require.Len(t, merged.Cycles, 2)
	assert.Equal(t, 3, merged.Cycles[0].ID, "first appearance order is kept")
	assert.Equal(t, 1, merged.Cycles[1].ID)
	require.Len(t, merged.Cycles[0].Steps, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{
		merged.Cycles[0].Steps[0].ID,
		merged.Cycles[0].Steps[1].ID,
		merged.Cycles[0].Steps[2].ID,
	})

	assert.Len(t, doc.Cycles[0].Steps, 1, "source document is left untouched")
}
