// Package chart turns cycles into plottable series and renders them with gonum/plot.
package chart

import (
	"fjacquet/charge-calc/internal/models"
)

// DefaultMaxPoints caps the points drawn per cycle when no limit is configured.
const DefaultMaxPoints = 600

// Point is a measurement placed on the continuous time axis of its cycle.
type Point struct {
	Time         float64
	OriginalTime float64
	Voltage      float64
	Current      float64
	Charge       *float64
	Step         int
}

// FlattenCycle lays the points of every step of c end to end. Each step starts
// at the normalized time reached by the previous one; empty steps are skipped.
func FlattenCycle(c models.Cycle) []Point {
	var out []Point
	offset := 0.0
	for _, s := range c.Steps {
		if len(s.Points) == 0 {
			continue
		}
		base := s.Points[0].Time
		for _, p := range s.Points {
			out = append(out, Point{
				Time:         offset + (p.Time - base),
				OriginalTime: p.Time,
				Voltage:      p.Voltage,
				Current:      p.Current,
				Charge:       p.Charge,
				Step:         s.ID,
			})
		}
		offset = out[len(out)-1].Time
	}
	return out
}

// Downsample keeps every ceil(n/maxPoints)-th element and always the last one.
// Inputs no longer than maxPoints are returned unchanged; maxPoints <= 0 yields nothing.
func Downsample[T any](points []T, maxPoints int) []T {
	if len(points) <= maxPoints {
		return points
	}
	if maxPoints <= 0 {
		return []T{}
	}
	stride := (len(points) + maxPoints - 1) / maxPoints
	out := make([]T, 0, maxPoints+1)
	last := 0
	for i := 0; i < len(points); i += stride {
		out = append(out, points[i])
		last = i
	}
	if last != len(points)-1 {
		out = append(out, points[len(points)-1])
	}
	return out
}
