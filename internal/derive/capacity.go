// Package derive holds the pure computations the planner views are built
// from: streaks, capacity usage, chart scaling and range statistics. Nothing
// here touches storage or the wall clock.
package derive

import "math"

type CapacityStatus string

const (
	CapacityNone    CapacityStatus = "none"
	CapacityWarning CapacityStatus = "warning"
	CapacityDanger  CapacityStatus = "danger"
)

// CapacityPercent returns how much of the daily capacity the planned minutes
// consume, as a rounded percentage. Values above 100 are meaningful
// (over-capacity) and are not clamped here; clamping is a presentation
// concern.
func CapacityPercent(plannedMinutes, capacityHours int) int {
	if capacityHours <= 0 {
		return 0
	}
	return int(math.Round(float64(plannedMinutes) / float64(capacityHours*60) * 100))
}

// StatusForPercent maps a capacity percentage to a status band.
// Bands are inclusive on their upper bound: <=80 none, <=100 warning,
// above that danger.
func StatusForPercent(percent int) CapacityStatus {
	switch {
	case percent <= 80:
		return CapacityNone
	case percent <= 100:
		return CapacityWarning
	default:
		return CapacityDanger
	}
}

// BarHeights scales values to bar heights between 0 and maxHeight,
// proportionally to the largest value. The max is floored at 1 so an
// all-zero series yields all-zero bars instead of dividing by zero.
func BarHeights(values []int, maxHeight int) []int {
	max := 1
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	heights := make([]int, len(values))
	for i, v := range values {
		heights[i] = int(math.Round(float64(v) / float64(max) * float64(maxHeight)))
	}
	return heights
}
