package stats

import "math"

// Quarter is the grid every derived statistic is aligned on.
const Quarter = 0.25

// RoundUp moves x up to the next point of the quarter grid.
// There are no fixed points: a value already on the grid moves up by a full
// quarter, so RoundUp(x) > x always holds.
func RoundUp(x float64) float64 {
	return x + (Quarter - math.Mod(x, Quarter))
}
