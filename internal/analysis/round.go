package analysis

import (
	"github.com/montanaflynn/stats"
)

// round2 rounds to two decimals. Any rounding failure (NaN, Inf) collapses
// to zero, matching the engine's degrade-to-zero contract.
func round2(v float64) float64 {
	r, err := stats.Round(v, 2)
	if err != nil {
		return 0
	}
	return r
}
