package lpirl

import (
	"gonum.org/v1/gonum/floats"
)

// degenerateTol is the smallest reward spread the min-max rescaling accepts;
// anything below is treated as a constant vector.
const degenerateTol = 1e-12

// extractReward slices the n true reward variables from the LP solution and
// min-max rescales them into [0, Rmax]:
//
//	rewardᵢ = Rmax · (xᵢ − min) / (max − min)
//
// The endpoints are exact: the smallest entry maps to 0 and the largest to
// Rmax, not merely within floating tolerance.
//
// Errors: ErrDegenerateSolution when all n values coincide — the division
// by zero is surfaced explicitly instead of propagating NaN.
//
// Complexity: O(n).
func extractReward(x []float64, n int, rmax float64) ([]float64, error) {
	r := make([]float64, n)
	copy(r, x[:n])

	lo, hi := floats.Min(r), floats.Max(r)
	span := hi - lo
	if span < degenerateTol {
		return nil, ErrDegenerateSolution
	}

	for i := range r {
		r[i] = rmax * ((r[i] - lo) / span)
	}

	return r, nil
}
