package lpirl

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// discountedResolvent computes (I − γ·Tπ)⁻¹, the operator that turns a
// per-state reward into its discounted infinite-horizon value under the
// policy chain. For row-stochastic Tπ and γ ∈ (0,1) the spectral radius of
// γ·Tπ is below 1, so the inverse exists; ErrSingularResolvent covers the
// numerically singular cases.
//
// A finite mat.Condition error from gonum flags ill-conditioning but still
// yields a usable inverse, so it is tolerated; an infinite condition number
// is exact singularity and is not.
//
// Complexity: O(n³).
func discountedResolvent(tpi *mat.Dense, gamma float64) (*mat.Dense, error) {
	n, _ := tpi.Dims()

	a := mat.NewDense(n, n, nil)
	a.Scale(-gamma, tpi)
	for i := 0; i < n; i++ {
		a.Set(i, i, a.At(i, i)+1)
	}

	var inv mat.Dense
	if err := inv.Inverse(a); err != nil {
		cond, near := err.(mat.Condition)
		if !near || math.IsInf(float64(cond), 1) {
			return nil, fmt.Errorf("lpirl: inverting (I-γ·Tπ) with γ=%v: %w: %v", gamma, ErrSingularResolvent, err)
		}
	}

	return &inv, nil
}
