package lpirl

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// solveLP minimizes c·x subject to A_ub·x ≤ b_ub. The inequality form is
// converted to standard equality form (variables split into positive and
// negative parts plus slacks) and handed to gonum's simplex; the
// general-form solution is then reassembled as x = x⁺ − x⁻. Reward
// variables carry no solver-level bounds — all bounding lives in the
// constraint rows.
//
// Errors: ErrInfeasible, ErrUnbounded, or ErrSolverFailed wrapping the
// backend error for any other failure mode.
//
// Complexity: simplex-typical, polynomial in rows×cols in practice.
func solveLP(c []float64, aUb *mat.Dense, bUb []float64, tol float64) (obj float64, x []float64, err error) {
	cStd, aStd, bStd := lp.Convert(c, aUb, bUb, nil, nil)

	obj, xStd, err := lp.Simplex(cStd, aStd, bStd, tol, nil)
	if err != nil {
		switch {
		case errors.Is(err, lp.ErrInfeasible):
			return 0, nil, ErrInfeasible
		case errors.Is(err, lp.ErrUnbounded):
			return 0, nil, ErrUnbounded
		default:
			return 0, nil, fmt.Errorf("%w: %v", ErrSolverFailed, err)
		}
	}

	// Standard-form layout is [x⁺; x⁻; slacks]; recover the free variables.
	nVar := len(c)
	x = make([]float64, nVar)
	for i := range x {
		x[i] = xStd[i] - xStd[nVar+i]
	}

	return obj, x, nil
}
