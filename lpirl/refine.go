package lpirl

import "math"

// tieBreakSlack is the relative budget by which the tie-breaking re-solve
// may exceed the primary optimum. The selected point scales linearly with
// the slack along the chosen edge and the min-max rescaling removes the
// magnitude, so the normalized reward does not depend on its exact value.
const tieBreakSlack = 1e-6

// refineSolution re-solves the program over the near-optimal set, returning
// the point that maximizes total reward mass.
//
// The exact optimum of the assembled LP is frequently the constant R ≡ 0
// vertex: whenever a unit of reward buys less margin than its L1 penalty
// costs, zero reward is strictly cheapest, and a constant vector carries no
// shape for the min-max rescaling to stretch. Interior-point solvers stop at
// a nearby point whose tiny reward spread does carry the shape. This
// reproduces that selection deterministically: a budget row bounds the
// primary objective c·x within tieBreakSlack of obj, and Σ Rᵢ is maximized
// subject to that budget and every original constraint row, so the refined
// point still satisfies all policy-optimality, bound and surrogate rows.
//
// Complexity: one additional simplex solve over numRows+1 rows.
func refineSolution(p *problem, obj, tol float64) ([]float64, error) {
	budget := p.newRow()
	copy(budget, p.c)
	p.appendRow(budget, obj+tieBreakSlack*(1+math.Abs(obj)))

	c := make([]float64, p.cols())
	off := p.offsetOf(blockReward)
	for i := 0; i < p.widthOf(blockReward); i++ {
		c[off+i] = -1
	}

	_, aUb, bUb := p.matrices()
	_, x, err := solveLP(c, aUb, bUb, tol)

	return x, err
}
