package lpirl

import "gonum.org/v1/gonum/mat"

// Constraint assembly runs in four strictly ordered stages. Later stages
// rely on the column blocks established by earlier ones, so the order in
// Solve is fixed: optimal-policy → costly-single-step → reward-bound → L1.

// advantageRows returns −(Tπ − T¬π)·(I−γ·Tπ)⁻¹, the n×n block whose i-th
// row, dotted with the reward vector, is the negated discounted advantage of
// the policy action over the deviation at state i. Advantage ≥ 0 is then
// expressed as the ≤-constraint row·R ≤ 0.
func advantageRows(tpi, tnot, resolvent *mat.Dense) *mat.Dense {
	var diff, out mat.Dense
	diff.Sub(tpi, tnot)
	out.Mul(&diff, resolvent)
	out.Scale(-1, &out)

	return &out
}

// addOptimalPolicyConstraints appends, for every deviation index, the n
// rows making the observed policy a best response:
//
//	−(Tπ − T¬π[idx])·(I−γ·Tπ)⁻¹ · R ≤ 0
//
// Adds (k−1)·n rows and no columns.
func addOptimalPolicyConstraints(p *problem, tpi *mat.Dense, tnotpi []*mat.Dense, resolvent *mat.Dense) {
	n := p.widthOf(blockReward)
	off := p.offsetOf(blockReward)

	for _, tnot := range tnotpi {
		blockRows := advantageRows(tpi, tnot, resolvent)
		for i := 0; i < n; i++ {
			row := p.newRow()
			copy(row[off:off+n], blockRows.RawRowView(i))
			p.appendRow(row, 0)
		}
	}
}

// addCostlySingleStepConstraints installs the degeneracy-breaking heuristic:
// n margin variables mᵢ with objective coefficient −1 (maximizing Σmᵢ), and
// per deviation the epigraph rows
//
//	−(Tπ − T¬π[idx])·(I−γ·Tπ)⁻¹ · R + m ≤ 0
//
// i.e. each state's margin lies below its advantage over every alternative
// action. Adds n columns and (k−1)·n rows.
//
// With a single action there is no alternative to out-margin: adding free
// margin columns would make the objective unbounded, so k=1 contributes
// neither columns nor rows.
func addCostlySingleStepConstraints(p *problem, tpi *mat.Dense, tnotpi []*mat.Dense, resolvent *mat.Dense) {
	if len(tnotpi) == 0 {
		return
	}

	n := p.widthOf(blockReward)
	rewardOff := p.offsetOf(blockReward)

	p.addBlock(blockMargin, n, -1)
	marginOff := p.offsetOf(blockMargin)

	for _, tnot := range tnotpi {
		blockRows := advantageRows(tpi, tnot, resolvent)
		for i := 0; i < n; i++ {
			row := p.newRow()
			copy(row[rewardOff:rewardOff+n], blockRows.RawRowView(i))
			row[marginOff+i] = 1
			p.appendRow(row, 0)
		}
	}
}

// addRewardBoundConstraints appends Rᵢ ≤ Rmax for every reward variable.
// Adds n rows and no columns.
func addRewardBoundConstraints(p *problem, rmax float64) {
	n := p.widthOf(blockReward)
	off := p.offsetOf(blockReward)

	for i := 0; i < n; i++ {
		row := p.newRow()
		row[off+i] = 1
		p.appendRow(row, rmax)
	}
}

// addL1NormConstraints installs the regularization term l1·Σ|Rᵢ|: n
// surrogate variables zᵢ with objective coefficient +l1, and per reward
// variable the pair
//
//	−Rᵢ ≤ 0
//	 Rᵢ − zᵢ ≤ 0
//
// so that zᵢ dominates |Rᵢ| at the optimum. Note the first row forces
// Rᵢ ≥ 0: this encoding only supports non-negative rewards, a known
// limitation of the formulation. Adds n columns and 2n rows.
func addL1NormConstraints(p *problem, l1 float64) {
	n := p.widthOf(blockReward)
	rewardOff := p.offsetOf(blockReward)

	p.addBlock(blockAbs, n, l1)
	absOff := p.offsetOf(blockAbs)

	for i := 0; i < n; i++ {
		neg := p.newRow()
		neg[rewardOff+i] = -1
		p.appendRow(neg, 0)

		abs := p.newRow()
		abs[rewardOff+i] = 1
		abs[absOff+i] = -1
		p.appendRow(abs, 0)
	}
}
