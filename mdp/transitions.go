package mdp

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// stochasticTol bounds the deviation of each transition row sum from 1.
const stochasticTol = 1e-9

// TransitionModel is the flat transition representation of a finite MDP over
// a Space: an (n·k)×n matrix whose row i·k+j holds the distribution over
// successor states when action aⱼ is taken in state sᵢ. Immutable after
// construction.
type TransitionModel struct {
	space *Space
	probs *mat.Dense // (n·k)×n, row-stochastic per (state, action)
}

// NewTransitionModel validates rows and wraps them into a TransitionModel.
//
// Contracts:
//   - len(rows) == n·k, each row of length n.
//   - every entry finite and in [0,1]; every row sums to 1 within tolerance.
//
// Errors: ErrDimensionMismatch on shape violations, ErrNotStochastic on
// value violations.
//
// Complexity: O(n²·k).
func NewTransitionModel(space *Space, rows [][]float64) (*TransitionModel, error) {
	if space == nil {
		return nil, ErrDimensionMismatch
	}
	n, k := space.NumStates(), space.NumActions()
	if len(rows) != n*k {
		return nil, ErrDimensionMismatch
	}

	probs := mat.NewDense(n*k, n, nil)
	for r, row := range rows {
		if len(row) != n {
			return nil, ErrDimensionMismatch
		}
		var sum float64
		for _, p := range row {
			if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 || p > 1 {
				return nil, ErrNotStochastic
			}
			sum += p
		}
		if math.Abs(sum-1) > stochasticTol {
			return nil, ErrNotStochastic
		}
		probs.SetRow(r, row)
	}

	return &TransitionModel{space: space, probs: probs}, nil
}

// Space returns the Space this model is indexed by.
func (m *TransitionModel) Space() *Space { return m.space }

// Prob returns P(to | from, action), looking all three identifiers up in the
// Space. Errors: ErrUnknownState / ErrUnknownAction on failed lookups.
//
// Complexity: O(1).
func (m *TransitionModel) Prob(from, action, to string) (float64, error) {
	si, err := m.space.StateIndex(from)
	if err != nil {
		return 0, err
	}
	ai, err := m.space.ActionIndex(action)
	if err != nil {
		return 0, err
	}
	sj, err := m.space.StateIndex(to)
	if err != nil {
		return 0, err
	}

	return m.probs.At(si*m.space.NumActions()+ai, sj), nil
}

// Dense exposes the underlying (n·k)×n matrix. Callers must treat it as
// read-only; it is shared with the model.
func (m *TransitionModel) Dense() *mat.Dense { return m.probs }

// RowFor returns the successor distribution for (state index si, action
// index ai) as a read-only row view.
// Errors: ErrUnknownState / ErrUnknownAction when an index is out of range.
func (m *TransitionModel) RowFor(si, ai int) ([]float64, error) {
	n, k := m.space.NumStates(), m.space.NumActions()
	if si < 0 || si >= n {
		return nil, ErrUnknownState
	}
	if ai < 0 || ai >= k {
		return nil, ErrUnknownAction
	}

	return m.probs.RawRowView(si*k + ai), nil
}
