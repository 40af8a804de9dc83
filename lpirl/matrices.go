package lpirl

import (
	"gonum.org/v1/gonum/mat"

	"github.com/binderwang/rl-experiments/mdp"
)

// PolicyTransition builds Tπ, the n×n row-stochastic chain induced by
// following the policy: Tπ[i,i'] = P(sᵢ' | sᵢ, π(sᵢ)).
//
// Errors: mdp.ErrPolicyIncomplete / mdp.ErrUnknownAction on an invalid
// policy entry.
//
// Complexity: O(n²).
func PolicyTransition(model *mdp.TransitionModel, policy mdp.Policy) (*mat.Dense, error) {
	space := model.Space()
	n := space.NumStates()

	tpi := mat.NewDense(n, n, nil)
	for si, s := range space.States() {
		a, err := policy.Action(s)
		if err != nil {
			return nil, err
		}
		ai, err := space.ActionIndex(a)
		if err != nil {
			return nil, err
		}
		row, err := model.RowFor(si, ai)
		if err != nil {
			return nil, err
		}
		tpi.SetRow(si, row)
	}

	return tpi, nil
}

// DeviationTransitions builds T¬π[0..k-2]: for each deviation index, the n×n
// chain induced by taking the idx-th non-policy action at every state.
//
// The non-policy actions at a state are the full action set minus π(s),
// preserving the Space's action order. Because a single global action set is
// enforced for all states, this relative order is identical everywhere, so
// stacking per-state rows under a shared idx is well defined.
//
// A single-action space (k=1) yields an empty slice: no deviation exists, so
// the policy-optimality stages contribute zero constraints.
//
// Complexity: O(n²·k).
func DeviationTransitions(model *mdp.TransitionModel, policy mdp.Policy) ([]*mat.Dense, error) {
	space := model.Space()
	n, k := space.NumStates(), space.NumActions()

	tnotpi := make([]*mat.Dense, k-1)
	for idx := range tnotpi {
		tnotpi[idx] = mat.NewDense(n, n, nil)
	}

	for si, s := range space.States() {
		a, err := policy.Action(s)
		if err != nil {
			return nil, err
		}
		pi, err := space.ActionIndex(a)
		if err != nil {
			return nil, err
		}

		// Walk the action set in order, skipping the policy action; the
		// idx-th remaining action fills the idx-th deviation matrix's row.
		idx := 0
		for ai := 0; ai < k; ai++ {
			if ai == pi {
				continue
			}
			row, err := model.RowFor(si, ai)
			if err != nil {
				return nil, err
			}
			tnotpi[idx].SetRow(si, row)
			idx++
		}
	}

	return tnotpi, nil
}
