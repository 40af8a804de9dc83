package mdp

// Space fixes the ordered state and action sets of a finite MDP and provides
// bidirectional identifier ↔ index lookup. Every matrix derived from a Space
// addresses its rows/columns through these indices, so the ordering given at
// construction is immutable.
//
// Contracts:
//   - states must contain n ≥ 2 distinct, non-empty identifiers.
//   - actions must contain k ≥ 1 distinct, non-empty identifiers
//     (k=1 is a degenerate but legal single-action process).
type Space struct {
	states    []string
	actions   []string
	stateIdx  map[string]int
	actionIdx map[string]int
}

// NewSpace builds a Space from ordered state and action identifier lists.
//
// Errors: ErrDimensionMismatch on too few states/actions, ErrDuplicateID on
// empty or repeated identifiers.
//
// Complexity: O(n+k) time and space.
func NewSpace(states, actions []string) (*Space, error) {
	if len(states) < 2 || len(actions) < 1 {
		return nil, ErrDimensionMismatch
	}
	stateIdx, err := indexOf(states)
	if err != nil {
		return nil, err
	}
	actionIdx, err := indexOf(actions)
	if err != nil {
		return nil, err
	}

	sp := &Space{
		states:    append([]string(nil), states...),
		actions:   append([]string(nil), actions...),
		stateIdx:  stateIdx,
		actionIdx: actionIdx,
	}

	return sp, nil
}

// indexOf builds an identifier → position map, rejecting empty and duplicate
// entries.
func indexOf(ids []string) (map[string]int, error) {
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		if id == "" {
			return nil, ErrDuplicateID
		}
		if _, seen := idx[id]; seen {
			return nil, ErrDuplicateID
		}
		idx[id] = i
	}

	return idx, nil
}

// NumStates returns n, the number of states.
func (sp *Space) NumStates() int { return len(sp.states) }

// NumActions returns k, the number of actions.
func (sp *Space) NumActions() int { return len(sp.actions) }

// States returns a copy of the ordered state identifiers.
func (sp *Space) States() []string { return append([]string(nil), sp.states...) }

// Actions returns a copy of the ordered action identifiers.
func (sp *Space) Actions() []string { return append([]string(nil), sp.actions...) }

// StateIndex returns the position of state s in the ordered state set.
// Errors: ErrUnknownState if s is absent.
func (sp *Space) StateIndex(s string) (int, error) {
	i, ok := sp.stateIdx[s]
	if !ok {
		return 0, ErrUnknownState
	}

	return i, nil
}

// ActionIndex returns the position of action a in the ordered action set.
// Errors: ErrUnknownAction if a is absent.
func (sp *Space) ActionIndex(a string) (int, error) {
	j, ok := sp.actionIdx[a]
	if !ok {
		return 0, ErrUnknownAction
	}

	return j, nil
}

// State returns the identifier at position i, or ErrUnknownState when i is
// out of range.
func (sp *Space) State(i int) (string, error) {
	if i < 0 || i >= len(sp.states) {
		return "", ErrUnknownState
	}

	return sp.states[i], nil
}

// Action returns the identifier at position j, or ErrUnknownAction when j is
// out of range.
func (sp *Space) Action(j int) (string, error) {
	if j < 0 || j >= len(sp.actions) {
		return "", ErrUnknownAction
	}

	return sp.actions[j], nil
}
