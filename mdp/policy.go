package mdp

// Policy is a deterministic, stationary policy: a total mapping from every
// state of a Space to exactly one action. Determinism is structural (one
// value per key); totality is checked by Validate.
type Policy map[string]string

// Action returns the action the policy prescribes for state s.
// Errors: ErrPolicyIncomplete if the policy has no entry for s.
func (p Policy) Action(s string) (string, error) {
	a, ok := p[s]
	if !ok {
		return "", ErrPolicyIncomplete
	}

	return a, nil
}

// Validate checks that the policy is total over sp's state set and that
// every prescribed action belongs to sp's action set.
//
// Errors: ErrPolicyIncomplete on a missing state entry, ErrUnknownAction on
// an action outside the Space, ErrUnknownState on an entry whose key is not
// a state of sp.
//
// Complexity: O(n + |p|).
func (p Policy) Validate(sp *Space) error {
	if sp == nil {
		return ErrDimensionMismatch
	}
	for _, s := range sp.states {
		a, ok := p[s]
		if !ok {
			return ErrPolicyIncomplete
		}
		if _, err := sp.ActionIndex(a); err != nil {
			return err
		}
	}
	// Reject stray entries so the mapping is exactly S → A.
	for s := range p {
		if _, err := sp.StateIndex(s); err != nil {
			return err
		}
	}

	return nil
}
