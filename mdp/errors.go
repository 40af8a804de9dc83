package mdp

import "errors"

var (
	// ErrUnknownState indicates a state identifier absent from the Space.
	ErrUnknownState = errors.New("mdp: unknown state")

	// ErrUnknownAction indicates an action identifier absent from the Space.
	ErrUnknownAction = errors.New("mdp: unknown action")

	// ErrDimensionMismatch indicates input of the wrong shape: too few
	// states/actions, a transition matrix of the wrong size, or a reward
	// vector that does not align with the state set.
	ErrDimensionMismatch = errors.New("mdp: dimension mismatch")

	// ErrDuplicateID indicates a repeated or empty state/action identifier.
	ErrDuplicateID = errors.New("mdp: duplicate or empty identifier")

	// ErrNotStochastic indicates a transition row that is not a probability
	// distribution: an entry outside [0,1], NaN/Inf, or a row sum ≠ 1
	// within tolerance.
	ErrNotStochastic = errors.New("mdp: transition row is not stochastic")

	// ErrPolicyIncomplete indicates a policy that does not map every state
	// of the Space to a known action.
	ErrPolicyIncomplete = errors.New("mdp: policy is not total over the state set")

	// ErrBadDiscount indicates a discount factor outside (0,1). γ=1 makes
	// (I−γP) singular, so it is rejected before any inversion is attempted.
	ErrBadDiscount = errors.New("mdp: discount factor must lie in (0,1)")

	// ErrSingularProcess indicates that (I−γP) could not be inverted while
	// solving the Bellman equation.
	ErrSingularProcess = errors.New("mdp: (I-γP) is singular")
)
