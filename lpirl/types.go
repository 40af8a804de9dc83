package lpirl

import "errors"

var (
	// ErrNilInput indicates a nil space, transition model or policy.
	ErrNilInput = errors.New("lpirl: nil input")

	// ErrBadDiscount indicates γ outside (0,1). γ=1 would make (I−γ·Tπ)
	// singular, so it is rejected before any inversion is attempted.
	ErrBadDiscount = errors.New("lpirl: discount factor must lie in (0,1)")

	// ErrBadL1Weight indicates a negative L1 regularization weight.
	ErrBadL1Weight = errors.New("lpirl: l1 weight must be non-negative")

	// ErrBadRewardBound indicates a non-positive Rmax.
	ErrBadRewardBound = errors.New("lpirl: Rmax must be positive")

	// ErrSingularResolvent indicates that (I−γ·Tπ) is not invertible, e.g.
	// Tπ has an eigenvalue of 1/γ.
	ErrSingularResolvent = errors.New("lpirl: (I-γ·Tπ) is singular")

	// ErrInfeasible indicates the assembled LP has no feasible point. This
	// can legitimately occur when the hyperparameters are contradictory
	// (e.g. Rmax too small for a feasible margin); the caller should adjust
	// γ, l1 or Rmax and re-invoke — retrying unchanged inputs cannot help.
	ErrInfeasible = errors.New("lpirl: linear program is infeasible")

	// ErrUnbounded indicates the LP objective is unbounded below. The Rmax
	// rows should prevent this; seeing it means a constraint-assembly
	// defect.
	ErrUnbounded = errors.New("lpirl: linear program is unbounded")

	// ErrSolverFailed indicates the LP backend failed for a reason other
	// than infeasibility or unboundedness (ill-conditioning, no progress).
	ErrSolverFailed = errors.New("lpirl: LP solver failed")

	// ErrDegenerateSolution indicates the LP returned a constant reward
	// vector, so min-max normalization would divide by zero. The raw
	// solution is still reported; the caller decides the fallback (all-zero
	// or all-Rmax/2 are common choices).
	ErrDegenerateSolution = errors.New("lpirl: degenerate constant reward solution")
)

// Default hyperparameters, mirroring the reference formulation.
const (
	// DefaultGamma is the default discount factor.
	DefaultGamma = 0.9

	// DefaultL1 is the default L1 regularization weight.
	DefaultL1 = 10.0

	// DefaultRmax is the default reward upper bound.
	DefaultRmax = 10.0

	// DefaultSolverTol is the tolerance passed to the simplex backend.
	DefaultSolverTol = 1e-10
)

// Options configures one Solve invocation.
//
// Fields:
//   - Gamma     — discount factor γ ∈ (0,1).
//   - L1        — weight of the Σ|Rᵢ| regularization term, ≥ 0.
//   - Rmax      — per-state reward upper bound, > 0. The recovered reward is
//     rescaled into [0, Rmax].
//   - SolverTol — numeric tolerance for the LP backend.
type Options struct {
	Gamma     float64
	L1        float64
	Rmax      float64
	SolverTol float64
}

// DefaultOptions returns the reference hyperparameters.
func DefaultOptions() Options {
	return Options{
		Gamma:     DefaultGamma,
		L1:        DefaultL1,
		Rmax:      DefaultRmax,
		SolverTol: DefaultSolverTol,
	}
}

// Status labels how the solution point in a Result was selected.
type Status string

const (
	// StatusOptimal marks a reward extracted from the tie-broken
	// near-optimal point.
	StatusOptimal Status = "optimal"

	// StatusVertexFallback marks a fallback to the plain simplex vertex
	// after the tie-breaking re-solve failed. The vertex is still a valid
	// optimum but may normalize to a constant.
	StatusVertexFallback Status = "vertex-fallback"

	// StatusDegenerate accompanies ErrDegenerateSolution: the selected point
	// is constant across the reward block.
	StatusDegenerate Status = "degenerate"
)

// Result is the outcome of a Solve.
type Result struct {
	// Reward is the recovered reward vector, aligned with the Space's state
	// order, min-max rescaled into [0, Rmax]. Nil when Solve returned
	// ErrDegenerateSolution.
	Reward []float64

	// Status labels how the solution point was selected.
	Status Status

	// Objective is the optimal value of the primary LP objective c·x; the
	// tie-breaking re-solve stays within tolerance of it.
	Objective float64

	// Raw is the full, unnormalized LP solution across all variable blocks
	// (reward, margin, abs-value). Kept for diagnostics; only Raw[0:n] is
	// semantically meaningful.
	Raw []float64
}

// validateOptions rejects inconsistent hyperparameters before any matrix
// work. Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.Gamma <= 0 || opts.Gamma >= 1 {
		return ErrBadDiscount
	}
	if opts.L1 < 0 {
		return ErrBadL1Weight
	}
	if opts.Rmax <= 0 {
		return ErrBadRewardBound
	}

	return nil
}
