package lpirl

import (
	"github.com/binderwang/rl-experiments/mdp"
)

// Solve recovers a reward function under which the given policy is optimal
// for the MDP described by model, using the LP-IRL formulation of
// Ng & Abbeel. All derived matrices are local to the call; Solve is safe for
// concurrent use on shared, immutable inputs.
//
// Contracts:
//   - model is built over a Space with n ≥ 2 states (k=1 is legal but
//     degenerates to zero policy-optimality constraints).
//   - policy is total over the Space and deterministic.
//   - opts.Gamma ∈ (0,1), opts.L1 ≥ 0, opts.Rmax > 0.
//
// On success, Result.Reward is aligned with the Space's state order, each
// entry in [0, opts.Rmax], Result.Status labels how the solution point was
// selected, and Result.Raw carries the full solver vector for diagnostics.
// On ErrDegenerateSolution the Result still carries Objective and Raw so the
// caller can pick a fallback reward.
//
// Errors: ErrNilInput, ErrBadDiscount, ErrBadL1Weight, ErrBadRewardBound,
// policy/lookup sentinels from mdp, ErrSingularResolvent, ErrInfeasible,
// ErrUnbounded, ErrSolverFailed, ErrDegenerateSolution.
//
// Complexity: O(n³) matrix work plus two simplex passes over
// 2(k−1)·n + 3n rows and at most 3n columns.
func Solve(model *mdp.TransitionModel, policy mdp.Policy, opts Options) (Result, error) {
	// Stage 1 — validation, before any allocation.
	if model == nil || policy == nil {
		return Result{}, ErrNilInput
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	space := model.Space()
	if err := policy.Validate(space); err != nil {
		return Result{}, err
	}
	n := space.NumStates()

	// Stage 2 — policy-conditioned transition matrices.
	tpi, err := PolicyTransition(model, policy)
	if err != nil {
		return Result{}, err
	}
	tnotpi, err := DeviationTransitions(model, policy)
	if err != nil {
		return Result{}, err
	}

	// Stage 3 — discounted resolvent (I−γ·Tπ)⁻¹.
	resolvent, err := discountedResolvent(tpi, opts.Gamma)
	if err != nil {
		return Result{}, err
	}

	// Stage 4 — constraint assembly, strictly ordered.
	p := newProblem(n)
	addOptimalPolicyConstraints(p, tpi, tnotpi, resolvent)
	addCostlySingleStepConstraints(p, tpi, tnotpi, resolvent)
	addRewardBoundConstraints(p, opts.Rmax)
	addL1NormConstraints(p, opts.L1)

	// Stage 5 — LP solve, then tie-breaking selection. The exact simplex
	// optimum frequently sits at the constant R ≡ 0 vertex, so a re-solve
	// over the near-optimal set picks the point whose reward spread the
	// extraction step can actually rescale.
	c, aUb, bUb := p.matrices()
	obj, x, err := solveLP(c, aUb, bUb, opts.SolverTol)
	if err != nil {
		return Result{}, err
	}

	status := StatusOptimal
	if refined, rerr := refineSolution(p, obj, opts.SolverTol); rerr == nil {
		x = refined
	} else {
		// The primary vertex satisfies the augmented system, so a refinement
		// failure is purely numerical; the vertex is still a valid optimum
		// and the extractor flags it if it normalizes to a constant.
		status = StatusVertexFallback
	}

	// Stage 6 — slice and rescale the reward block. On a degenerate
	// (constant) solution the Result still carries the diagnostics.
	reward, err := extractReward(x, n, opts.Rmax)
	if err != nil {
		return Result{Status: StatusDegenerate, Objective: obj, Raw: x}, err
	}

	return Result{Reward: reward, Status: status, Objective: obj, Raw: x}, nil
}
