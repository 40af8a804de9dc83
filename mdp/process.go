package mdp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// MarkovProcess is the reward-free view of a finite Markov chain: an ordered
// state set together with an n×n row-stochastic transition matrix. A
// RewardProcess satisfies it by delegation, so reward-bearing processes can
// be consumed anywhere only the chain structure matters.
type MarkovProcess interface {
	// States returns the ordered state identifiers.
	States() []string
	// Transition returns the n×n chain transition matrix (read-only).
	Transition() *mat.Dense
}

// RewardProcess is a finite Markov reward process <S, P, R, γ>: the chain a
// fixed policy induces on an MDP, annotated with a per-state reward and a
// discount factor. Immutable after construction.
type RewardProcess struct {
	states []string
	trans  *mat.Dense // n×n, row-stochastic
	reward []float64  // aligned with states
	gamma  float64
}

var _ MarkovProcess = (*RewardProcess)(nil)

// NewRewardProcess validates and assembles a RewardProcess.
//
// Contracts:
//   - trans is n×n with n == len(states), each row summing to 1 within
//     tolerance.
//   - len(reward) == n, gamma ∈ (0,1).
//
// Errors: ErrDimensionMismatch, ErrNotStochastic, ErrBadDiscount,
// ErrDuplicateID.
//
// Complexity: O(n²).
func NewRewardProcess(states []string, trans *mat.Dense, reward []float64, gamma float64) (*RewardProcess, error) {
	n := len(states)
	if n < 1 || trans == nil || len(reward) != n {
		return nil, ErrDimensionMismatch
	}
	if _, err := indexOf(states); err != nil {
		return nil, err
	}
	r, c := trans.Dims()
	if r != n || c != n {
		return nil, ErrDimensionMismatch
	}
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			sum += trans.At(i, j)
		}
		if diff := sum - 1; diff > stochasticTol || diff < -stochasticTol {
			return nil, ErrNotStochastic
		}
	}
	if gamma <= 0 || gamma >= 1 {
		return nil, ErrBadDiscount
	}

	p := &RewardProcess{
		states: append([]string(nil), states...),
		trans:  mat.DenseCopyOf(trans),
		reward: append([]float64(nil), reward...),
		gamma:  gamma,
	}

	return p, nil
}

// States returns the ordered state identifiers.
func (p *RewardProcess) States() []string { return append([]string(nil), p.states...) }

// Transition returns the chain transition matrix. Callers must treat it as
// read-only.
func (p *RewardProcess) Transition() *mat.Dense { return p.trans }

// Discount returns γ.
func (p *RewardProcess) Discount() float64 { return p.gamma }

// RewardVector returns a copy of the per-state reward, aligned with States.
func (p *RewardProcess) RewardVector() []float64 { return append([]float64(nil), p.reward...) }

// ExpectedReward returns the reward attached to state s.
// Errors: ErrUnknownState if s is not a state of the process.
func (p *RewardProcess) ExpectedReward(s string) (float64, error) {
	for i, id := range p.states {
		if id == s {
			return p.reward[i], nil
		}
	}

	return 0, ErrUnknownState
}

// SolveBellman computes the exact state values v = (I − γP)⁻¹ R. Feasible
// only for small processes; larger ones should use iterative methods.
//
// Errors: ErrSingularProcess if (I−γP) cannot be inverted (γ=1 is already
// rejected at construction).
//
// Complexity: O(n³).
func (p *RewardProcess) SolveBellman() ([]float64, error) {
	n := len(p.states)

	// I − γP
	a := mat.NewDense(n, n, nil)
	a.Scale(-p.gamma, p.trans)
	for i := 0; i < n; i++ {
		a.Set(i, i, a.At(i, i)+1)
	}

	var inv mat.Dense
	if err := inv.Inverse(a); err != nil {
		// A finite condition number is ill-conditioning with a usable
		// inverse; an infinite one is exact singularity.
		cond, near := err.(mat.Condition)
		if !near || math.IsInf(float64(cond), 1) {
			return nil, fmt.Errorf("mdp: solving Bellman equation with γ=%v: %w: %v", p.gamma, ErrSingularProcess, err)
		}
	}

	var v mat.VecDense
	v.MulVec(&inv, mat.NewVecDense(n, p.reward))

	out := make([]float64, n)
	copy(out, v.RawVector().Data)

	return out, nil
}

// QValues computes the n×k action-value matrix for a known state reward and
// state value vector over the full MDP transition model:
//
//	Q(sᵢ, aⱼ) = R(sᵢ) + γ · Σ_{s'} P(s'|sᵢ,aⱼ) · v(s')
//
// Rows follow the Space's state order, columns its action order. This is the
// standard check that a policy is a best response: π is optimal for R iff
// Q(s, π(s)) ≥ Q(s, a) for every state s and action a.
//
// Errors: ErrDimensionMismatch when reward or value do not align with the
// model's Space, ErrBadDiscount for γ outside (0,1).
//
// Complexity: O(n²·k).
func QValues(model *TransitionModel, reward, value []float64, gamma float64) (*mat.Dense, error) {
	if model == nil {
		return nil, ErrDimensionMismatch
	}
	n, k := model.space.NumStates(), model.space.NumActions()
	if len(reward) != n || len(value) != n {
		return nil, ErrDimensionMismatch
	}
	if gamma <= 0 || gamma >= 1 {
		return nil, ErrBadDiscount
	}

	q := mat.NewDense(n, k, nil)
	for si := 0; si < n; si++ {
		for ai := 0; ai < k; ai++ {
			var exp float64
			row := model.probs.RawRowView(si*k + ai)
			for sj, p := range row {
				exp += p * value[sj]
			}
			q.Set(si, ai, reward[si]+gamma*exp)
		}
	}

	return q, nil
}
