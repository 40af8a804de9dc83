package lpirl_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/binderwang/rl-experiments/lpirl"
	"github.com/binderwang/rl-experiments/mdp"
)

// ringMDP builds a deterministic n-state, k-action MDP where action aⱼ in
// state sᵢ moves to state (i+j+1) mod n. Fully deterministic so benchmark
// timings are comparable across runs.
func ringMDP(b *testing.B, n, k int) (*mdp.TransitionModel, mdp.Policy) {
	b.Helper()

	states := make([]string, n)
	for i := range states {
		states[i] = fmt.Sprintf("s%d", i)
	}
	actions := make([]string, k)
	for j := range actions {
		actions[j] = fmt.Sprintf("a%d", j)
	}

	sp, err := mdp.NewSpace(states, actions)
	if err != nil {
		b.Fatal(err)
	}

	rows := make([][]float64, n*k)
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			row := make([]float64, n)
			row[(i+j+1)%n] = 1
			rows[i*k+j] = row
		}
	}
	model, err := mdp.NewTransitionModel(sp, rows)
	if err != nil {
		b.Fatal(err)
	}

	policy := make(mdp.Policy, n)
	for _, s := range states {
		policy[s] = actions[0]
	}

	return model, policy
}

// BenchmarkSolve measures the full pipeline (matrix building, assembly, LP
// solve, extraction) on growing state counts. A symmetric ring MDP can
// legitimately yield a constant reward, so the degenerate sentinel is not a
// failure here.
func BenchmarkSolve(b *testing.B) {
	for _, n := range []int{5, 10, 25} {
		model, policy := ringMDP(b, n, 4)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, err := lpirl.Solve(model, policy, lpirl.DefaultOptions())
				if err != nil && !errors.Is(err, lpirl.ErrDegenerateSolution) {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkPolicyTransition isolates the Tπ construction.
func BenchmarkPolicyTransition(b *testing.B) {
	model, policy := ringMDP(b, 50, 4)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := lpirl.PolicyTransition(model, policy); err != nil {
			b.Fatal(err)
		}
	}
}
