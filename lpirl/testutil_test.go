package lpirl_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/binderwang/rl-experiments/mdp"
)

// Shared reference MDPs for the solver tests. Transition rows follow the
// i·k+j layout: all actions of s0, then all actions of s1, and so on.

// twoStateMDP: 2 states, 2 actions, policy {s0:b, s1:o}.
func twoStateMDP(t *testing.T) (*mdp.TransitionModel, mdp.Policy) {
	t.Helper()

	sp, err := mdp.NewSpace([]string{"s0", "s1"}, []string{"b", "o"})
	require.NoError(t, err)

	model, err := mdp.NewTransitionModel(sp, [][]float64{
		{0.4, 0.6}, // s0, b
		{0.9, 0.1}, // s0, o
		{1, 0},     // s1, b
		{1, 0},     // s1, o
	})
	require.NoError(t, err)

	return model, mdp.Policy{"s0": "b", "s1": "o"}
}

// threeStateMDP: 3 states, 2 actions, policy {s0:b, s1:o, s2:o}.
func threeStateMDP(t *testing.T) (*mdp.TransitionModel, mdp.Policy) {
	t.Helper()

	sp, err := mdp.NewSpace([]string{"s0", "s1", "s2"}, []string{"b", "o"})
	require.NoError(t, err)

	model, err := mdp.NewTransitionModel(sp, [][]float64{
		{0, 0.4, 0.6}, // s0, b
		{0, 0, 1},     // s0, o
		{0, 0, 1},     // s1, b
		{0, 0, 1},     // s1, o
		{1, 0, 0},     // s2, b
		{1, 0, 0},     // s2, o
	})
	require.NoError(t, err)

	return model, mdp.Policy{"s0": "b", "s1": "o", "s2": "o"}
}

// singleActionMDP: 2 states, 1 action — the degenerate k=1 case.
func singleActionMDP(t *testing.T) (*mdp.TransitionModel, mdp.Policy) {
	t.Helper()

	sp, err := mdp.NewSpace([]string{"s0", "s1"}, []string{"only"})
	require.NoError(t, err)

	model, err := mdp.NewTransitionModel(sp, [][]float64{
		{0.5, 0.5}, // s0, only
		{0.5, 0.5}, // s1, only
	})
	require.NoError(t, err)

	return model, mdp.Policy{"s0": "only", "s1": "only"}
}
