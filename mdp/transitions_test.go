package mdp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binderwang/rl-experiments/mdp"
)

// twoStateModel is the 2-state, 2-action reference MDP used across tests;
// rows follow the i·k+j layout.
func twoStateModel(t *testing.T) *mdp.TransitionModel {
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

	return model
}

// TestNewTransitionModel_ShapeChecks verifies row-count and row-length
// validation.
func TestNewTransitionModel_ShapeChecks(t *testing.T) {
	sp, err := mdp.NewSpace([]string{"s0", "s1"}, []string{"b", "o"})
	require.NoError(t, err)

	_, err = mdp.NewTransitionModel(sp, [][]float64{{1, 0}})
	assert.ErrorIs(t, err, mdp.ErrDimensionMismatch, "too few rows")

	_, err = mdp.NewTransitionModel(sp, [][]float64{
		{1, 0}, {1, 0}, {1, 0}, {1, 0, 0},
	})
	assert.ErrorIs(t, err, mdp.ErrDimensionMismatch, "ragged row")
}

// TestNewTransitionModel_StochasticChecks verifies probability validation.
func TestNewTransitionModel_StochasticChecks(t *testing.T) {
	sp, err := mdp.NewSpace([]string{"s0", "s1"}, []string{"b"})
	require.NoError(t, err)

	_, err = mdp.NewTransitionModel(sp, [][]float64{
		{0.5, 0.6}, {1, 0},
	})
	assert.ErrorIs(t, err, mdp.ErrNotStochastic, "row sum > 1")

	_, err = mdp.NewTransitionModel(sp, [][]float64{
		{-0.1, 1.1}, {1, 0},
	})
	assert.ErrorIs(t, err, mdp.ErrNotStochastic, "negative entry")
}

// TestTransitionModel_Prob verifies oracle lookups against the raw rows.
func TestTransitionModel_Prob(t *testing.T) {
	model := twoStateModel(t)

	p, err := model.Prob("s0", "b", "s1")
	require.NoError(t, err)
	assert.Equal(t, 0.6, p)

	p, err = model.Prob("s0", "o", "s0")
	require.NoError(t, err)
	assert.Equal(t, 0.9, p)

	p, err = model.Prob("s1", "o", "s1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, p)
}

// TestTransitionModel_ProbUnknownIDs verifies the NotFound sentinels on all
// three lookup positions.
func TestTransitionModel_ProbUnknownIDs(t *testing.T) {
	model := twoStateModel(t)

	_, err := model.Prob("sX", "b", "s0")
	assert.ErrorIs(t, err, mdp.ErrUnknownState)

	_, err = model.Prob("s0", "x", "s0")
	assert.ErrorIs(t, err, mdp.ErrUnknownAction)

	_, err = model.Prob("s0", "b", "sX")
	assert.ErrorIs(t, err, mdp.ErrUnknownState)
}

// TestTransitionModel_RowFor verifies indexed row access and bounds checks.
func TestTransitionModel_RowFor(t *testing.T) {
	model := twoStateModel(t)

	row, err := model.RowFor(0, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.9, 0.1}, row)

	_, err = model.RowFor(5, 0)
	assert.ErrorIs(t, err, mdp.ErrUnknownState)

	_, err = model.RowFor(0, 5)
	assert.ErrorIs(t, err, mdp.ErrUnknownAction)
}
