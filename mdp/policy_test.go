package mdp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binderwang/rl-experiments/mdp"
)

// TestPolicy_Validate covers totality and action-membership checks.
func TestPolicy_Validate(t *testing.T) {
	sp, err := mdp.NewSpace([]string{"s0", "s1"}, []string{"b", "o"})
	require.NoError(t, err)

	assert.NoError(t, mdp.Policy{"s0": "b", "s1": "o"}.Validate(sp))

	err = mdp.Policy{"s0": "b"}.Validate(sp)
	assert.ErrorIs(t, err, mdp.ErrPolicyIncomplete, "missing state entry")

	err = mdp.Policy{"s0": "b", "s1": "zap"}.Validate(sp)
	assert.ErrorIs(t, err, mdp.ErrUnknownAction, "action outside the space")

	err = mdp.Policy{"s0": "b", "s1": "o", "ghost": "b"}.Validate(sp)
	assert.ErrorIs(t, err, mdp.ErrUnknownState, "stray state entry")
}

// TestPolicy_Action verifies lookup and the incomplete sentinel.
func TestPolicy_Action(t *testing.T) {
	p := mdp.Policy{"s0": "b"}

	a, err := p.Action("s0")
	require.NoError(t, err)
	assert.Equal(t, "b", a)

	_, err = p.Action("s1")
	assert.ErrorIs(t, err, mdp.ErrPolicyIncomplete)
}
