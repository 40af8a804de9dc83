package lpirl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtractReward_Rescale verifies the min-max mapping lands exactly on
// the [0, Rmax] endpoints and ignores the auxiliary variable tail.
func TestExtractReward_Rescale(t *testing.T) {
	// Reward block [1, 3, 2] followed by auxiliary junk that must not leak.
	x := []float64{1, 3, 2, 99, -99, 7}

	r, err := extractReward(x, 3, 2)
	require.NoError(t, err)
	require.Len(t, r, 3)

	assert.Equal(t, 0.0, r[0], "minimum maps exactly to 0")
	assert.Equal(t, 2.0, r[1], "maximum maps exactly to Rmax")
	assert.InDelta(t, 1.0, r[2], 1e-12)
}

// TestExtractReward_Degenerate verifies that a constant reward block is
// surfaced as a sentinel, not a NaN-filled vector.
func TestExtractReward_Degenerate(t *testing.T) {
	_, err := extractReward([]float64{1.5, 1.5, 1.5}, 3, 10)
	assert.ErrorIs(t, err, ErrDegenerateSolution)
}

// TestExtractReward_NegativeValuesShift verifies rescaling of a block that
// sits entirely below zero.
func TestExtractReward_NegativeValuesShift(t *testing.T) {
	r, err := extractReward([]float64{-4, -2}, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r[0])
	assert.Equal(t, 10.0, r[1])
}
