// SPDX-License-Identifier: MIT
package strength_test

import (
	"testing"

	"github.com/katalvlaran/classica/strength"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrade(t *testing.T) {
	t.Parallel()

	cases := []struct {
		bits float64
		want strength.Level
	}{
		{0, strength.LevelInsufficient},
		{12.99, strength.LevelInsufficient},
		{13, strength.LevelHardware},
		{49.9, strength.LevelHardware},
		{50, strength.LevelThrottled},
		{80, strength.LevelStandalone},
		{200, strength.LevelStandalone},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, strength.Grade(tc.bits), "%.2f bits", tc.bits)
	}

	assert.Equal(t, "standalone", strength.LevelStandalone.String())
	assert.Equal(t, "unknown", strength.Level(42).String())
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	rep, err := strength.Evaluate("p'tite_d0uc€ur!")
	require.NoError(t, err)

	assert.True(t, rep.Secure)
	assert.Equal(t, strength.LevelStandalone, rep.Level)
	assert.Greater(t, rep.MaxEntropy, strength.ThresholdStandalone)
	assert.InDelta(t, 1-rep.Entropy/rep.MaxEntropy, rep.Redundancy, 1e-9)
	assert.GreaterOrEqual(t, rep.Score, 0)
	assert.LessOrEqual(t, rep.Score, 4)
	assert.NotEmpty(t, rep.CrackTime)

	weak, err := strength.Evaluate("l0l")
	require.NoError(t, err)
	assert.False(t, weak.Secure)
	assert.Equal(t, strength.LevelHardware, weak.Level)
}
