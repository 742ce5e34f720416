// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/classica/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCD(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, matrix.GCD(25, 26))
	assert.Equal(t, 13, matrix.GCD(13, 26))
	assert.Equal(t, 2, matrix.GCD(-4, 26))
	assert.Equal(t, 26, matrix.GCD(0, 26))
	assert.Equal(t, 0, matrix.GCD(0, 0))
}

func TestMod(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 25, matrix.Mod(-1, 26))
	assert.Equal(t, 0, matrix.Mod(-26, 26))
	assert.Equal(t, 1, matrix.Mod(27, 26))
	assert.Equal(t, 0, matrix.Mod(0, 26))
}

func TestModInverse(t *testing.T) {
	t.Parallel()

	inv, err := matrix.ModInverse(3, 26)
	require.NoError(t, err)
	assert.Equal(t, 9, inv)

	inv, err = matrix.ModInverse(-1, 26)
	require.NoError(t, err)
	assert.Equal(t, 25, inv)

	_, err = matrix.ModInverse(2, 4)
	require.ErrorIs(t, err, matrix.ErrNoModularInverse)

	_, err = matrix.ModInverse(13, 26)
	require.ErrorIs(t, err, matrix.ErrNoModularInverse)

	_, err = matrix.ModInverse(0, 26)
	require.ErrorIs(t, err, matrix.ErrNoModularInverse)

	_, err = matrix.ModInverse(1, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidModulus)
}

// TestModInverse_MatchesLinearScan checks extended Euclid against the
// brute-force definition for every residue of several moduli.
func TestModInverse_MatchesLinearScan(t *testing.T) {
	t.Parallel()

	for _, m := range []int{2, 7, 26, 29, 100} {
		m := m
		t.Run(fmt.Sprintf("m=%d", m), func(t *testing.T) {
			var a, x int
			for a = 0; a < m; a++ {
				want := -1
				for x = 1; x < m; x++ {
					if (a*x)%m == 1 {
						want = x
						break
					}
				}
				got, err := matrix.ModInverse(a, m)
				if want < 0 {
					require.ErrorIs(t, err, matrix.ErrNoModularInverse, "a=%d", a)
					continue
				}
				require.NoError(t, err, "a=%d", a)
				assert.Equal(t, want, got, "a=%d", a)
			}
		})
	}
}
