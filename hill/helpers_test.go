// SPDX-License-Identifier: MIT
package hill_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/classica/matrix"
	"github.com/stretchr/testify/require"
)

// zeroReader yields an endless stream of zero bytes: every sampled residue
// is 0, so no candidate is ever invertible.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

// errReader fails every read.
type errReader struct{}

var errBrokenSource = errors.New("broken source")

func (errReader) Read([]byte) (int, error) { return 0, errBrokenSource }

// mustDense builds a *matrix.Dense or fails the test.
func mustDense(tb testing.TB, rows [][]int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// requireInverse asserts K·K⁻¹ ≡ I (mod 26).
func requireInverse(tb testing.TB, key, inv *matrix.Dense) {
	tb.Helper()
	prod, err := matrix.MulMod(key, inv, 26)
	require.NoError(tb, err)
	id, err := matrix.Identity(key.Rows())
	require.NoError(tb, err)
	require.Truef(tb, matrix.Equal(id, prod), "K·K⁻¹ = %s", prod)
}
