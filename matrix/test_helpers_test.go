// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernel tests.
//   • Keep a slow but obviously correct reference (Laplace expansion) to
//     cross-check the Bareiss determinant.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/classica/matrix"
	"github.com/stretchr/testify/require"
)

// modulus used by the cipher-oriented fixtures.
const mod26 = 26

// MustFromRows builds a *Dense or fails the test (fatal on error).
func MustFromRows(tb testing.TB, rows [][]int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// randomRows fills an n×n grid with values in [lo, hi] from a seeded source.
// Deterministic for a given seed, so failures are reproducible.
func randomRows(rng *rand.Rand, n, lo, hi int) [][]int {
	rows := make([][]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]int, n)
		for j = 0; j < n; j++ {
			rows[i][j] = lo + rng.Intn(hi-lo+1)
		}
	}

	return rows
}

// laplaceDet is the textbook first-row cofactor expansion over int64.
// O(n!) time: only meant for n <= 7 in tests.
func laplaceDet(rows [][]int) int64 {
	n := len(rows)
	if n == 1 {
		return int64(rows[0][0])
	}
	var det int64
	sign := int64(1)
	var c, i, j int
	for c = 0; c < n; c++ {
		sub := make([][]int, 0, n-1)
		for i = 1; i < n; i++ {
			row := make([]int, 0, n-1)
			for j = 0; j < n; j++ {
				if j != c {
					row = append(row, rows[i][j])
				}
			}
			sub = append(sub, row)
		}
		det += sign * int64(rows[0][c]) * laplaceDet(sub)
		sign = -sign
	}

	return det
}

// randomInvertible draws seeded matrices until one is invertible mod 26.
func randomInvertible(tb testing.TB, rng *rand.Rand, n int) *matrix.Dense {
	tb.Helper()
	for attempt := 0; attempt < 10_000; attempt++ {
		m := MustFromRows(tb, randomRows(rng, n, 0, mod26-1))
		ok, _, err := matrix.IsInvertible(m, mod26)
		require.NoError(tb, err)
		if ok {
			return m
		}
	}
	tb.Fatalf("no invertible %dx%d matrix found", n, n)

	return nil
}
