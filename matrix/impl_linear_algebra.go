// SPDX-License-Identifier: MIT
// Package matrix provides exact operations on Dense matrices over the
// integers and over Z_m: determinants, products, matrix-vector products,
// transpose and residue reduction. All functions perform strict fail-fast
// validation and return fresh results; inputs are never mutated.
//
// Notes:
//   - Determinants are computed over big.Int with fraction-free Bareiss
//     elimination, so intermediate values never lose precision regardless of
//     the entry range.
//   - Modular kernels reduce after every accumulation step; with entries in
//     [0, m) the partial sums stay far below int overflow for cipher sizes.

package matrix

import (
	"fmt"
	"math/big"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Determinant returns the exact integer determinant of a square matrix.
//
// Implementation:
//   - Stage 1: ValidateSquare; copy entries into a big.Int work grid.
//   - Stage 2: Bareiss elimination. At step k every entry below and right of
//     the pivot becomes (a[i][j]*a[k][k] - a[i][k]*a[k][j]) / prev, which is
//     an exact division (Sylvester's identity). A zero pivot is replaced by
//     swapping in a lower row with a non-zero entry in column k, flipping the
//     sign; when none exists the determinant is 0.
//   - Stage 3: the last diagonal entry is the determinant (times the sign).
//
// Errors:
//   - ErrNilMatrix, ErrInvalidShape (from ValidateSquare).
//
// Determinism:
//   - Fixed k→i→j loop order and lowest-index pivot choice.
//
// Complexity:
//   - Time O(n³) big-integer operations, Space O(n²).
func Determinant(m *Dense) (*big.Int, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opDeterminant, err)
	}

	n := m.r
	a := make([][]*big.Int, n)
	var i, j, k int
	for i = 0; i < n; i++ {
		a[i] = make([]*big.Int, n)
		for j = 0; j < n; j++ {
			a[i][j] = big.NewInt(int64(m.data[i*n+j]))
		}
	}

	negate := false
	prev := big.NewInt(1)
	lhs, rhs := new(big.Int), new(big.Int)
	for k = 0; k < n-1; k++ {
		if a[k][k].Sign() == 0 {
			swap := -1
			for i = k + 1; i < n; i++ {
				if a[i][k].Sign() != 0 {
					swap = i
					break
				}
			}
			if swap < 0 {
				return new(big.Int), nil // column k is zero from row k down
			}
			a[k], a[swap] = a[swap], a[k]
			negate = !negate
		}
		for i = k + 1; i < n; i++ {
			for j = k + 1; j < n; j++ {
				lhs.Mul(a[i][j], a[k][k])
				rhs.Mul(a[i][k], a[k][j])
				lhs.Sub(lhs, rhs)
				a[i][j].Quo(lhs, prev)
			}
		}
		prev.Set(a[k][k])
	}

	det := new(big.Int).Set(a[n-1][n-1])
	if negate {
		det.Neg(det)
	}

	return det, nil
}

// DetMod returns the determinant reduced into [0, mod).
//
// Errors: ErrNilMatrix, ErrInvalidShape, ErrInvalidModulus.
// Complexity: O(n³).
func DetMod(m *Dense, mod int) (int, error) {
	if err := ValidateModulus(mod); err != nil {
		return 0, matrixErrorf(opDetMod, err)
	}
	det, err := Determinant(m)
	if err != nil {
		return 0, matrixErrorf(opDetMod, err)
	}

	// big.Int.Mod is Euclidean: the result is already non-negative.
	return int(det.Mod(det, big.NewInt(int64(mod))).Int64()), nil
}

// IsInvertible reports whether m has an inverse over Z_mod, together with
// the determinant reduced into [0, mod). The matrix is invertible exactly
// when gcd(det, mod) == 1; for mod 26 that means det is odd and not a
// multiple of 13.
//
// Errors: ErrNilMatrix, ErrInvalidShape, ErrInvalidModulus.
// Complexity: O(n³).
func IsInvertible(m *Dense, mod int) (bool, int, error) {
	det, err := DetMod(m, mod)
	if err != nil {
		return false, 0, matrixErrorf(opInvertible, err)
	}

	return GCD(det, mod) == 1, det, nil
}

// MulMod computes C = A × B with every entry reduced into [0, mod).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrInvalidModulus.
// Complexity: Time O(r*k*c), Space O(r*c).
func MulMod(a, b *Dense, mod int) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulMod, err)
	}
	if err := ValidateModulus(mod); err != nil {
		return nil, matrixErrorf(opMulMod, err)
	}

	res := &Dense{r: a.r, c: b.c, data: make([]int, a.r*b.c)}
	var i, j, k, acc int
	for i = 0; i < a.r; i++ {
		for j = 0; j < b.c; j++ {
			acc = 0
			for k = 0; k < a.c; k++ {
				acc = Mod(acc+Mod(a.data[i*a.c+k], mod)*Mod(b.data[k*b.c+j], mod), mod)
			}
			res.data[i*b.c+j] = acc
		}
	}

	return res, nil
}

// MatVecMod computes y[i] = Σⱼ m[i][j]*x[j] mod `mod` for a column vector x.
// This is the per-block step of a Hill transform.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrInvalidModulus.
// Complexity: Time O(r*c), Space O(r).
func MatVecMod(m *Dense, x []int, mod int) ([]int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVecMod, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVecMod, err)
	}
	if err := ValidateModulus(mod); err != nil {
		return nil, matrixErrorf(opMatVecMod, err)
	}

	y := make([]int, m.r)
	var i, j, base, acc int
	for i = 0; i < m.r; i++ {
		acc = 0
		base = i * m.c
		for j = 0; j < m.c; j++ {
			acc = Mod(acc+Mod(m.data[base+j], mod)*Mod(x[j], mod), mod)
		}
		y[i] = acc
	}

	return y, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Complexity: O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	res := &Dense{r: m.c, c: m.r, data: make([]int, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res, nil
}

// Reduce returns a copy of m with every entry mapped into [0, mod).
// Complexity: O(r*c).
func Reduce(m *Dense, mod int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReduce, err)
	}
	if err := ValidateModulus(mod); err != nil {
		return nil, matrixErrorf(opReduce, err)
	}

	res := m.Clone()
	for idx, v := range res.data {
		res.data[idx] = Mod(v, mod)
	}

	return res, nil
}

// Equal reports whether a and b have the same shape and entries.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for idx := range a.data {
		if a.data[idx] != b.data[idx] {
			return false
		}
	}

	return true
}
