// SPDX-License-Identifier: MIT
// Package matrix: modular inversion through the adjugate.
//
// Purpose:
//   - Build minors, the cofactor matrix and the adjugate over Z_m.
//   - Combine the adjugate with det⁻¹ (mod m) into the modular inverse.
//
// Determinism & Performance:
//   - Cofactors cost n² determinants of (n−1)×(n−1) minors: O(n⁵) overall,
//     which is immaterial for the 2..8 range block ciphers use.

package matrix

import (
	"fmt"
)

// errInverseInvariant marks a ModInverse failure after the determinant was
// already proven coprime with the modulus. Reaching it means a bug in the
// determinant or gcd code, not bad input.
var errInverseInvariant = fmt.Errorf("%s: determinant unit check disagrees with ModInverse", opInverseMod)

// Minor returns the (n−1)×(n−1) matrix obtained by deleting row r and column c.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidShape (non-square or n < 2).
//   - ErrOutOfRange when r or c is outside [0, n).
//
// Complexity: O(n²).
func Minor(m *Dense, r, c int) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	n := m.r
	if n < 2 {
		return nil, matrixErrorf(opMinor, ErrInvalidShape)
	}
	if r < 0 || r >= n || c < 0 || c >= n {
		return nil, fmt.Errorf("%s(%d,%d): %w", opMinor, r, c, ErrOutOfRange)
	}

	res := &Dense{r: n - 1, c: n - 1, data: make([]int, 0, (n-1)*(n-1))}
	var i, j int
	for i = 0; i < n; i++ {
		if i == r {
			continue
		}
		for j = 0; j < n; j++ {
			if j == c {
				continue
			}
			res.data = append(res.data, m.data[i*n+j])
		}
	}

	return res, nil
}

// CofactorsMod returns C with C[r][c] = (−1)^(r+c) · det(Minor(m, r, c)) mod `mod`.
// A 1×1 matrix has the single cofactor 1 (the determinant of the empty minor).
//
// Errors: ErrNilMatrix, ErrInvalidShape, ErrInvalidModulus.
// Complexity: O(n⁵).
func CofactorsMod(m *Dense, mod int) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}
	if err := ValidateModulus(mod); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}

	n := m.r
	res := &Dense{r: n, c: n, data: make([]int, n*n)}
	if n == 1 {
		res.data[0] = Mod(1, mod)
		return res, nil
	}

	var r, c, det int
	for r = 0; r < n; r++ {
		for c = 0; c < n; c++ {
			minor, err := Minor(m, r, c)
			if err != nil {
				return nil, matrixErrorf(opCofactors, err)
			}
			if det, err = DetMod(minor, mod); err != nil {
				return nil, matrixErrorf(opCofactors, err)
			}
			if (r+c)%2 == 1 {
				det = -det
			}
			res.data[r*n+c] = Mod(det, mod)
		}
	}

	return res, nil
}

// AdjugateMod returns the transpose of the cofactor matrix, reduced mod `mod`.
//
// Errors: ErrNilMatrix, ErrInvalidShape, ErrInvalidModulus.
// Complexity: O(n⁵).
func AdjugateMod(m *Dense, mod int) (*Dense, error) {
	cof, err := CofactorsMod(m, mod)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	adj, err := Transpose(cof)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return adj, nil
}

// InverseMod computes the matrix M⁻¹ over Z_mod such that M·M⁻¹ ≡ I.
//
// Implementation:
//   - Stage 1: ValidateSquare, ValidateModulus.
//   - Stage 2: IsInvertible; a determinant sharing a factor with mod fails.
//   - Stage 3: det⁻¹ via ModInverse, adjugate via cofactors.
//   - Stage 4: scale every adjugate entry by det⁻¹ and reduce into [0, mod).
//
// Errors:
//   - ErrNilMatrix, ErrInvalidShape, ErrInvalidModulus (validation).
//   - ErrNotInvertible when gcd(det, mod) != 1.
//   - ErrNoModularInverse only on an internal invariant breach, wrapped with
//     an explanatory message.
//
// Complexity: O(n⁵) time, O(n²) space.
func InverseMod(m *Dense, mod int) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverseMod, err)
	}
	if err := ValidateModulus(mod); err != nil {
		return nil, matrixErrorf(opInverseMod, err)
	}

	ok, det, err := IsInvertible(m, mod)
	if err != nil {
		return nil, matrixErrorf(opInverseMod, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: det=%d mod %d: %w", opInverseMod, det, mod, ErrNotInvertible)
	}

	detInv, err := ModInverse(det, mod)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errInverseInvariant, err)
	}

	adj, err := AdjugateMod(m, mod)
	if err != nil {
		return nil, matrixErrorf(opInverseMod, err)
	}
	for idx, v := range adj.data {
		adj.data[idx] = Mod(v*detInv, mod)
	}

	return adj, nil
}
