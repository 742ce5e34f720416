// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels attach context with
// fmt.Errorf("Op: %w", ErrX); callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> entry -> modulus -> dimension mismatch -> invertibility.

var (
	// ErrInvalidShape is returned when a matrix is empty, ragged or not square
	// where a square matrix is required, or when requested dimensions are < 1.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrInvalidEntry indicates that a decoded cell is not an integer
	// (fractional number, string, null, nested container).
	ErrInvalidEntry = errors.New("matrix: entry is not an integer")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., MulMod where a.Cols != b.Rows or a vector of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidModulus signals a modulus below 2; Z_1 has no units to work with.
	ErrInvalidModulus = errors.New("matrix: modulus must be >= 2")

	// ErrNotInvertible is returned when the determinant shares a common factor
	// with the modulus, so no inverse exists over Z_m.
	ErrNotInvertible = errors.New("matrix: matrix is not invertible modulo m")

	// ErrNoModularInverse is returned when gcd(a, m) != 1.
	ErrNoModularInverse = errors.New("matrix: no modular inverse")
)
