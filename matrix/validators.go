// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/modulus checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and callers can still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Square).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Validate is the structural check applied to any candidate key matrix given
// as nested slices. Checks run in order: non-empty, rectangular, square.
// Entries of [][]int are integers by construction; untyped sources go through
// ParseJSON, which adds the entry check.
//
// Errors: ErrInvalidShape.
// Complexity: O(r).
func Validate(rows [][]int) error {
	if err := validateRectangular(rows); err != nil {
		return validatorErrorf("Validate", err)
	}
	if len(rows) != len(rows[0]) {
		return validatorErrorf("Validate", ErrInvalidShape)
	}

	return nil
}

// validateRectangular accepts a non-empty slice of equally long, non-empty rows.
func validateRectangular(rows [][]int) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return ErrInvalidShape
	}
	width := len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return ErrInvalidShape
		}
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrInvalidShape if not square.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrInvalidShape)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Complexity: O(1).
func ValidateVecLen(x []int, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows and both inputs are non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateModulus rejects moduli outside [MinModulus, MaxModulus].
// Complexity: O(1).
func ValidateModulus(mod int) error {
	if mod < MinModulus || mod > MaxModulus {
		return validatorErrorf("ValidateModulus", ErrInvalidModulus)
	}

	return nil
}
