// SPDX-License-Identifier: MIT
// Package matrix: scalar arithmetic over Z_m.
//
// Purpose:
//   - Reduce arbitrary integers into the canonical residue range [0, m).
//   - Compute gcd and multiplicative inverses for determinant inversion.
//
// Notes:
//   - ModInverse uses the iterative extended Euclidean algorithm: O(log m)
//     and valid for any modulus. A linear scan over [1, m) returns the same
//     unique residue for every valid input (tests check both agree for m=26).

package matrix

import "fmt"

// GCD returns the greatest common divisor of |a| and |b|; GCD(0, 0) == 0.
// Complexity: O(log min(|a|,|b|)).
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Mod reduces a into [0, m). Go's % keeps the dividend's sign, so negative
// cofactors need the extra correction step.
// Precondition: m >= 1.
func Mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}

	return r
}

// ModInverse returns x in [0, m) with (a*x) mod m == 1.
//
// Implementation:
//   - Stage 1: validate modulus and reduce a into [0, m).
//   - Stage 2: extended Euclid tracking only the Bézout coefficient of a.
//
// Errors:
//   - ErrInvalidModulus when m < 2.
//   - ErrNoModularInverse when gcd(a, m) != 1.
//
// Complexity: Time O(log m), Space O(1).
func ModInverse(a, m int) (int, error) {
	if err := ValidateModulus(m); err != nil {
		return 0, fmt.Errorf("%s: %w", opModInverse, err)
	}

	// Invariant: oldR ≡ oldS*a (mod m) and r ≡ s*a (mod m).
	oldR, r := Mod(a, m), m
	oldS, s := 1, 0
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	if oldR != 1 {
		return 0, fmt.Errorf("%s(%d,%d): %w", opModInverse, a, m, ErrNoModularInverse)
	}

	return Mod(oldS, m), nil
}
