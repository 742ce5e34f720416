// SPDX-License-Identifier: MIT
// Package: hill
//
// errors.go — sentinel errors for the hill package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`; matrix sentinels raised while
//     validating or inverting a key pass through unchanged.

package hill

import (
	"errors"

	"github.com/katalvlaran/classica/matrix"
)

// ErrInvalidSize indicates a block or key size below 1.
var ErrInvalidSize = errors.New("hill: size must be >= 1")

// ErrKeyGenerationExhausted indicates that rejection sampling drew the
// configured number of candidates without finding an invertible matrix.
var ErrKeyGenerationExhausted = errors.New("hill: no invertible key within attempt budget")

// ErrMissingKey is returned by Encrypt on a Cipher without key material
// (the zero value). Constructors never produce such a Cipher.
var ErrMissingKey = errors.New("hill: key matrix not set")

// ErrMissingInverseKey is returned by Decrypt when no inverse matrix is set.
var ErrMissingInverseKey = errors.New("hill: inverse key matrix not set")

// ErrBlockSizeMismatch marks an internal invariant breach: a block produced by
// the codec does not match the key dimension.
var ErrBlockSizeMismatch = errors.New("hill: block size does not match key size")

// ErrInverseMismatch indicates that a supplied inverse does not satisfy
// K·K⁻¹ ≡ I (mod 26), or has a different dimension than the key.
var ErrInverseMismatch = errors.New("hill: supplied inverse does not invert the key")

// ErrInvalidLetter indicates a rune outside A–Z handed to Encode.
var ErrInvalidLetter = errors.New("hill: letter outside A-Z")

// ErrInvalidValue indicates a vector entry outside [0, 26) handed to Decode.
var ErrInvalidValue = errors.New("hill: value outside [0,26)")

// ErrEmptyPassphrase indicates DeriveKey was called without a passphrase.
var ErrEmptyPassphrase = errors.New("hill: passphrase is empty")

// ErrRandomSource wraps a failing random reader during key generation.
var ErrRandomSource = errors.New("hill: random source failed")

// Key validation is delegated to the matrix package; these aliases let
// callers match every construction failure against the hill namespace.
var (
	ErrInvalidMatrixShape = matrix.ErrInvalidShape     // empty, ragged or non-square key
	ErrInvalidMatrixEntry = matrix.ErrInvalidEntry     // non-integer cell in decoded key
	ErrNotInvertible      = matrix.ErrNotInvertible    // gcd(det, 26) != 1
	ErrNoModularInverse   = matrix.ErrNoModularInverse // gcd(a, m) != 1
)
