// SPDX-License-Identifier: MIT
// Package: hill
//
// engine.go — the Cipher engine.
//
// Lifecycle:
//   • Construction validates the key, reduces it into [0, 26), and resolves
//     the inverse (computed by matrix.InverseMod, or supplied and verified).
//   • Any failure aborts construction; no partially built Cipher escapes.
//   • After construction key and inverse are never written again, so one
//     *Cipher may serve any number of goroutines without locking.

package hill

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/classica/matrix"
)

// Method name constants for error wrapping.
const (
	methodNew     = "New"
	methodEncrypt = "Encrypt"
	methodDecrypt = "Decrypt"
)

// Cipher is an immutable Hill engine owning a key matrix and its inverse.
// The zero value has no key: Encrypt and Decrypt fail with ErrMissingKey and
// ErrMissingInverseKey respectively.
type Cipher struct {
	key     *matrix.Dense // reduced into [0, Modulus)
	inverse *matrix.Dense // key·inverse ≡ I (mod Modulus)
	n       int           // block size == key dimension
	logger  *slog.Logger
}

// New builds a Cipher around an externally supplied key.
//
// Implementation:
//   - Stage 1: ValidateSquare; reduce the key into [0, 26).
//   - Stage 2: inverse = WithInverse value (verified: same size and
//     K·K⁻¹ ≡ I) or matrix.InverseMod(key, 26).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrInvalidShape (key validation).
//   - matrix.ErrNotInvertible when gcd(det, 26) != 1.
//   - ErrInverseMismatch when a supplied inverse is wrong.
//
// Complexity: O(n⁵) for the adjugate path, O(n³) with a supplied inverse.
func New(key *matrix.Dense, opts ...Option) (*Cipher, error) {
	cfg := newConfig(opts...)

	if err := matrix.ValidateSquare(key); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}
	reduced, err := matrix.Reduce(key, Modulus)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}

	inverse, err := resolveInverse(reduced, cfg.inverse)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}

	cfg.logger.Debug("hill: cipher ready",
		slog.Int("block_size", reduced.Rows()),
		slog.Bool("inverse_supplied", cfg.inverse != nil))

	return &Cipher{key: reduced, inverse: inverse, n: reduced.Rows(), logger: cfg.logger}, nil
}

// NewFromRows is New for a key given as nested slices; it runs
// matrix.Validate first so empty, ragged and non-square input is rejected
// with matrix.ErrInvalidShape.
func NewFromRows(rows [][]int, opts ...Option) (*Cipher, error) {
	if err := matrix.Validate(rows); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}
	key, err := matrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}

	return New(key, opts...)
}

// NewRandom builds a Cipher around a fresh GenerateKey(size) key.
// WithInverse is ignored: the inverse is always computed for generated keys.
func NewRandom(size int, opts ...Option) (*Cipher, error) {
	key, err := GenerateKey(size, opts...)
	if err != nil {
		return nil, err
	}

	return New(key, computedInverse(opts)...)
}

// NewFromPassphrase builds a Cipher around DeriveKey(passphrase, size).
// WithInverse is ignored, as for NewRandom.
func NewFromPassphrase(passphrase string, size int, opts ...Option) (*Cipher, error) {
	key, err := DeriveKey(passphrase, size, opts...)
	if err != nil {
		return nil, err
	}

	return New(key, computedInverse(opts)...)
}

// computedInverse appends a reset of any WithInverse option without touching
// the caller's backing array.
func computedInverse(opts []Option) []Option {
	out := make([]Option, 0, len(opts)+1)
	out = append(out, opts...)

	return append(out, WithInverse(nil))
}

// resolveInverse verifies a supplied inverse or computes one.
func resolveInverse(key, supplied *matrix.Dense) (*matrix.Dense, error) {
	if supplied == nil {
		return matrix.InverseMod(key, Modulus)
	}

	if err := matrix.ValidateSquare(supplied); err != nil {
		return nil, err
	}
	if supplied.Rows() != key.Rows() {
		return nil, fmt.Errorf("inverse is %dx%d, key is %dx%d: %w",
			supplied.Rows(), supplied.Cols(), key.Rows(), key.Cols(), ErrInverseMismatch)
	}
	inv, err := matrix.Reduce(supplied, Modulus)
	if err != nil {
		return nil, err
	}
	prod, err := matrix.MulMod(key, inv, Modulus)
	if err != nil {
		return nil, err
	}
	id, err := matrix.Identity(key.Rows())
	if err != nil {
		return nil, err
	}
	if !matrix.Equal(prod, id) {
		return nil, fmt.Errorf("K·K⁻¹ = %s: %w", prod, ErrInverseMismatch)
	}

	return inv, nil
}

// BlockSize returns the key dimension n; ciphertexts are multiples of n long.
func (c *Cipher) BlockSize() int {
	if c == nil {
		return 0
	}
	return c.n
}

// Key returns a copy of the (reduced) key matrix, or nil for the zero value.
func (c *Cipher) Key() *matrix.Dense {
	if c == nil || c.key == nil {
		return nil
	}
	return c.key.Clone()
}

// InverseKey returns a copy of the inverse key matrix, or nil for the zero value.
func (c *Cipher) InverseKey() *matrix.Dense {
	if c == nil || c.inverse == nil {
		return nil
	}
	return c.inverse.Clone()
}

// Encrypt normalizes text, pads it to a multiple of the block size and
// multiplies each block by the key. Output is upper-case A–Z only.
//
// Errors: ErrMissingKey on a zero-value Cipher; ErrBlockSizeMismatch on an
// internal codec invariant breach.
// Complexity: O(len(text)·n).
func (c *Cipher) Encrypt(text string) (string, error) {
	if c == nil || c.key == nil {
		return "", fmt.Errorf("%s: %w", methodEncrypt, ErrMissingKey)
	}
	out, err := c.transform(text, c.key)
	if err != nil {
		return "", fmt.Errorf("%s: %w", methodEncrypt, err)
	}
	c.logger.Debug("hill: encrypted", slog.Int("letters", len(out)), slog.Int("blocks", len(out)/c.n))

	return out, nil
}

// Decrypt is Encrypt with the inverse key. Decrypt(Encrypt(t)) returns the
// normalized, X-padded form of t.
//
// Errors: ErrMissingInverseKey when no inverse is set; ErrBlockSizeMismatch
// on an internal codec invariant breach.
// Complexity: O(len(text)·n).
func (c *Cipher) Decrypt(text string) (string, error) {
	if c == nil || c.inverse == nil {
		return "", fmt.Errorf("%s: %w", methodDecrypt, ErrMissingInverseKey)
	}
	out, err := c.transform(text, c.inverse)
	if err != nil {
		return "", fmt.Errorf("%s: %w", methodDecrypt, err)
	}
	c.logger.Debug("hill: decrypted", slog.Int("letters", len(out)), slog.Int("blocks", len(out)/c.n))

	return out, nil
}

// transform runs Split → Encode → MatVecMod → Decode for every block.
// Nothing is returned unless every block succeeds.
func (c *Cipher) transform(text string, m *matrix.Dense) (string, error) {
	n := m.Rows()
	blocks, err := Split(text, n)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(blocks) * n)
	for idx, block := range blocks {
		if len(block) != n {
			return "", fmt.Errorf("block %d has %d letters, want %d: %w", idx, len(block), n, ErrBlockSizeMismatch)
		}
		vec, err := Encode(block)
		if err != nil {
			return "", err
		}
		res, err := matrix.MatVecMod(m, vec, Modulus)
		if err != nil {
			return "", err
		}
		letters, err := Decode(res)
		if err != nil {
			return "", err
		}
		sb.WriteString(letters)
	}

	return sb.String(), nil
}
