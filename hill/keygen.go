// SPDX-License-Identifier: MIT
// Package: hill
//
// keygen.go — random and passphrase-derived key matrices.
//
// Both generators share one rejection loop: draw n² residues, keep the
// candidate if gcd(det, 26) == 1, otherwise draw again, up to maxAttempts.
// Only the residue source differs:
//   • GenerateKey: crypto/rand (or WithRandReader) through rand.Int, unbiased.
//   • DeriveKey:   a SHAKE256 stream keyed by the passphrase, byte rejection
//     above the largest multiple of 26 keeps residues unbiased.

package hill

import (
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/katalvlaran/classica/matrix"
	"golang.org/x/crypto/sha3"
)

// Method name constants for error wrapping.
const (
	methodGenerateKey = "GenerateKey"
	methodDeriveKey   = "DeriveKey"
)

// deriveDomain separates passphrase-derived Hill keys from any other use of
// SHAKE256 over the same passphrase. The key size is appended after it.
const deriveDomain = "classica/hill/derive-key/v1"

// byteRejectBound is the largest multiple of Modulus not above 256; bytes at
// or above it are discarded so that b % 26 stays uniform.
const byteRejectBound = 256 / Modulus * Modulus

// shakeChunk is how many stream bytes DeriveKey pulls per read.
const shakeChunk = 64

// residueSource yields the next uniform residue in [0, Modulus).
type residueSource func() (int, error)

// GenerateKey returns a uniformly random invertible size×size key over Z_26.
//
// Implementation:
//   - Stage 1: validate size, resolve options.
//   - Stage 2: rejection loop (see file header) using crypto/rand.Int.
//
// Errors:
//   - ErrInvalidSize when size < 1.
//   - ErrRandomSource when the reader fails.
//   - ErrKeyGenerationExhausted after maxAttempts rejected candidates.
//
// Complexity: expected O(n³) per accepted key; worst case maxAttempts·O(n³).
func GenerateKey(size int, opts ...Option) (*matrix.Dense, error) {
	if size < 1 {
		return nil, fmt.Errorf("%s(%d): %w", methodGenerateKey, size, ErrInvalidSize)
	}
	cfg := newConfig(opts...)

	limit := big.NewInt(Modulus)
	draw := func() (int, error) {
		v, err := rand.Int(cfg.rand, limit)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrRandomSource, err)
		}
		return int(v.Int64()), nil
	}

	key, err := sampleInvertible(size, cfg, draw)
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w", methodGenerateKey, size, err)
	}

	return key, nil
}

// DeriveKey deterministically maps a passphrase to an invertible size×size
// key. The same (passphrase, size, maxAttempts) always yields the same key,
// which makes it handy for exercises where both sides share a word instead of
// a matrix. It adds no secrecy beyond that of the passphrase itself.
//
// Errors:
//   - ErrEmptyPassphrase, ErrInvalidSize.
//   - ErrKeyGenerationExhausted after maxAttempts rejected candidates.
//
// Complexity: expected O(n³) per accepted key.
func DeriveKey(passphrase string, size int, opts ...Option) (*matrix.Dense, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("%s: %w", methodDeriveKey, ErrEmptyPassphrase)
	}
	if size < 1 {
		return nil, fmt.Errorf("%s(%d): %w", methodDeriveKey, size, ErrInvalidSize)
	}
	cfg := newConfig(opts...)

	xof := sha3.NewShake256()
	_, _ = xof.Write([]byte(deriveDomain))
	_, _ = xof.Write([]byte{byte(size)})
	_, _ = xof.Write([]byte(passphrase))

	buf := make([]byte, shakeChunk)
	pos := len(buf) // force a read on first use
	draw := func() (int, error) {
		for {
			if pos == len(buf) {
				// ShakeHash.Read never fails; the stream is unbounded.
				_, _ = xof.Read(buf)
				pos = 0
			}
			b := int(buf[pos])
			pos++
			if b < byteRejectBound {
				return b % Modulus, nil
			}
		}
	}

	key, err := sampleInvertible(size, cfg, draw)
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w", methodDeriveKey, size, err)
	}

	return key, nil
}

// sampleInvertible runs the bounded generate-and-test loop.
// Complexity: attempts·(n² draws + O(n³) determinant).
func sampleInvertible(size int, cfg config, draw residueSource) (*matrix.Dense, error) {
	var attempt, i, j, v int
	for attempt = 1; attempt <= cfg.maxAttempts; attempt++ {
		candidate, err := matrix.NewDense(size, size)
		if err != nil {
			return nil, err
		}
		for i = 0; i < size; i++ {
			for j = 0; j < size; j++ {
				if v, err = draw(); err != nil {
					return nil, err
				}
				_ = candidate.Set(i, j, v) // indices are in range by construction
			}
		}

		ok, det, err := matrix.IsInvertible(candidate, Modulus)
		if err != nil {
			return nil, err
		}
		if ok {
			cfg.logger.Debug("hill: key accepted", slog.Int("size", size), slog.Int("attempts", attempt))
			return candidate, nil
		}
		cfg.logger.Debug("hill: key rejected", slog.Int("size", size), slog.Int("attempt", attempt), slog.Int("det", det))
	}

	return nil, fmt.Errorf("%d attempts: %w", cfg.maxAttempts, ErrKeyGenerationExhausted)
}
