// SPDX-License-Identifier: MIT
// Package: hill
//
// options.go — functional configuration for key generation and Cipher
// construction.
//
// Design:
//   • config is the single source of truth for all knobs; defaults below.
//   • newConfig applies options in order (later overrides earlier).
//   • WithX constructors panic only on nonsensical values (programmer error).
//
// Defaults:
//   • maxAttempts = DefaultMaxAttempts
//   • rand        = crypto/rand.Reader
//   • logger      = discard
//   • inverse     = nil (computed from the key)

package hill

import (
	"crypto/rand"
	"io"
	"log/slog"

	"github.com/katalvlaran/classica/matrix"
)

// Cipher constants.
const (
	// Modulus is the alphabet size; all arithmetic happens in Z_26.
	Modulus = 26

	// DefaultBlockSize is the key dimension used when none is configured.
	DefaultBlockSize = 4

	// DefaultMaxAttempts bounds rejection sampling in GenerateKey/DeriveKey.
	// About 27% of uniform 8×8 matrices are invertible mod 26, so the chance
	// of exhausting 1000 draws is negligible for every size in 1..8.
	DefaultMaxAttempts = 1000

	// PadLetter fills the final block and stands in for empty input.
	PadLetter = 'X'
)

// Internal panic messages (no magic strings).
const (
	panicMaxAttempts = "hill: WithMaxAttempts: n must be >= 1"
	panicNilReader   = "hill: WithRandReader: reader must be non-nil"
	panicNilLogger   = "hill: WithLogger: logger must be non-nil"
)

// Option configures GenerateKey, DeriveKey and the Cipher constructors.
type Option func(*config)

// config aggregates the resolved knobs. Passed by value after resolution.
type config struct {
	maxAttempts int
	rand        io.Reader
	logger      *slog.Logger
	inverse     *matrix.Dense
}

// discardLogger drops every record; libraries stay silent unless asked.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// newConfig constructs a config with defaults and applies opts in order.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		maxAttempts: DefaultMaxAttempts,
		rand:        rand.Reader,
		logger:      discardLogger,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMaxAttempts sets the rejection-sampling budget. Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic(panicMaxAttempts)
	}
	return func(c *config) { c.maxAttempts = n }
}

// WithRandReader replaces crypto/rand.Reader as the entropy source for
// GenerateKey. Meant for tests and hardware sources; key material drawn from
// a predictable reader is predictable. Panics on nil.
func WithRandReader(r io.Reader) Option {
	if r == nil {
		panic(panicNilReader)
	}
	return func(c *config) { c.rand = r }
}

// WithLogger routes debug records (attempt counts, construction, transforms)
// to l. Plaintext and key entries are never logged. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(c *config) { c.logger = l }
}

// WithInverse supplies a pre-computed inverse key. New verifies K·K⁻¹ ≡ I
// instead of running the adjugate computation. A nil inverse is ignored.
func WithInverse(inv *matrix.Dense) Option {
	return func(c *config) { c.inverse = inv }
}
