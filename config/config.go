// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/classica/hill"
	"github.com/katalvlaran/classica/matrix"
)

// Variable names.
const (
	EnvKey         = "HILL_KEY"
	EnvKeyInverse  = "HILL_KEY_INVERSE"
	EnvKeySize     = "HILL_KEY_SIZE"
	EnvMaxAttempts = "HILL_MAX_ATTEMPTS"
)

const (
	methodLoad      = "Load"
	methodNewCipher = "NewCipher"
)

// Config holds resolved Hill settings. Key and Inverse are nil when unset.
type Config struct {
	Key         *matrix.Dense
	Inverse     *matrix.Dense
	KeySize     int
	MaxAttempts int
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{KeySize: hill.DefaultBlockSize, MaxAttempts: hill.DefaultMaxAttempts}
}

// LookupFunc reports the value of a variable and whether it is set.
type LookupFunc func(key string) (string, bool)

// Option configures Load.
type Option func(*loader)

type loader struct {
	lookup LookupFunc
	files  []string
}

// WithEnvFiles adds .env files consulted after the environment.
func WithEnvFiles(paths ...string) Option {
	return func(l *loader) { l.files = append(l.files, paths...) }
}

// WithLookup replaces os.LookupEnv as the primary source. Panics on nil.
func WithLookup(fn LookupFunc) Option {
	if fn == nil {
		panic("config: WithLookup: lookup must be non-nil")
	}
	return func(l *loader) { l.lookup = fn }
}

// Load resolves a Config from the environment and any WithEnvFiles files.
//
// Implementation:
//   - Stage 1: read every .env file with godotenv.Read; earlier files win.
//   - Stage 2: for each variable, take the primary source, then the files.
//   - Stage 3: parse matrices with matrix.ParseJSON and integers with
//     strconv.Atoi; run Validate.
//
// Errors: ErrEnvFile, ErrMalformedKey, ErrInvalidValue.
func Load(opts ...Option) (Config, error) {
	l := loader{lookup: os.LookupEnv}
	for _, opt := range opts {
		opt(&l)
	}

	fromFiles := make(map[string]string)
	for _, path := range l.files {
		vars, err := godotenv.Read(path)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %s: %w: %w", methodLoad, path, ErrEnvFile, err)
		}
		for k, v := range vars {
			if _, seen := fromFiles[k]; !seen {
				fromFiles[k] = v
			}
		}
	}
	get := func(name string) (string, bool) {
		if v, ok := l.lookup(name); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), true
		}
		v, ok := fromFiles[name]
		v = strings.TrimSpace(v)

		return v, ok && v != ""
	}

	cfg := Default()
	var err error
	if raw, ok := get(EnvKey); ok {
		if cfg.Key, err = parseMatrix(EnvKey, raw); err != nil {
			return Config{}, fmt.Errorf("%s: %w", methodLoad, err)
		}
		cfg.KeySize = cfg.Key.Rows()
	}
	if raw, ok := get(EnvKeyInverse); ok {
		if cfg.Inverse, err = parseMatrix(EnvKeyInverse, raw); err != nil {
			return Config{}, fmt.Errorf("%s: %w", methodLoad, err)
		}
	}
	if raw, ok := get(EnvKeySize); ok {
		size, err := parsePositive(EnvKeySize, raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", methodLoad, err)
		}
		if cfg.Key != nil && size != cfg.KeySize {
			return Config{}, fmt.Errorf("%s: %s=%d but %s is %dx%d: %w",
				methodLoad, EnvKeySize, size, EnvKey, cfg.KeySize, cfg.KeySize, ErrInvalidValue)
		}
		cfg.KeySize = size
	}
	if raw, ok := get(EnvMaxAttempts); ok {
		if cfg.MaxAttempts, err = parsePositive(EnvMaxAttempts, raw); err != nil {
			return Config{}, fmt.Errorf("%s: %w", methodLoad, err)
		}
	}

	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", methodLoad, err)
	}

	return cfg, nil
}

// parseMatrix decodes a JSON square matrix.
func parseMatrix(name, raw string) (*matrix.Dense, error) {
	m, err := matrix.ParseJSON([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", name, ErrMalformedKey, err)
	}

	return m, nil
}

// parsePositive decodes an integer >= 1.
func parsePositive(name, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s=%q: %w", name, raw, ErrInvalidValue)
	}

	return n, nil
}

// Validate checks internal consistency without touching any key material
// beyond shapes. Invertibility is left to hill.New.
//
// Errors: ErrInvalidValue.
func (c Config) Validate() error {
	if c.KeySize < 1 {
		return fmt.Errorf("KeySize=%d: %w", c.KeySize, ErrInvalidValue)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("MaxAttempts=%d: %w", c.MaxAttempts, ErrInvalidValue)
	}
	if c.Inverse != nil && c.Key == nil {
		return fmt.Errorf("%s set without %s: %w", EnvKeyInverse, EnvKey, ErrInvalidValue)
	}
	if c.Key != nil && c.Key.Rows() != c.KeySize {
		return fmt.Errorf("KeySize=%d, key is %dx%d: %w", c.KeySize, c.Key.Rows(), c.Key.Cols(), ErrInvalidValue)
	}

	return nil
}

// NewCipher builds a Cipher from cfg. A nil logger keeps the cipher silent.
//
// Errors: ErrInvalidValue from Validate, plus anything hill.New or
// hill.NewRandom return (ErrNotInvertible, ErrInverseMismatch,
// ErrKeyGenerationExhausted, ...).
func NewCipher(cfg Config, logger *slog.Logger) (*hill.Cipher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewCipher, err)
	}

	opts := []hill.Option{hill.WithMaxAttempts(cfg.MaxAttempts)}
	if logger != nil {
		opts = append(opts, hill.WithLogger(logger))
	}

	var (
		c   *hill.Cipher
		err error
	)
	if cfg.Key != nil {
		c, err = hill.New(cfg.Key, append(opts, hill.WithInverse(cfg.Inverse))...)
	} else {
		c, err = hill.NewRandom(cfg.KeySize, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewCipher, err)
	}

	return c, nil
}
