// SPDX-License-Identifier: MIT
package hill_test

import (
	"bytes"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/katalvlaran/classica/hill"
	"github.com/katalvlaran/classica/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	key2   = [][]int{{3, 3}, {2, 5}}
	inv2   = [][]int{{15, 17}, {20, 9}}
	key3   = [][]int{{17, 17, 5}, {21, 18, 21}, {2, 2, 19}}
	inv3   = [][]int{{4, 9, 15}, {15, 17, 6}, {24, 0, 17}}
	sample = "The quick brown fox jumps over the lazy dog, 42 times!"
)

func TestCipher_KnownVectors2x2(t *testing.T) {
	t.Parallel()

	for _, withInverse := range []bool{false, true} {
		var opts []hill.Option
		if withInverse {
			opts = append(opts, hill.WithInverse(mustDense(t, inv2)))
		}
		c, err := hill.NewFromRows(key2, opts...)
		require.NoError(t, err)

		assert.Equal(t, inv2, c.InverseKey().ToRows())
		assert.Equal(t, 2, c.BlockSize())

		for _, tc := range []struct{ in, enc string }{
			{"HELP", "HIAT"},
			{"help", "HIAT"},
			{"", "IF"},
		} {
			got, err := c.Encrypt(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.enc, got, "Encrypt(%q)", tc.in)
		}

		pt, err := c.Decrypt("HIAT")
		require.NoError(t, err)
		assert.Equal(t, "HELP", pt)

		pt, err = c.Decrypt("IF")
		require.NoError(t, err)
		assert.Equal(t, "XX", pt)
	}
}

func TestCipher_KnownVectors3x3(t *testing.T) {
	t.Parallel()

	c, err := hill.NewFromRows(key3, hill.WithInverse(mustDense(t, inv3)))
	require.NoError(t, err)

	ct, err := c.Encrypt("CAT")
	require.NoError(t, err)
	assert.Equal(t, "ZZB", ct)

	pt, err := c.Decrypt("ZZB")
	require.NoError(t, err)
	assert.Equal(t, "CAT", pt)

	computed, err := hill.NewFromRows(key3)
	require.NoError(t, err)
	assert.Equal(t, inv3, computed.InverseKey().ToRows())
}

// TestCipher_RoundTrip checks decrypt(encrypt(T)) == pad(normalize(T)) for
// random keys of every practical size.
func TestCipher_RoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	texts := []string{"", "a", "HELLO", sample, strings.Repeat("attack at dawn ", 9)}
	for size := 1; size <= 8; size++ {
		c, err := hill.NewRandom(size)
		require.NoError(t, err)
		requireInverse(t, c.Key(), c.InverseKey())

		// plus one random letter string per size
		buf := make([]byte, rng.Intn(40))
		for i := range buf {
			buf[i] = byte('a' + rng.Intn(26))
		}

		for _, text := range append(texts, string(buf)) {
			ct, err := c.Encrypt(text)
			require.NoError(t, err)
			require.Zero(t, len(ct)%size, "ciphertext length must be a multiple of %d", size)
			require.Equal(t, strings.ToUpper(ct), ct)

			pt, err := c.Decrypt(ct)
			require.NoError(t, err)

			blocks, err := hill.Split(text, size)
			require.NoError(t, err)
			require.Equal(t, strings.Join(blocks, ""), pt, "size=%d text=%q", size, text)
		}
	}
}

func TestCipher_KeyIsReduced(t *testing.T) {
	t.Parallel()

	// Same key as key2, shifted by multiples of 26.
	c, err := hill.NewFromRows([][]int{{29, -23}, {2, 57}})
	require.NoError(t, err)
	assert.Equal(t, key2, c.Key().ToRows())

	ct, err := c.Encrypt("HELP")
	require.NoError(t, err)
	assert.Equal(t, "HIAT", ct)
}

func TestCipher_KeyCopiesAreIsolated(t *testing.T) {
	t.Parallel()

	c, err := hill.NewFromRows(key2)
	require.NoError(t, err)

	k := c.Key()
	require.NoError(t, k.Set(0, 0, 0))

	ct, err := c.Encrypt("HELP")
	require.NoError(t, err)
	assert.Equal(t, "HIAT", ct)
}

func TestCipher_ConstructionErrors(t *testing.T) {
	t.Parallel()

	_, err := hill.NewFromRows(nil)
	require.ErrorIs(t, err, hill.ErrInvalidMatrixShape)

	_, err = hill.NewFromRows([][]int{{1, 2, 3}, {4, 5}})
	require.ErrorIs(t, err, hill.ErrInvalidMatrixShape)

	_, err = hill.NewFromRows([][]int{{1, 2}, {2, 4}})
	require.ErrorIs(t, err, hill.ErrNotInvertible)
	require.ErrorIs(t, err, matrix.ErrNotInvertible)

	_, err = hill.New(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = hill.NewFromRows(key2, hill.WithInverse(mustDense(t, [][]int{{1, 0}, {0, 1}})))
	require.ErrorIs(t, err, hill.ErrInverseMismatch)

	_, err = hill.NewFromRows(key2, hill.WithInverse(mustDense(t, inv3)))
	require.ErrorIs(t, err, hill.ErrInverseMismatch)

	_, err = hill.NewRandom(0)
	require.ErrorIs(t, err, hill.ErrInvalidSize)

	_, err = hill.NewRandom(2, hill.WithRandReader(zeroReader{}), hill.WithMaxAttempts(3))
	require.ErrorIs(t, err, hill.ErrKeyGenerationExhausted)
}

func TestCipher_ZeroValue(t *testing.T) {
	t.Parallel()

	var c hill.Cipher
	_, err := c.Encrypt("HELP")
	require.ErrorIs(t, err, hill.ErrMissingKey)

	_, err = c.Decrypt("HELP")
	require.ErrorIs(t, err, hill.ErrMissingInverseKey)

	assert.Nil(t, c.Key())
	assert.Nil(t, c.InverseKey())
	assert.Zero(t, c.BlockSize())
}

func TestCipher_FromPassphrase(t *testing.T) {
	t.Parallel()

	a, err := hill.NewFromPassphrase("lattice", 4)
	require.NoError(t, err)
	b, err := hill.NewFromPassphrase("lattice", 4)
	require.NoError(t, err)

	ct, err := a.Encrypt(sample)
	require.NoError(t, err)
	pt, err := b.Decrypt(ct)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(pt, hill.Normalize(sample)))
}

// TestCipher_ConcurrentUse shares one engine between goroutines.
func TestCipher_ConcurrentUse(t *testing.T) {
	t.Parallel()

	c, err := hill.NewFromRows(key3)
	require.NoError(t, err)

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				ct, err := c.Encrypt("CAT")
				if err != nil {
					errs <- err
					return
				}
				if ct != "ZZB" {
					errs <- assert.AnError
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}

func TestCipher_Logging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c, err := hill.NewRandom(3, hill.WithLogger(logger))
	require.NoError(t, err)
	_, err = c.Encrypt("secret plans")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "hill: key accepted")
	assert.Contains(t, out, "hill: cipher ready")
	assert.Contains(t, out, "hill: encrypted")
	assert.NotContains(t, out, "SECRET")
}
