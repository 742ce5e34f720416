// SPDX-License-Identifier: MIT
package hill_test

import (
	"testing"

	"github.com/katalvlaran/classica/hill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "HELLOWORLD", hill.Normalize("Hello, world!"))
	assert.Equal(t, "", hill.Normalize("1234 !?"))
	assert.Equal(t, "CAF", hill.Normalize("café"))
	assert.Equal(t, "NAVE", hill.Normalize("naïve"))
}

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		size int
		want []string
	}{
		{"empty", "", 4, []string{"XXXX"}},
		{"only punctuation", "?!, 12", 2, []string{"XX"}},
		{"short", "ABC", 4, []string{"ABCX"}},
		{"odd", "HELLO", 3, []string{"HEL", "LOX"}},
		{"exact", "HELP", 2, []string{"HE", "LP"}},
		{"mixed case with punctuation", "Hello, world!", 4, []string{"HELL", "OWOR", "LDXX"}},
		{"size one", "ab", 1, []string{"A", "B"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := hill.Split(tc.text, tc.size)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := hill.Split("abc", 0)
	require.ErrorIs(t, err, hill.ErrInvalidSize)
}

func TestEncodeDecode(t *testing.T) {
	t.Parallel()

	vec, err := hill.Encode("AZHM")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 25, 7, 12}, vec)

	s, err := hill.Decode(vec)
	require.NoError(t, err)
	assert.Equal(t, "AZHM", s)

	_, err = hill.Encode("Ab")
	require.ErrorIs(t, err, hill.ErrInvalidLetter)

	_, err = hill.Decode([]int{0, 26})
	require.ErrorIs(t, err, hill.ErrInvalidValue)
	_, err = hill.Decode([]int{-1})
	require.ErrorIs(t, err, hill.ErrInvalidValue)
}
