// SPDX-License-Identifier: MIT
package vigenere_test

import (
	"testing"

	"github.com/katalvlaran/classica/vigenere"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncrypt(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text, key, want string
	}{
		{"HELLO", "KEY", "RIJVS"},
		{"HELLO WORLD!", "KEY", "RIJVSUYVJN"},
		{"hello", "key", "RIJVS"},
		{"ATTACKATDAWN", "LEMON", "LXFOPVEFRNHR"},
		{"abc", "A", "ABC"},
		{"He, l-lo", "KEY", "RIJVS"},
		{"?!", "KEY", ""},
	}
	for _, tc := range cases {
		got, err := vigenere.Encrypt(tc.text, tc.key)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Encrypt(%q, %q)", tc.text, tc.key)
	}
}

func TestDecrypt(t *testing.T) {
	t.Parallel()

	got, err := vigenere.Decrypt("LXFOPVEFRNHR", "lemon")
	require.NoError(t, err)
	assert.Equal(t, "ATTACKATDAWN", got)

	const msg = "This is a longer test message to see how the Vigenere cipher handles it with a repeating key."
	ct, err := vigenere.Encrypt(msg, "PYTHON")
	require.NoError(t, err)
	pt, err := vigenere.Decrypt(ct, "PYTHON")
	require.NoError(t, err)
	assert.Equal(t, "THISISALONGERTESTMESSAGETOSEEHOWTHEVIGENERECIPHERHANDLESITWITHAREPEATINGKEY", pt)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	_, err := vigenere.Encrypt("", "KEY")
	require.ErrorIs(t, err, vigenere.ErrEmptyText)

	_, err = vigenere.Encrypt("HELLO", "")
	require.ErrorIs(t, err, vigenere.ErrEmptyKey)

	_, err = vigenere.Encrypt("HELLO", "K3Y!")
	require.ErrorIs(t, err, vigenere.ErrInvalidKey)

	_, err = vigenere.Decrypt("", "KEY")
	require.ErrorIs(t, err, vigenere.ErrEmptyText)

	_, err = vigenere.Decrypt("HELLO", "clé")
	require.ErrorIs(t, err, vigenere.ErrInvalidKey)
}
