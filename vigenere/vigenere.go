// SPDX-License-Identifier: MIT

// Package vigenere implements the Vigenère polyalphabetic cipher as a chain
// of Caesar shifts, one per letter, with the shift taken from the repeating
// key (A=0 … Z=25).
//
// Input goes through caesar.Normalize first: non-letters are dropped and the
// result is upper-case, so the key only advances on letters.
//
//	Encrypt("HELLO WORLD!", "KEY") == "RIJVSUYVJN"
package vigenere

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/classica/caesar"
)

// Sentinel errors.
var (
	// ErrEmptyText indicates an empty message.
	ErrEmptyText = errors.New("vigenere: text is empty")

	// ErrEmptyKey indicates an empty key.
	ErrEmptyKey = errors.New("vigenere: key is empty")

	// ErrInvalidKey indicates a key with a character outside A–Z/a–z.
	ErrInvalidKey = errors.New("vigenere: key must contain only letters")
)

// Method name constants for error wrapping.
const (
	methodEncrypt = "Encrypt"
	methodDecrypt = "Decrypt"
)

// Encrypt shifts the i-th letter of text by the (i mod len(key))-th key letter.
//
// Errors: ErrEmptyText, ErrEmptyKey, ErrInvalidKey.
// Complexity: O(len(text) + len(key)).
func Encrypt(text, key string) (string, error) {
	out, err := apply(text, key, 1)
	if err != nil {
		return "", fmt.Errorf("%s: %w", methodEncrypt, err)
	}

	return out, nil
}

// Decrypt reverses Encrypt. The result is the normalized plaintext.
//
// Errors: ErrEmptyText, ErrEmptyKey, ErrInvalidKey.
// Complexity: O(len(text) + len(key)).
func Decrypt(text, key string) (string, error) {
	out, err := apply(text, key, -1)
	if err != nil {
		return "", fmt.Errorf("%s: %w", methodDecrypt, err)
	}

	return out, nil
}

// shifts validates key and converts it to per-position shift amounts.
func shifts(key string) ([]int, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	out := make([]int, len(key))
	for i := 0; i < len(key); i++ {
		ch := key[i]
		switch {
		case ch >= 'A' && ch <= 'Z':
			out[i] = int(ch - 'A')
		case ch >= 'a' && ch <= 'z':
			out[i] = int(ch - 'a')
		default:
			return nil, fmt.Errorf("%q at %d: %w", key, i, ErrInvalidKey)
		}
	}

	return out, nil
}

// apply runs the cipher in direction dir (+1 encrypt, −1 decrypt).
func apply(text, key string, dir int) (string, error) {
	if text == "" {
		return "", ErrEmptyText
	}
	ks, err := shifts(key)
	if err != nil {
		return "", err
	}

	letters := caesar.Normalize(text)
	var sb strings.Builder
	sb.Grow(len(letters))
	for i := 0; i < len(letters); i++ {
		sb.WriteString(caesar.Shift(letters[i:i+1], dir*ks[i%len(ks)]))
	}

	return sb.String(), nil
}
