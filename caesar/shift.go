// SPDX-License-Identifier: MIT

package caesar

import (
	"fmt"
	"strings"
)

// AlphabetSize is the number of letters a key is reduced by.
const AlphabetSize = 26

// Method name constants for error wrapping.
const (
	methodEncrypt       = "Encrypt"
	methodDecrypt       = "Decrypt"
	methodEstimateShift = "EstimateShift"
	methodChiSquared    = "ChiSquared"
)

// normalizeKey maps any int onto [0, 26).
func normalizeKey(key int) int {
	return ((key % AlphabetSize) + AlphabetSize) % AlphabetSize
}

// Shift moves every ASCII letter of text key positions forward in the
// alphabet, wrapping around and preserving case. Other bytes, including
// non-ASCII runes, are copied unchanged.
// Complexity: O(len(text)).
func Shift(text string, key int) string {
	k := byte(normalizeKey(key))
	buf := []byte(text)
	for i, ch := range buf {
		switch {
		case ch >= 'A' && ch <= 'Z':
			buf[i] = 'A' + (ch-'A'+k)%AlphabetSize
		case ch >= 'a' && ch <= 'z':
			buf[i] = 'a' + (ch-'a'+k)%AlphabetSize
		}
	}

	return string(buf)
}

// Normalize keeps the ASCII letters of text, upper-cased. It is the
// message-level normalization shared by Encrypt, Decrypt, BruteForce and the
// vigenere package.
// Complexity: O(len(text)).
func Normalize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case ch >= 'A' && ch <= 'Z':
			sb.WriteByte(ch)
		case ch >= 'a' && ch <= 'z':
			sb.WriteByte(ch - 'a' + 'A')
		}
	}

	return sb.String()
}

// Encrypt upper-cases text, drops everything that is not an ASCII letter and
// shifts the rest by key. Text made only of punctuation encrypts to "".
//
// Errors: ErrEmptyText when text == "".
// Complexity: O(len(text)).
func Encrypt(text string, key int) (string, error) {
	if text == "" {
		return "", fmt.Errorf("%s: %w", methodEncrypt, ErrEmptyText)
	}

	return Shift(Normalize(text), key), nil
}

// Decrypt is Encrypt with the opposite key.
//
// Errors: ErrEmptyText when text == "".
// Complexity: O(len(text)).
func Decrypt(text string, key int) (string, error) {
	if text == "" {
		return "", fmt.Errorf("%s: %w", methodDecrypt, ErrEmptyText)
	}

	return Shift(Normalize(text), -key), nil
}

// BruteForce returns the 25 candidate plaintexts for keys 1..25, in key
// order: candidate i was produced by Decrypt(ciphertext, i+1).
// Complexity: O(25·len(ciphertext)).
func BruteForce(ciphertext string) []string {
	norm := Normalize(ciphertext)
	out := make([]string, 0, AlphabetSize-1)
	for key := 1; key < AlphabetSize; key++ {
		out = append(out, Shift(norm, -key))
	}

	return out
}
