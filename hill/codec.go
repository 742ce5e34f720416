// SPDX-License-Identifier: MIT

package hill

import (
	"fmt"
	"strings"
)

// Normalize keeps the ASCII letters of text and upper-cases them.
// Everything else (digits, punctuation, spaces, non-ASCII letters) is dropped:
// the cipher alphabet is exactly A–Z.
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

// Split normalizes text and cuts it into blocks of exactly blockSize letters.
// The final short block is padded with PadLetter; empty input (after
// normalization) yields a single block of PadLetter.
//
//	Split("", 4)      == ["XXXX"]
//	Split("ABC", 4)   == ["ABCX"]
//	Split("HELLO", 3) == ["HEL", "LOX"]
//
// Errors: ErrInvalidSize when blockSize < 1.
// Complexity: O(len(text)).
func Split(text string, blockSize int) ([]string, error) {
	if blockSize < 1 {
		return nil, fmt.Errorf("Split(%d): %w", blockSize, ErrInvalidSize)
	}

	letters := Normalize(text)
	if pad := (blockSize - len(letters)%blockSize) % blockSize; pad > 0 {
		letters += strings.Repeat(string(PadLetter), pad)
	}
	if letters == "" {
		letters = strings.Repeat(string(PadLetter), blockSize)
	}

	blocks := make([]string, 0, len(letters)/blockSize)
	for start := 0; start < len(letters); start += blockSize {
		blocks = append(blocks, letters[start:start+blockSize])
	}

	return blocks, nil
}

// Encode maps each letter of block to letter - 'A' (0..25).
// Errors: ErrInvalidLetter for anything outside A–Z.
// Complexity: O(len(block)).
func Encode(block string) ([]int, error) {
	vec := make([]int, len(block))
	for i := 0; i < len(block); i++ {
		ch := block[i]
		if ch < 'A' || ch > 'Z' {
			return nil, fmt.Errorf("Encode(%q) at %d: %w", block, i, ErrInvalidLetter)
		}
		vec[i] = int(ch - 'A')
	}

	return vec, nil
}

// Decode is the inverse of Encode.
// Errors: ErrInvalidValue for entries outside [0, 26).
// Complexity: O(len(vec)).
func Decode(vec []int) (string, error) {
	buf := make([]byte, len(vec))
	for i, v := range vec {
		if v < 0 || v >= Modulus {
			return "", fmt.Errorf("Decode at %d (%d): %w", i, v, ErrInvalidValue)
		}
		buf[i] = byte('A' + v)
	}

	return string(buf), nil
}
