// SPDX-License-Identifier: MIT

package caesar

import (
	"fmt"
	"math"
)

// englishFrequencies holds the relative frequency of A..Z in English prose,
// summing to 1.
var englishFrequencies = [AlphabetSize]float64{
	0.08167, 0.01492, 0.02782, 0.04253, 0.12702, 0.02228, 0.02015, // A-G
	0.06094, 0.06966, 0.00153, 0.00772, 0.04025, 0.02406, 0.06749, // H-N
	0.07507, 0.01929, 0.00095, 0.05987, 0.06327, 0.09056, 0.02758, // O-U
	0.00978, 0.02360, 0.00150, 0.01974, 0.00074, // V-Z
}

// LetterCounts returns how many times each ASCII letter A..Z (either case)
// occurs in text, plus the total.
// Complexity: O(len(text)).
func LetterCounts(text string) (counts [AlphabetSize]int, total int) {
	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case ch >= 'A' && ch <= 'Z':
			counts[ch-'A']++
		case ch >= 'a' && ch <= 'z':
			counts[ch-'a']++
		default:
			continue
		}
		total++
	}

	return counts, total
}

// ChiSquared scores ciphertext against English under the assumption that it
// was encrypted with key. Lower is a better fit.
//
// Errors: ErrNoLetters when ciphertext has no ASCII letters.
// Complexity: O(len(ciphertext)).
func ChiSquared(ciphertext string, key int) (float64, error) {
	counts, total := LetterCounts(ciphertext)
	if total == 0 {
		return 0, fmt.Errorf("%s: %w", methodChiSquared, ErrNoLetters)
	}

	return chiSquared(&counts, total, normalizeKey(key)), nil
}

// chiSquared computes Σ (observed − expected)² / expected over plaintext
// letters, where plaintext letter i sits at ciphertext index i+key.
func chiSquared(counts *[AlphabetSize]int, total, key int) float64 {
	var sum, expected, diff float64
	n := float64(total)
	for i := 0; i < AlphabetSize; i++ {
		expected = englishFrequencies[i] * n
		diff = float64(counts[(i+key)%AlphabetSize]) - expected
		sum += diff * diff / expected
	}

	return sum
}

// EstimateShift returns the key in [0, 26) whose decryption of ciphertext
// best matches English letter frequencies. Ties resolve to the smaller key.
//
// Errors: ErrNoLetters when ciphertext has no ASCII letters.
// Complexity: O(len(ciphertext) + 26²).
func EstimateShift(ciphertext string) (int, error) {
	counts, total := LetterCounts(ciphertext)
	if total == 0 {
		return 0, fmt.Errorf("%s: %w", methodEstimateShift, ErrNoLetters)
	}

	best, bestScore := 0, math.Inf(1)
	for key := 0; key < AlphabetSize; key++ {
		if score := chiSquared(&counts, total, key); score < bestScore {
			best, bestScore = key, score
		}
	}

	return best, nil
}
