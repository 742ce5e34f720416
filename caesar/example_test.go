// SPDX-License-Identifier: MIT
package caesar_test

import (
	"fmt"

	"github.com/katalvlaran/classica/caesar"
)

func ExampleShift() {
	fmt.Println(caesar.Shift("Hello, World!", 3))

	// Output:
	// Khoor, Zruog!
}

// ExampleEstimateShift recovers the key from ciphertext alone.
func ExampleEstimateShift() {
	ct := caesar.Shift("It was the best of times, it was the worst of times, "+
		"it was the age of wisdom, it was the age of foolishness", 7)
	key, _ := caesar.EstimateShift(ct)
	pt, _ := caesar.Decrypt(ct, key)
	fmt.Println(key, pt[:14])

	// Output:
	// 7 ITWASTHEBESTOF
}
