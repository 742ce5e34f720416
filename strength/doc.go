// SPDX-License-Identifier: MIT

// Package strength estimates how hard a password is to guess.
//
// Three measures are offered, from crude to realistic:
//   - CharsetEntropy / MaxRelativeEntropy: log2(pool)·length, with the pool
//     built from the character classes actually present.
//   - MaxEntropy: log2(alphabet)·length against a fixed alphabet (95
//     printable ASCII characters by default), the theoretical ceiling.
//   - Entropy: the zxcvbn estimate, which discounts dictionary words,
//     keyboard walks, repeats and dates.
//
// Redundancy relates the realistic figure to the ceiling, 1 − H/Hmax: 0 means
// every character carries full information, values near 1 mean the password
// is mostly predictable structure.
//
// Grade maps a bit count onto the recommended thresholds:
//
//	≥ 80 bits  password used on its own
//	≥ 50 bits  with rate limiting or captcha in front
//	≥ 13 bits  with a personal hardware authenticator
//
// IsSecure applies the 80-bit rule to MaxEntropy.
package strength
