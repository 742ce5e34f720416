// SPDX-License-Identifier: MIT

// Package caesar implements the Caesar shift over the ASCII Latin alphabet
// together with the two classic attacks on it: exhaustive search and
// letter-frequency analysis.
//
// Two layers are exposed:
//   - Shift is the raw substitution: letters move by key positions keeping
//     their case, everything else passes through untouched. Vigenère builds
//     on it one letter at a time.
//   - Encrypt/Decrypt are the message-level forms: they reject empty input,
//     drop non-letters and emit upper-case A–Z only, the same normalization
//     the Hill cipher applies.
//
// Keys are reduced modulo 26, so negative and large keys are accepted:
//
//	Shift("Hello, World!", 3)  == "Khoor, Zruog!"
//	Encrypt("HELLO", -3)       == "EBIIL"
//	Encrypt("HELLO", 29)       == "KHOOR"
//
// EstimateShift scores all 26 candidate keys with a chi-squared statistic
// against English letter frequencies and returns the best fit. A few hundred
// letters of ordinary prose are usually enough; it works for French text as
// well, since the dominant letters coincide.
package caesar
