// Package classica is a small toolkit of classical ciphers built around an
// exact implementation of the Hill cipher over Z_26.
//
// 🚀 What is inside?
//
//	matrix/   — integer matrices: exact Bareiss determinant, modular inverse,
//	            cofactors, adjugate, MulMod/MatVecMod, JSON ingestion
//	hill/     — Hill cipher engine, block codec, random and passphrase keys
//	caesar/   — Caesar shift, brute force, chi-squared key recovery
//	vigenere/ — Vigenère built on caesar.Shift
//	strength/ — password entropy (zxcvbn), redundancy, CNIL-style levels
//	config/   — HILL_* environment and .env loading, cipher factory
//	cmd/classica — command line front end for all of the above
//
// ✨ Guarantees
//
//   - Exact arithmetic: determinants never go through floating point.
//   - Fail-fast: every invalid key, shape or letter is a sentinel error
//     matchable with errors.Is.
//   - Immutable engines: a hill.Cipher is safe for concurrent use.
//
// ⚠️ None of these ciphers is secure against a modern attacker. Use them to
// learn, teach and play.
//
// Quick start:
//
//	c, _ := hill.NewFromRows([][]int{{3, 3}, {2, 5}})
//	ct, _ := c.Encrypt("help") // "HIAT"
//
// Installation:
//
//	go get github.com/katalvlaran/classica
package classica
