// SPDX-License-Identifier: MIT

// Package config resolves Hill cipher settings from the environment and
// optional .env files, and turns them into a ready *hill.Cipher.
//
// Variables:
//
//	HILL_KEY           key matrix as a JSON array of arrays, e.g. [[3,3],[2,5]]
//	HILL_KEY_INVERSE   optional inverse, same format; verified against the key
//	HILL_KEY_SIZE      block size for a generated key (default 4)
//	HILL_MAX_ATTEMPTS  rejection-sampling budget (default 1000)
//
// Precedence: the process environment (or the WithLookup source) wins over
// .env files; among files the first one listed wins. Files never modify the
// process environment.
//
// NewCipher is the single validating factory: a configured key goes through
// hill.New (with the inverse when present), otherwise a fresh key of KeySize
// is generated.
package config
