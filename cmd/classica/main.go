// SPDX-License-Identifier: MIT

// Command classica encrypts, decrypts and attacks classical ciphers from the
// command line: Hill (matrix), Caesar (shift) and Vigenère, plus a password
// entropy estimator.
//
// Hill key material is read from HILL_KEY / HILL_KEY_INVERSE / HILL_KEY_SIZE /
// HILL_MAX_ATTEMPTS, optionally through --env-file, and can be overridden
// per call with --key, --inverse, --size or --passphrase.
//
//	classica hill keygen --size 3
//	classica hill encrypt --key '[[3,3],[2,5]]' help
//	classica caesar crack "Khoor, Zruog"
//	classica entropy --json "p'tite_d0uc€ur!"
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		// ignore error as cobra itself displays it on the screen
		os.Exit(1)
	}
}
