// SPDX-License-Identifier: MIT

package strength

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nbutton23/zxcvbn-go"
)

// Alphabet and pool sizes.
const (
	// DefaultAlphabet is the number of printable ASCII characters.
	DefaultAlphabet = 95

	poolUpper   = 26
	poolLower   = 26
	poolDigit   = 10
	poolSymbol  = 28 // CharsetEntropy symbol set, space included
	poolSpecial = 33 // MaxRelativeEntropy: ASCII punctuation and whitespace
)

// charsetSymbols is the symbol class counted by CharsetEntropy.
const charsetSymbols = "!@#$%^&*()-_=+[]{}|;:,.<>?/ "

// asciiPunctuation is every printable ASCII character that is neither a
// letter, a digit nor a space.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Method name constants for error wrapping.
const (
	methodCharsetEntropy     = "CharsetEntropy"
	methodMaxEntropy         = "MaxEntropy"
	methodMaxRelativeEntropy = "MaxRelativeEntropy"
	methodEntropy            = "Entropy"
	methodRedundancy         = "Redundancy"
	methodIsSecure           = "IsSecure"
)

// Estimator returns the guessing entropy of password in bits. userInputs
// are words known to an attacker (user name, site name) that should not
// count as randomness.
type Estimator func(password string, userInputs []string) float64

// ZXCVBN is the default Estimator, backed by zxcvbn-go.
func ZXCVBN(password string, userInputs []string) float64 {
	return zxcvbn.PasswordStrength(password, userInputs).Entropy
}

// poolEntropy is log2(pool)·runes, or 0 for an empty pool.
func poolEntropy(pool int, password string) float64 {
	if pool == 0 {
		return 0
	}

	return math.Log2(float64(pool)) * float64(utf8.RuneCountInString(password))
}

// CharsetEntropy builds the pool from the classes present in password
// (upper 26, lower 26, digits 10, the symbols of charsetSymbols 28; classes
// are not exclusive) and returns log2(pool)·length. Characters outside every
// class add length but no pool.
//
// Errors: ErrEmptyPassword.
func CharsetEntropy(password string) (float64, error) {
	if err := validatePassword(methodCharsetEntropy, password); err != nil {
		return 0, err
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		hasUpper = hasUpper || unicode.IsUpper(r)
		hasLower = hasLower || unicode.IsLower(r)
		hasDigit = hasDigit || unicode.IsDigit(r)
		hasSymbol = hasSymbol || strings.ContainsRune(charsetSymbols, r)
	}

	pool := 0
	if hasUpper {
		pool += poolUpper
	}
	if hasLower {
		pool += poolLower
	}
	if hasDigit {
		pool += poolDigit
	}
	if hasSymbol {
		pool += poolSymbol
	}

	return poolEntropy(pool, password), nil
}

// MaxEntropy returns log2(alphabet)·length, the entropy of a password of the
// same length drawn uniformly from alphabet characters. Pass DefaultAlphabet
// for printable ASCII.
//
// Errors: ErrEmptyPassword, ErrInvalidAlphabet.
func MaxEntropy(password string, alphabet int) (float64, error) {
	if err := validatePassword(methodMaxEntropy, password); err != nil {
		return 0, err
	}
	if alphabet < 1 {
		return 0, fmt.Errorf("%s(%d): %w", methodMaxEntropy, alphabet, ErrInvalidAlphabet)
	}

	return poolEntropy(alphabet, password), nil
}

// MaxRelativeEntropy is MaxEntropy with the alphabet narrowed to the classes
// present: upper 26, lower 26, digits 10, ASCII punctuation or whitespace 33.
// Each character counts toward the first class it matches, in that order. A
// password with no recognised class (e.g. "漢字") scores 0.
//
// Errors: ErrEmptyPassword.
func MaxRelativeEntropy(password string) (float64, error) {
	if err := validatePassword(methodMaxRelativeEntropy, password); err != nil {
		return 0, err
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(asciiPunctuation, r) || unicode.IsSpace(r):
			hasSpecial = true
		}
	}

	pool := 0
	if hasUpper {
		pool += poolUpper
	}
	if hasLower {
		pool += poolLower
	}
	if hasDigit {
		pool += poolDigit
	}
	if hasSpecial {
		pool += poolSpecial
	}

	return poolEntropy(pool, password), nil
}

// Entropy returns the zxcvbn guessing entropy of password in bits.
//
// Errors: ErrEmptyPassword.
func Entropy(password string, opts ...Option) (float64, error) {
	if err := validatePassword(methodEntropy, password); err != nil {
		return 0, err
	}
	cfg := newConfig(opts...)

	return cfg.estimator(password, cfg.userInputs), nil
}

// Redundancy returns 1 − H/Hmax, with H from Entropy and Hmax from
// MaxEntropy(password, DefaultAlphabet), or from MaxRelativeEntropy under
// WithRelativeMax. When Hmax is 0 the result is 1 if H is 0 too, else 0.
// The value is not clamped: an estimator more generous than the ceiling
// yields a negative redundancy.
//
// Errors: ErrEmptyPassword.
func Redundancy(password string, opts ...Option) (float64, error) {
	if err := validatePassword(methodRedundancy, password); err != nil {
		return 0, err
	}
	cfg := newConfig(opts...)

	h := cfg.estimator(password, cfg.userInputs)

	var hmax float64
	var err error
	if cfg.relativeMax {
		hmax, err = MaxRelativeEntropy(password)
	} else {
		hmax, err = MaxEntropy(password, DefaultAlphabet)
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodRedundancy, err)
	}

	if hmax == 0 {
		if h == 0 {
			return 1, nil
		}
		return 0, nil
	}

	return 1 - h/hmax, nil
}

// IsSecure reports whether MaxEntropy(password, DefaultAlphabet) reaches the
// 80-bit standalone threshold, i.e. the password has at least 13 characters.
//
// Errors: ErrEmptyPassword.
func IsSecure(password string) (bool, error) {
	if err := validatePassword(methodIsSecure, password); err != nil {
		return false, err
	}
	h, err := MaxEntropy(password, DefaultAlphabet)
	if err != nil {
		return false, fmt.Errorf("%s: %w", methodIsSecure, err)
	}

	return h >= ThresholdStandalone, nil
}
