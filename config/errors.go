// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrMalformedKey indicates HILL_KEY or HILL_KEY_INVERSE is not a valid
	// square integer matrix in JSON form. The matrix error is wrapped too.
	ErrMalformedKey = errors.New("config: malformed key matrix")

	// ErrInvalidValue indicates a numeric variable that is not a positive
	// integer, or settings that contradict each other.
	ErrInvalidValue = errors.New("config: invalid value")

	// ErrEnvFile indicates a .env file that could not be read or parsed.
	ErrEnvFile = errors.New("config: cannot read env file")
)
