// SPDX-License-Identifier: MIT

package strength

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPassword indicates an empty password.
	ErrEmptyPassword = errors.New("strength: password is empty")

	// ErrInvalidAlphabet indicates an alphabet size below 1.
	ErrInvalidAlphabet = errors.New("strength: alphabet size must be >= 1")
)

// validatePassword is the shared entry check of every exported measure.
func validatePassword(op, password string) error {
	if password == "" {
		return fmt.Errorf("%s: %w", op, ErrEmptyPassword)
	}

	return nil
}
