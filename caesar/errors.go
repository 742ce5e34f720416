// SPDX-License-Identifier: MIT

package caesar

import "errors"

var (
	// ErrEmptyText indicates Encrypt or Decrypt was given an empty string.
	ErrEmptyText = errors.New("caesar: text is empty")

	// ErrNoLetters indicates a frequency estimate over text without letters.
	ErrNoLetters = errors.New("caesar: text contains no letters")
)
