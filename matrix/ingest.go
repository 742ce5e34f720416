// SPDX-License-Identifier: MIT

package matrix

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// ParseJSON decodes a square key matrix given as a JSON array of arrays,
// e.g. `[[3,3],[2,5]]`. The input must hold exactly one JSON value: trailing
// brackets, a second array or stray text after it are rejected.
//
// Implementation:
//   - Stage 1: decode with UseNumber so integers are never routed through float64,
//     then require end of input.
//   - Stage 2: shape pass: top level and every row must be arrays, rows equal
//     in length, result square.
//   - Stage 3: entry pass: every cell must be an integral JSON number.
//
// Errors:
//   - ErrInvalidShape: not an array of arrays, empty, ragged or non-square
//     (including syntactically broken JSON and trailing data).
//   - ErrInvalidEntry: a cell is fractional, a string, null, a container, or
//     does not fit in int.
//
// Complexity: O(len(data)).
func ParseJSON(data []byte) (*Dense, error) {
	return parseJSON(opParseJSON, data, true)
}

// parseJSON implements ParseJSON; square=false accepts any non-empty
// rectangular matrix, which is what Dense.UnmarshalJSON needs.
func parseJSON(op string, data []byte, square bool) (*Dense, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", op, err, ErrInvalidShape)
	}
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, fmt.Errorf("%s: trailing data after matrix: %w", op, ErrInvalidShape)
	}

	outer, ok := raw.([]any)
	if !ok || len(outer) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidShape)
	}
	cells := make([][]any, len(outer))
	for i, r := range outer {
		row, isRow := r.([]any)
		if !isRow || len(row) == 0 || (i > 0 && len(row) != len(cells[0])) {
			return nil, fmt.Errorf("%s: row %d: %w", op, i, ErrInvalidShape)
		}
		cells[i] = row
	}
	rows, cols := len(cells), len(cells[0])
	if square && rows != cols {
		return nil, fmt.Errorf("%s: %dx%d: %w", op, rows, cols, ErrInvalidShape)
	}

	d := &Dense{r: rows, c: cols, data: make([]int, rows*cols)}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			num, isNum := cells[i][j].(json.Number)
			if !isNum {
				return nil, fmt.Errorf("%s: cell (%d,%d): %w", op, i, j, ErrInvalidEntry)
			}
			v, err := num.Int64()
			if err != nil || int64(int(v)) != v {
				return nil, fmt.Errorf("%s: cell (%d,%d)=%s: %w", op, i, j, num, ErrInvalidEntry)
			}
			d.data[i*cols+j] = int(v)
		}
	}

	return d, nil
}
