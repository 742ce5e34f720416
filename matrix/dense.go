// SPDX-License-Identifier: MIT

// Package matrix provides core integer primitives for modular computations.
// Dense is a row-major r×c matrix of int, storing elements in a flat slice for
// cache friendliness and cheap cloning.
package matrix

import (
	"encoding/json"
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of int values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int   // number of rows and columns
	data []int // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", opNewDense, rows, cols, ErrInvalidShape)
	}

	return &Dense{r: rows, c: cols, data: make([]int, rows*cols)}, nil
}

// FromRows copies a non-empty rectangular [][]int into a new Dense.
// The input is never retained; later edits to rows do not leak into the result.
//
// Errors: ErrInvalidShape when rows is empty, a row is empty, or rows are ragged.
// Complexity: O(r*c).
func FromRows(rows [][]int) (*Dense, error) {
	if err := validateRectangular(rows); err != nil {
		return nil, fmt.Errorf("%s: %w", opFromRows, err)
	}
	r, c := len(rows), len(rows[0])
	d := &Dense{r: r, c: c, data: make([]int, r*c)}
	var i int
	for i = 0; i < r; i++ {
		copy(d.data[i*c:(i+1)*c], rows[i]) // row i lands at offset i*c
	}

	return d, nil
}

// Identity returns the n×n identity matrix.
// Errors: ErrInvalidShape when n < 1.
func Identity(n int) (*Dense, error) {
	d, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opIdentity, err)
	}
	var i int
	for i = 0; i < n; i++ {
		d.data[i*n+i] = 1
	}

	return d, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (int, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	copyData := make([]int, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// ToRows returns the matrix as a freshly allocated [][]int.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]int {
	out := make([][]int, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		row := make([]int, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String implements fmt.Stringer using the same array-of-arrays layout as JSON,
// e.g. [[3,3],[2,5]].
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	sb.WriteByte('[')
	for i = 0; i < m.r; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.c+j])
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')

	return sb.String()
}

// MarshalJSON encodes the matrix as an array of arrays of integers.
func (m *Dense) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.ToRows())
}

// UnmarshalJSON decodes an array of arrays of integers with the entry checks
// of ParseJSON. Any non-empty rectangular shape is accepted, so every matrix
// MarshalJSON emits round-trips.
func (m *Dense) UnmarshalJSON(data []byte) error {
	parsed, err := parseJSON(opUnmarshal, data, false)
	if err != nil {
		return err
	}
	*m = *parsed

	return nil
}
