// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/classica/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    [][]int
		wantErr error
	}{
		{"2x2", `[[3,3],[2,5]]`, [][]int{{3, 3}, {2, 5}}, nil},
		{"whitespace and negatives", " [ [ -1, 2 ],\n [3, 40] ] ", [][]int{{-1, 2}, {3, 40}}, nil},
		{"1x1", `[[7]]`, [][]int{{7}}, nil},
		{"not json", `[[1,2],[3,`, nil, matrix.ErrInvalidShape},
		{"string", `"not a matrix"`, nil, matrix.ErrInvalidShape},
		{"flat list", `[1,2,3,4]`, nil, matrix.ErrInvalidShape},
		{"empty", `[]`, nil, matrix.ErrInvalidShape},
		{"empty rows", `[[]]`, nil, matrix.ErrInvalidShape},
		{"ragged", `[[1,2,3],[4,5]]`, nil, matrix.ErrInvalidShape},
		{"non-square", `[[1,2,3],[4,5,6]]`, nil, matrix.ErrInvalidShape},
		{"string entry", `[[1,2],[3,"a"]]`, nil, matrix.ErrInvalidEntry},
		{"fractional entry", `[[1,2],[3,4.5]]`, nil, matrix.ErrInvalidEntry},
		{"integral float literal", `[[1,2],[3,4.0]]`, nil, matrix.ErrInvalidEntry},
		{"null entry", `[[1,null],[3,4]]`, nil, matrix.ErrInvalidEntry},
		{"nested entry", `[[1,[2]],[3,4]]`, nil, matrix.ErrInvalidEntry},
		{"shape beats entry", `[[1,"a",3],[4,5]]`, nil, matrix.ErrInvalidShape},
		{"extra closing bracket", `[[3,3],[2,5]]]`, nil, matrix.ErrInvalidShape},
		{"second matrix", `[[3,3],[2,5]],[[1,0],[0,1]]`, nil, matrix.ErrInvalidShape},
		{"trailing text", `[[3,3],[2,5]] oops`, nil, matrix.ErrInvalidShape},
		{"two values", `[[3,3],[2,5]] [[1]]`, nil, matrix.ErrInvalidShape},
		{"trailing whitespace", "[[3,3],[2,5]] \n\t", [][]int{{3, 3}, {2, 5}}, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.ParseJSON([]byte(tc.input))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, m.ToRows())
		})
	}
}
