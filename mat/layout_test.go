// SPDX-License-Identifier: MIT
// Package mat_test: index→offset mapping.

package mat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densekit/mat"
)

func TestNewLayout_Offsets(t *testing.T) {
	shape := mat.RowCol{Row: 3, Col: 4}

	rm := mat.NewLayout(mat.RowMajor, shape)
	require.Equal(t, mat.RowMajor, rm.Order())
	require.Equal(t, 0, rm.Offset(0, 0))
	require.Equal(t, 1, rm.Offset(0, 1))
	require.Equal(t, 4, rm.Offset(1, 0))
	require.Equal(t, 11, rm.Offset(2, 3))

	cm := mat.NewLayout(mat.ColMajor, shape)
	require.Equal(t, mat.ColMajor, cm.Order())
	require.Equal(t, 0, cm.Offset(0, 0))
	require.Equal(t, 3, cm.Offset(0, 1))
	require.Equal(t, 1, cm.Offset(1, 0))
	require.Equal(t, 11, cm.Offset(2, 3))
}

// Both orders enumerate every offset in [0, rows*cols) exactly once.
func TestLayout_Bijection(t *testing.T) {
	shape := mat.RowCol{Row: 5, Col: 7}
	for _, order := range []mat.Order{mat.RowMajor, mat.ColMajor} {
		lay := mat.NewLayout(order, shape)
		seen := make(map[int]bool, shape.Row*shape.Col)
		for i := 0; i < shape.Row; i++ {
			for j := 0; j < shape.Col; j++ {
				off := lay.Offset(i, j)
				require.GreaterOrEqual(t, off, 0)
				require.Less(t, off, shape.Row*shape.Col)
				require.False(t, seen[off], "offset %d hit twice under %v", off, order)
				seen[off] = true
			}
		}
	}
}

func TestStrides(t *testing.T) {
	require.Equal(t, []int{20, 5, 1}, mat.Strides(mat.RowMajor, 3, 4, 5))
	require.Equal(t, []int{1, 3, 12}, mat.Strides(mat.ColMajor, 3, 4, 5))
	require.Equal(t, []int{4, 1}, mat.Strides(mat.RowMajor, 3, 4))
	require.Equal(t, []int{1, 3}, mat.Strides(mat.ColMajor, 3, 4))
}

func TestOrder_String(t *testing.T) {
	require.Equal(t, "row-major", mat.RowMajor.String())
	require.Equal(t, "col-major", mat.ColMajor.String())
}
