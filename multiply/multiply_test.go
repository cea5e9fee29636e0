// SPDX-License-Identifier: MIT
// Package multiply_test: the allocating facade.

package multiply_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densekit/mat"
	"github.com/katalvlaran/densekit/multiply"
)

func TestMultiply_Facade(t *testing.T) {
	left := mat.NewDenseFromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	right := mat.NewDenseFromRows([][]float64{
		{7, 8},
		{9, 10},
		{11, 12},
	})
	out := multiply.Multiply(left, right)
	require.Equal(t, mat.RowCol{Row: 2, Col: 2}, out.Shape())
	require.Equal(t, 58.0, out.At(0, 0))
	require.Equal(t, 64.0, out.At(0, 1))
	require.Equal(t, 139.0, out.At(1, 0))
	require.Equal(t, 154.0, out.At(1, 1))
}

func TestMultiply_MatchesNaive(t *testing.T) {
	left := IntFilledDense(t, 6, 9, 5)
	right := IntFilledDense(t, 9, 4, 6)

	want := mat.NewDense(6, 4)
	multiply.Naive(left, right, want)
	require.True(t, mat.Equal(want, multiply.Multiply(left, right)))
	require.True(t, mat.Equal(want, multiply.Multiply(left, right, multiply.WithBlockSize(3))))
}

func TestMultiply_NotConformable(t *testing.T) {
	ExpectPanicIs(t, mat.ErrNotConformable, func() {
		multiply.Multiply(mat.NewDense(2, 3), mat.NewDense(2, 3))
	})
}
