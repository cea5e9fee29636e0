// SPDX-License-Identifier: MIT
// Package mat_test: compile-time/run-time extent semantics.

package mat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densekit/mat"
)

func TestDim_IsDynamic(t *testing.T) {
	require.True(t, mat.Dynamic.IsDynamic())
	require.False(t, mat.Dim(0).IsDynamic())
	require.False(t, mat.Dim(7).IsDynamic())
}

func TestRowCol_AddSub(t *testing.T) {
	a := mat.RowCol{Row: 2, Col: 3}
	b := mat.RowCol{Row: 1, Col: 5}
	require.Equal(t, mat.RowCol{Row: 3, Col: 8}, a.Add(b))
	require.Equal(t, mat.RowCol{Row: 1, Col: -2}, a.Sub(b))
}

func TestExtent_IsStatic(t *testing.T) {
	require.True(t, mat.StaticExtent(3, 4).IsStatic())
	require.False(t, mat.DynamicExtent().IsStatic())
	require.False(t, mat.Extent{Rows: 3, Cols: mat.Dynamic}.IsStatic())
}

// Compatibility is per-axis: dynamic matches anything, static must agree.
func TestExtent_Compatible(t *testing.T) {
	tests := []struct {
		name string
		a, b mat.Extent
		want bool
	}{
		{"static equal", mat.StaticExtent(2, 3), mat.StaticExtent(2, 3), true},
		{"static unequal rows", mat.StaticExtent(2, 3), mat.StaticExtent(4, 3), false},
		{"static unequal cols", mat.StaticExtent(2, 3), mat.StaticExtent(2, 5), false},
		{"dynamic vs static", mat.DynamicExtent(), mat.StaticExtent(9, 9), true},
		{"mixed axis", mat.Extent{Rows: 2, Cols: mat.Dynamic}, mat.StaticExtent(2, 7), true},
		{"mixed axis clash", mat.Extent{Rows: 2, Cols: mat.Dynamic}, mat.StaticExtent(3, 7), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.a.Compatible(tc.b))
			require.Equal(t, tc.want, tc.b.Compatible(tc.a), "Compatible must be symmetric")
		})
	}
}

func TestExtent_Conformable(t *testing.T) {
	require.True(t, mat.StaticExtent(2, 3).Conformable(mat.StaticExtent(3, 5)))
	require.False(t, mat.StaticExtent(2, 3).Conformable(mat.StaticExtent(4, 5)))
	// A dynamic inner axis conforms with anything until runtime.
	require.True(t, mat.Extent{Rows: 2, Cols: mat.Dynamic}.Conformable(mat.StaticExtent(9, 5)))
	require.True(t, mat.StaticExtent(2, 3).Conformable(mat.Extent{Rows: mat.Dynamic, Cols: 5}))
}

func TestExtent_Resolve(t *testing.T) {
	shape := mat.RowCol{Row: 4, Col: 6}

	got := mat.DynamicExtent().Resolve(shape)
	require.Equal(t, mat.StaticExtent(4, 6), got)

	got = mat.Extent{Rows: 4, Cols: mat.Dynamic}.Resolve(shape)
	require.Equal(t, mat.StaticExtent(4, 6), got)

	// A static axis that disagrees with the runtime shape is a programming
	// error and must terminate loudly.
	ExpectPanicIs(t, mat.ErrExtentMismatch, func() {
		mat.StaticExtent(4, 5).Resolve(shape)
	})
	ExpectPanicIs(t, mat.ErrExtentMismatch, func() {
		mat.Extent{Rows: 3, Cols: mat.Dynamic}.Resolve(shape)
	})
}

func TestExtentOf(t *testing.T) {
	e := mat.ExtentOf(mat.RowCol{Row: 2, Col: 9})
	require.Equal(t, mat.StaticExtent(2, 9), e)
}
