// SPDX-License-Identifier: MIT
// Package multiply_test: kernel correctness and cross-kernel agreement.

package multiply_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densekit/mat"
	"github.com/katalvlaran/densekit/multiply"
)

// kernel is the common shape every variant reduces to in table-driven tests.
type kernel struct {
	name string
	run  func(left, right mat.Matrix, out mat.Mutable)
}

// allKernels lists every variant with a small block size so tests with
// single-digit shapes still cross block boundaries.
func allKernels() []kernel {
	return []kernel{
		{"Naive", func(l, r mat.Matrix, o mat.Mutable) { multiply.Naive(l, r, o) }},
		{"Blocked", func(l, r mat.Matrix, o mat.Mutable) {
			multiply.Blocked(l, r, o, multiply.WithBlockSize(2))
		}},
		{"ReverseBlocked", func(l, r mat.Matrix, o mat.Mutable) {
			multiply.ReverseBlocked(l, r, o, multiply.WithBlockSize(2))
		}},
		{"Buffered", func(l, r mat.Matrix, o mat.Mutable) {
			multiply.Buffered(l, r, o, multiply.WithBlockSize(2))
		}},
		{"Parallel", func(l, r mat.Matrix, o mat.Mutable) {
			multiply.Parallel(l, r, o, multiply.WithBlockSize(2), multiply.WithWorkers(3))
		}},
	}
}

func TestKernels_SmallFixture(t *testing.T) {
	left := mat.NewDenseFromRows([][]float64{
		{1, 2},
		{3, 4},
	})
	right := mat.NewDenseFromRows([][]float64{
		{5, 6},
		{7, 8},
	})
	want := [][]float64{
		{19, 22},
		{43, 50},
	}
	for _, k := range allKernels() {
		t.Run(k.name, func(t *testing.T) {
			out := mat.NewDense(2, 2)
			k.run(left, right, out)
			for i := range want {
				for j := range want[i] {
					require.Equal(t, want[i][j], out.At(i, j))
				}
			}
		})
	}
}

func TestKernels_IdentityTimesSequence(t *testing.T) {
	id := mat.NewIdentity(3)
	a := mat.NewDenseFromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	for _, k := range allKernels() {
		t.Run(k.name, func(t *testing.T) {
			out := mat.NewDense(3, 3)
			k.run(id, a, out)
			require.True(t, mat.Equal(a, out))
		})
	}
}

// The identity is neutral on both sides: I·A = A and A·I = A.
func TestKernels_IdentityNeutral(t *testing.T) {
	a := IntFilledDense(t, 7, 5, 3)
	for _, k := range allKernels() {
		t.Run(k.name, func(t *testing.T) {
			out := mat.NewDense(7, 5)
			k.run(mat.NewIdentity(7), a, out)
			require.True(t, mat.Equal(a, out))
		})
	}
}

func TestKernels_IdentityNeutralRight(t *testing.T) {
	a := IntFilledDense(t, 5, 7, 4)
	for _, k := range allKernels() {
		t.Run(k.name, func(t *testing.T) {
			out := mat.NewDense(5, 7)
			k.run(a, mat.NewIdentity(7), out)
			require.True(t, mat.Equal(a, out))
		})
	}
}

// Every kernel agrees with Naive exactly on integer-valued operands,
// regardless of block boundaries or scheduling.
func TestKernels_AgreeWithNaive(t *testing.T) {
	shapes := []struct{ m, k, n int }{
		{1, 1, 1},
		{2, 3, 4},
		{5, 5, 5},
		{7, 4, 9}, // not a multiple of any block size in play
		{16, 16, 16},
	}
	for _, s := range shapes {
		left := IntFilledDense(t, s.m, s.k, int64(s.m))
		right := IntFilledDense(t, s.k, s.n, int64(s.n))
		want := mat.NewDense(s.m, s.n)
		multiply.Naive(left, right, want)

		for _, k := range allKernels()[1:] {
			out := mat.NewDense(s.m, s.n)
			k.run(left, right, out)
			require.True(t, mat.Equal(want, out),
				"%s disagrees with Naive on %dx%dx%d", k.name, s.m, s.k, s.n)
		}
	}
}

// On float operands the kernels may round differently; they must still agree
// within tolerance.
func TestKernels_AgreeOnFloats(t *testing.T) {
	left := RandFilledDense(t, 9, 6, 11)
	right := RandFilledDense(t, 6, 8, 12)
	want := mat.NewDense(9, 8)
	multiply.Naive(left, right, want)

	for _, k := range allKernels()[1:] {
		out := mat.NewDense(9, 8)
		k.run(left, right, out)
		require.True(t, mat.AllClose(want, out, 1e-12, 1e-12), k.name)
	}
}

// Kernels accumulate: a pre-filled destination keeps its contents.
func TestKernels_Accumulate(t *testing.T) {
	left := mat.NewDenseFromRows([][]float64{{1, 0}, {0, 1}})
	right := mat.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	for _, k := range allKernels() {
		t.Run(k.name, func(t *testing.T) {
			out := mat.NewDenseFromRows([][]float64{{100, 100}, {100, 100}})
			k.run(left, right, out)
			require.Equal(t, 101.0, out.At(0, 0))
			require.Equal(t, 102.0, out.At(0, 1))
			require.Equal(t, 103.0, out.At(1, 0))
			require.Equal(t, 104.0, out.At(1, 1))
		})
	}
}

// Kernels read operands through the Matrix contract, so views multiply
// without materialization.
func TestKernels_ThroughViews(t *testing.T) {
	base := IntFilledDense(t, 4, 4, 21)
	perm := mat.NewRowPermuted(base.Clone())
	perm.Swap(0, 3)
	materialized := mat.NewDenseCopy(perm)

	want := mat.NewDense(4, 4)
	multiply.Naive(materialized, materialized, want)

	for _, k := range allKernels() {
		out := mat.NewDense(4, 4)
		k.run(perm, hide{materialized}, out)
		require.True(t, mat.Equal(want, out), k.name)
	}
}

func TestKernels_ShapeValidation(t *testing.T) {
	left := mat.NewDense(2, 3)
	right := mat.NewDense(4, 2) // inner extents disagree
	out := mat.NewDense(2, 2)

	for _, k := range allKernels() {
		t.Run(k.name, func(t *testing.T) {
			ExpectPanicIs(t, mat.ErrNotConformable, func() { k.run(left, right, out) })
			// Conformable operands, wrong destination.
			ExpectPanicIs(t, mat.ErrShapeMismatch, func() {
				k.run(mat.NewDense(2, 4), right, mat.NewDense(3, 2))
			})
		})
	}
}

func TestOptions_Validation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on invalid block size")
		}
	}()
	multiply.WithBlockSize(0)
}

func TestOptions_WorkersValidation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on invalid worker count")
		}
	}()
	multiply.WithWorkers(-1)
}
