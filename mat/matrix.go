// SPDX-License-Identifier: MIT

// Package mat: the Matrix / Mutable capability contracts and the generic
// comparison helpers built purely on them.
//
// The contracts are intentionally minimal: anything that can report a shape
// and answer (row, col) lookups participates in arithmetic, multiplication,
// equality and printing, whether it owns storage (Dense), generates values
// by formula (Identity, Permutation) or re-indexes another matrix
// (Slice, RowPermuted, ColPermuted).
package mat

import "math"

// Matrix is the read contract shared by every backend and view.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Shape returns the resolved (rows, cols) pair.
	Shape() RowCol

	// At returns the element at (i, j).
	// Raises ErrOutOfRange on an invalid index.
	At(i, j int) float64
}

// Mutable is a Matrix whose elements can be assigned. Views implement it by
// writing through to their parent.
type Mutable interface {
	Matrix

	// Set assigns v at (i, j).
	// Raises ErrOutOfRange on an invalid index.
	Set(i, j int, v float64)
}

// Equal reports element-wise exact equality of two matrices.
// Shapes must match (raises ErrShapeMismatch otherwise): comparing matrices
// of different shapes is a programmer error under the package policy, not a
// "false" answer.
// Determinism: fixed i→j order, early exit on first difference.
// Complexity: O(r*c), Space O(1).
func Equal(a, b Matrix) bool {
	CheckSameShape("Equal", a, b)
	s := a.Shape()
	for i := 0; i < s.Row; i++ {
		for j := 0; j < s.Col; j++ {
			if a.At(i, j) != b.At(i, j) {
				return false
			}
		}
	}
	return true
}

// AllClose checks element-wise |a-b| <= atol + rtol*|b| for identical
// shapes. Negative tolerances are normalized to their absolute value.
// Use exact Equal for integer-valued data; AllClose for float results whose
// summation order may differ across kernels.
// Complexity: O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) bool {
	CheckSameShape("AllClose", a, b)
	rtol = math.Abs(rtol)
	atol = math.Abs(atol)
	s := a.Shape()
	for i := 0; i < s.Row; i++ {
		for j := 0; j < s.Col; j++ {
			diff := math.Abs(a.At(i, j) - b.At(i, j))
			if diff > atol+rtol*math.Abs(b.At(i, j)) {
				return false
			}
		}
	}
	return true
}
