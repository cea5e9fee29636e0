// SPDX-License-Identifier: MIT
// Package multiply: the allocating facade.

package multiply

import "github.com/katalvlaran/densekit/mat"

// Multiply returns the product left*right in a freshly allocated row-major
// Dense. The work runs through the Buffered kernel; tune it with
// WithBlockSize. Panics with mat.ErrNotConformable when the inner extents
// disagree.
// Complexity: O(m*n*k), Space O(m*n + block²).
func Multiply(left, right mat.Matrix, opts ...Option) *mat.Dense {
	mat.CheckConformable(opMultiply, left, right)
	out := mat.NewDense(left.Shape().Row, right.Shape().Col)
	Buffered(left, right, out, opts...)
	return out
}
