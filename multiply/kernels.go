// SPDX-License-Identifier: MIT
// Package multiply: the loop-order kernels (naive, blocked, reverse-blocked).
//
// Determinism:
//   - Every kernel uses fixed loop orders; for a given kernel and inputs the
//     result is identical across runs. Different kernels accumulate in
//     different orders, which is visible only in float rounding.

package multiply

import "github.com/katalvlaran/densekit/mat"

// Operation name constants for unified panic diagnostics.
const (
	opNaive          = "multiply.Naive"
	opBlocked        = "multiply.Blocked"
	opReverseBlocked = "multiply.ReverseBlocked"
	opBuffered       = "multiply.Buffered"
	opParallel       = "multiply.Parallel"
	opMultiply       = "multiply.Multiply"
)

// checkOperands validates the shared kernel contract: left (m×k) and right
// (k×n) conformable, out exactly m×n.
// Raises mat.ErrNotConformable / mat.ErrShapeMismatch on violation.
func checkOperands(op string, left, right mat.Matrix, out mat.Mutable) {
	mat.CheckConformable(op, left, right)
	mat.CheckShape(op, out,
		mat.RowCol{Row: left.Shape().Row, Col: right.Shape().Col})
}

// Naive accumulates left*right into out with the i,j,k triple loop.
// The correctness baseline the other kernels are tested against.
// Complexity: O(m*n*k), Space O(1).
func Naive(left, right mat.Matrix, out mat.Mutable) {
	checkOperands(opNaive, left, right, out)
	rows, inner, cols := left.Shape().Row, left.Shape().Col, right.Shape().Col
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			acc := out.At(i, j)
			for k := 0; k < inner; k++ {
				acc += left.At(i, k) * right.At(k, j)
			}
			out.Set(i, j, acc)
		}
	}
}

// Blocked accumulates left*right into out iterating in block×block×block
// tiles (i-block outermost) to improve cache locality. Block edge defaults
// to DefaultBlockSize; override with WithBlockSize.
// Complexity: O(m*n*k), Space O(1).
func Blocked(left, right mat.Matrix, out mat.Mutable, opts ...Option) {
	checkOperands(opBlocked, left, right, out)
	o := gatherOptions(DefaultBlockSize, opts...)
	rows, inner, cols := left.Shape().Row, left.Shape().Col, right.Shape().Col
	bs := o.block
	for ib := 0; ib < rows; ib += bs {
		for jb := 0; jb < cols; jb += bs {
			for kb := 0; kb < inner; kb += bs {
				blockAccumulate(left, right, out,
					ib, min(ib+bs, rows),
					jb, min(jb+bs, cols),
					kb, min(kb+bs, inner))
			}
		}
	}
}

// ReverseBlocked is Blocked with the k-block loop outermost, changing the
// operand reuse pattern. Logically equivalent to Naive and Blocked.
// Complexity: O(m*n*k), Space O(1).
func ReverseBlocked(left, right mat.Matrix, out mat.Mutable, opts ...Option) {
	checkOperands(opReverseBlocked, left, right, out)
	o := gatherOptions(DefaultBlockSize, opts...)
	rows, inner, cols := left.Shape().Row, left.Shape().Col, right.Shape().Col
	bs := o.block
	for kb := 0; kb < inner; kb += bs {
		for jb := 0; jb < cols; jb += bs {
			for ib := 0; ib < rows; ib += bs {
				blockAccumulate(left, right, out,
					ib, min(ib+bs, rows),
					jb, min(jb+bs, cols),
					kb, min(kb+bs, inner))
			}
		}
	}
}

// blockAccumulate runs the innermost i,j,k loops over one tile.
func blockAccumulate(left, right mat.Matrix, out mat.Mutable,
	i0, i1, j0, j1, k0, k1 int) {
	for i := i0; i < i1; i++ {
		for j := j0; j < j1; j++ {
			acc := out.At(i, j)
			for k := k0; k < k1; k++ {
				acc += left.At(i, k) * right.At(k, j)
			}
			out.Set(i, j, acc)
		}
	}
}
