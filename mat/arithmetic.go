// SPDX-License-Identifier: MIT
// Package mat: element-wise addition and subtraction.
//
// Purpose:
//   - Provide the in-place (AddAssign/SubAssign) and materializing (Add/Sub)
//     element-wise operations over any two shape-compatible Matrix values.
//
// Determinism & Performance:
//   - Fixed i→j loop order in the generic path; a single flat 0..n-1 loop on
//     the Dense fast-path when both operands share a row-major layout.
//   - The materializing forms never assume either operand is mutable: they
//     allocate a fresh row-major Dense for the result.

package mat

// Operation name constants for unified panic diagnostics.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opAddAssign = "AddAssign"
	opSubAssign = "SubAssign"
)

// addSub computes out = a + sign*b element-wise into a fresh Dense.
// Shared validation, allocation and fast-path for Add/Sub.
func addSub(a, b Matrix, sign float64, op string) *Dense {
	CheckSameShape(op, a, b)
	s := a.Shape()
	out := NewDense(s.Row, s.Col)

	// Fast path: both operands are row-major *Dense → one flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			if da.lay.Order() == RowMajor && db.lay.Order() == RowMajor {
				n := s.Row * s.Col
				for idx := 0; idx < n; idx++ { // deterministic 0..n-1
					out.data[idx] = da.data[idx] + sign*db.data[idx]
				}
				return out
			}
		}
	}

	// Generic path: fixed i→j order through the Matrix contract.
	for i := 0; i < s.Row; i++ {
		for j := 0; j < s.Col; j++ {
			out.data[out.lay.Offset(i, j)] = a.At(i, j) + sign*b.At(i, j)
		}
	}
	return out
}

// Add returns a fresh Dense with a[i,j] + b[i,j].
// Raises ErrShapeMismatch on incompatible shapes.
// Complexity: O(r*c) time and space.
func Add(a, b Matrix) *Dense { return addSub(a, b, +1, opAdd) }

// Sub returns a fresh Dense with a[i,j] - b[i,j].
// Raises ErrShapeMismatch on incompatible shapes.
// Complexity: O(r*c) time and space.
func Sub(a, b Matrix) *Dense { return addSub(a, b, -1, opSub) }

// addSubAssign applies dst[i,j] += sign*src[i,j] in place.
func addSubAssign(dst Mutable, src Matrix, sign float64, op string) {
	CheckSameShape(op, dst, src)
	s := dst.Shape()
	for i := 0; i < s.Row; i++ {
		for j := 0; j < s.Col; j++ {
			dst.Set(i, j, dst.At(i, j)+sign*src.At(i, j))
		}
	}
}

// AddAssign accumulates src into dst element-wise (dst += src). dst may be
// any Mutable, including a view; writes land wherever the view points.
// Raises ErrShapeMismatch on incompatible shapes.
// Complexity: O(r*c), Space O(1).
func AddAssign(dst Mutable, src Matrix) { addSubAssign(dst, src, +1, opAddAssign) }

// SubAssign subtracts src from dst element-wise (dst -= src).
// Raises ErrShapeMismatch on incompatible shapes.
// Complexity: O(r*c), Space O(1).
func SubAssign(dst Mutable, src Matrix) { addSubAssign(dst, src, -1, opSubAssign) }
