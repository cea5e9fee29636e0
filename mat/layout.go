// SPDX-License-Identifier: MIT
// Package mat: layout mapping from (row, col) indices to flat offsets.
//
// Purpose:
//   - Encapsulate the pure function from an index pair and a shape to a
//     linear storage offset, parameterized by traversal order.
//   - Strides are computed once at construction; Offset is two multiplies
//     and an add with no branches in the hot path.
//
// Determinism & Performance:
//   - A Layout is immutable for the lifetime of the owning matrix.
//   - The N-axis generalization (Strides) applies the same formula over an
//     arbitrary rank: each stride is the product of all less-significant
//     axis extents (row-major) or more-significant ones (col-major).

package mat

// Order selects the traversal order of a storage layout.
type Order uint8

const (
	// RowMajor stores each row contiguously: offset = row*cols + col.
	RowMajor Order = iota
	// ColMajor stores each column contiguously: offset = col*rows + row.
	ColMajor
)

// String implements fmt.Stringer.
func (o Order) String() string {
	if o == ColMajor {
		return "col-major"
	}
	return "row-major"
}

// Layout maps a (row, col) pair onto a flat offset for a fixed shape and
// order. Zero value is a degenerate empty row-major layout.
type Layout struct {
	order                Order
	rowStride, colStride int
}

// NewLayout computes the stride table for the given order and resolved
// shape. Raises ErrBadShape on non-positive dimensions.
// Complexity: O(1).
func NewLayout(order Order, shape RowCol) Layout {
	checkf(shape.Row > 0 && shape.Col > 0, "NewLayout", ErrBadShape,
		"%dx%d", shape.Row, shape.Col)
	if order == ColMajor {
		return Layout{order: ColMajor, rowStride: 1, colStride: shape.Row}
	}
	return Layout{order: RowMajor, rowStride: shape.Col, colStride: 1}
}

// Order returns the traversal order of the layout.
// Complexity: O(1).
func (l Layout) Order() Order { return l.order }

// Offset converts a (row, col) pair into the flat storage offset.
// Bounds are the caller's responsibility (Dense checks before delegating).
// Complexity: O(1).
func (l Layout) Offset(row, col int) int {
	return row*l.rowStride + col*l.colStride
}

// Strides generalizes the stride computation to N axes: stride[i] is the
// product of all less-significant axis extents for RowMajor, or of all
// more-significant ones for ColMajor. A 2-D row-major shape (r, c) yields
// {c, 1}; col-major yields {1, r}.
// Raises ErrBadShape on an empty dim list or non-positive dimensions.
// Complexity: O(rank).
func Strides(order Order, dims ...int) []int {
	checkf(len(dims) > 0, "Strides", ErrBadShape, "no dimensions")
	for _, d := range dims {
		checkf(d > 0, "Strides", ErrBadShape, "dimension %d", d)
	}
	strides := make([]int, len(dims))
	acc := 1
	if order == RowMajor {
		for i := len(dims) - 1; i >= 0; i-- {
			strides[i] = acc
			acc *= dims[i]
		}
		return strides
	}
	for i := 0; i < len(dims); i++ {
		strides[i] = acc
		acc *= dims[i]
	}
	return strides
}
