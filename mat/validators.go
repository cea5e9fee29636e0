// SPDX-License-Identifier: MIT
// Package mat: centralized precondition checks.
//
// Purpose:
//   - Provide the single check-and-terminate primitive (checkf) and the
//     Check* helpers built on it, so every kernel validates shapes the same
//     way and reports failures with a uniform diagnostic.
//
// Design:
//   - A failing check panics with fmt.Errorf("<op>: %w: <details>", err),
//     preserving the sentinel for errors.Is on the recovered value.
//   - Checks are cheap (O(1)) and always on; there is no release mode that
//     skips them.

package mat

import "fmt"

// checkf terminates the process (panics) when cond is false, attaching the
// operation tag, the sentinel err and a formatted detail string.
// The panic value is an error, so tests and diagnostics can match it with
// errors.Is after recover.
// Complexity: O(1) on the happy path.
func checkf(cond bool, op string, err error, format string, args ...any) {
	if cond {
		return
	}
	panic(fmt.Errorf("%s: %w: %s", op, err, fmt.Sprintf(format, args...)))
}

// CheckNotNil raises ErrNilMatrix when m is nil.
// Complexity: O(1).
func CheckNotNil(op string, m Matrix) {
	checkf(m != nil, op, ErrNilMatrix, "operand is nil")
}

// CheckInBounds raises ErrOutOfRange unless 0 <= i < shape.Row and
// 0 <= j < shape.Col.
// Complexity: O(1).
func CheckInBounds(op string, shape RowCol, i, j int) {
	checkf(i >= 0 && i < shape.Row && j >= 0 && j < shape.Col,
		op, ErrOutOfRange, "index (%d,%d) outside %dx%d", i, j, shape.Row, shape.Col)
}

// CheckSameShape raises ErrShapeMismatch unless a and b have identical
// runtime shapes. Required before any element-wise operation.
// Complexity: O(1).
func CheckSameShape(op string, a, b Matrix) {
	CheckNotNil(op, a)
	CheckNotNil(op, b)
	as, bs := a.Shape(), b.Shape()
	checkf(as == bs, op, ErrShapeMismatch,
		"left %dx%d vs right %dx%d", as.Row, as.Col, bs.Row, bs.Col)
}

// CheckShape raises ErrShapeMismatch unless m has exactly the wanted runtime
// shape. Used to validate destination operands against a computed shape.
// Complexity: O(1).
func CheckShape(op string, m Matrix, want RowCol) {
	CheckNotNil(op, m)
	got := m.Shape()
	checkf(got == want, op, ErrShapeMismatch,
		"got %dx%d, want %dx%d", got.Row, got.Col, want.Row, want.Col)
}

// CheckConformable raises ErrNotConformable unless left.Cols == right.Rows.
// Required before any multiplicative operation.
// Complexity: O(1).
func CheckConformable(op string, left, right Matrix) {
	CheckNotNil(op, left)
	CheckNotNil(op, right)
	ls, rs := left.Shape(), right.Shape()
	checkf(ls.Col == rs.Row, op, ErrNotConformable,
		"left %dx%d vs right %dx%d", ls.Row, ls.Col, rs.Row, rs.Col)
}

// CheckSquare raises ErrNonSquare unless m has equal row and column counts.
// Complexity: O(1).
func CheckSquare(op string, m Matrix) {
	CheckNotNil(op, m)
	s := m.Shape()
	checkf(s.Row == s.Col, op, ErrNonSquare, "shape %dx%d", s.Row, s.Col)
}

// CheckVecLen raises ErrVectorLength unless got == want.
// Complexity: O(1).
func CheckVecLen(op string, got, want int) {
	checkf(got == want, op, ErrVectorLength, "length %d, want %d", got, want)
}
