// SPDX-License-Identifier: MIT
// Package mat: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the mat
// package and its consumers (multiply, lu). Every message is prefixed with
// "mat: ..." for consistency and to allow easy grepping across logs.
//
// POLICY NOTE
// -----------
// Unlike ordinary Go libraries, mat treats precondition violations as
// programmer errors: validators PANIC with these sentinels (wrapped via
// checkf with the operation tag and the offending dimensions) instead of
// returning them. Callers are expected to satisfy preconditions, not to
// recover from their violation. Tests match the panic value with errors.Is.

package mat

import "errors"

var (
	// ErrBadShape is raised when a requested shape is invalid (r<=0 or c<=0).
	// Constructors must validate before allocation.
	ErrBadShape = errors.New("mat: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. At/Set raise this in every build mode; there is no unchecked
	// release path.
	ErrOutOfRange = errors.New("mat: index out of range")

	// ErrShapeMismatch indicates incompatible shapes between operands of an
	// element-wise operation or an assignment copy.
	ErrShapeMismatch = errors.New("mat: shape mismatch")

	// ErrNotConformable indicates that left.Cols() != right.Rows() for a
	// multiplicative operation.
	ErrNotConformable = errors.New("mat: operands not conformable")

	// ErrNonSquare signals that a square matrix was required but the input
	// was rectangular.
	ErrNonSquare = errors.New("mat: matrix is not square")

	// ErrExtentMismatch is raised by Extent.Resolve when a declared static
	// axis disagrees with the actual runtime dimension.
	ErrExtentMismatch = errors.New("mat: static extent disagrees with runtime value")

	// ErrBadPermutation is raised at construction when an initializer is not
	// a bijection of {0..n-1} (duplicate or out-of-range index).
	ErrBadPermutation = errors.New("mat: malformed permutation")

	// ErrBadSlice is raised when a requested slice window does not fit the
	// parent matrix from the given offset.
	ErrBadSlice = errors.New("mat: slice exceeds parent extent")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was
	// passed where a value is required.
	ErrNilMatrix = errors.New("mat: nil matrix")

	// ErrVectorLength indicates that a vector argument does not match the
	// required dimension (e.g. a right-hand side with the wrong row count).
	ErrVectorLength = errors.New("mat: vector length mismatch")
)
