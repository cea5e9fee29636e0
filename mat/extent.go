// SPDX-License-Identifier: MIT
// Package mat: the extent model.
//
// Purpose:
//   - Describe matrix dimensions where each axis is either a concrete value
//     fixed up-front (static) or the Dynamic sentinel resolved at
//     construction time.
//   - Centralize the compatibility rules consulted before every operation:
//     two extents are compatible per axis when at least one side is Dynamic
//     or both values agree.
//
// Design:
//   - Dim is a plain tagged integer (Dynamic = -1) carried in a lightweight
//     Extent struct; monomorphization over static dimensions is deliberately
//     NOT attempted — runtime shape tracking with an explicit, loudly
//     failing Resolve step covers the same contract.

package mat

import "fmt"

// Dim is a single axis extent: a non-negative dimension, or Dynamic.
type Dim int

// Dynamic marks an axis whose dimension is determined at construction.
const Dynamic Dim = -1

// IsDynamic reports whether the axis is resolved only at construction.
// Complexity: O(1).
func (d Dim) IsDynamic() bool { return d == Dynamic }

// String implements fmt.Stringer ("?" for Dynamic).
func (d Dim) String() string {
	if d.IsDynamic() {
		return "?"
	}
	return fmt.Sprintf("%d", int(d))
}

// RowCol is a resolved (row, col) pair used both as a shape and as an index
// offset. Arithmetic helpers keep slice-composition code terse.
type RowCol struct {
	Row, Col int
}

// Add returns the component-wise sum of two pairs.
// Complexity: O(1).
func (rc RowCol) Add(other RowCol) RowCol {
	return RowCol{Row: rc.Row + other.Row, Col: rc.Col + other.Col}
}

// Sub returns the component-wise difference of two pairs.
// Complexity: O(1).
func (rc RowCol) Sub(other RowCol) RowCol {
	return RowCol{Row: rc.Row - other.Row, Col: rc.Col - other.Col}
}

// Extent is the declared (rows, cols) shape of a matrix, each axis static or
// Dynamic. Extents never change after a matrix is constructed.
type Extent struct {
	Rows, Cols Dim
}

// StaticExtent builds a fully static extent from concrete dimensions.
// Raises ErrBadShape on non-positive dimensions.
// Complexity: O(1).
func StaticExtent(rows, cols int) Extent {
	checkf(rows > 0 && cols > 0, "StaticExtent", ErrBadShape, "%dx%d", rows, cols)
	return Extent{Rows: Dim(rows), Cols: Dim(cols)}
}

// DynamicExtent builds an extent with both axes resolved at construction.
// Complexity: O(1).
func DynamicExtent() Extent {
	return Extent{Rows: Dynamic, Cols: Dynamic}
}

// ExtentOf returns the fully static extent matching a resolved shape.
// Complexity: O(1).
func ExtentOf(shape RowCol) Extent {
	return StaticExtent(shape.Row, shape.Col)
}

// Rank returns the number of axes; always 2 for this package. Kept as a
// method so shape-generic helpers (Strides) read uniformly.
func (e Extent) Rank() int { return 2 }

// IsStatic reports whether both axes are fixed.
// Complexity: O(1).
func (e Extent) IsStatic() bool {
	return !e.Rows.IsDynamic() && !e.Cols.IsDynamic()
}

// compatibleDim is the single-axis rule: dynamic on either side, or equal.
func compatibleDim(a, b Dim) bool {
	return a.IsDynamic() || b.IsDynamic() || a == b
}

// Compatible reports whether two extents may participate in an element-wise
// operation: for every axis, at least one side is Dynamic or both agree.
// Complexity: O(1).
func (e Extent) Compatible(other Extent) bool {
	return compatibleDim(e.Rows, other.Rows) && compatibleDim(e.Cols, other.Cols)
}

// Conformable reports whether e (as the left operand) may be multiplied by
// other: e.Cols matches other.Rows under the dynamic-or-equal rule.
// Complexity: O(1).
func (e Extent) Conformable(other Extent) bool {
	return compatibleDim(e.Cols, other.Rows)
}

// Resolve checks a declared extent against the actual runtime shape and
// returns the fully static result. This is the explicit, possibly-narrowing
// conversion of the extent model: a static axis that disagrees with the
// runtime value raises ErrExtentMismatch.
// Complexity: O(1).
func (e Extent) Resolve(actual RowCol) Extent {
	checkf(actual.Row > 0 && actual.Col > 0, "Resolve", ErrBadShape,
		"%dx%d", actual.Row, actual.Col)
	checkf(e.Rows.IsDynamic() || int(e.Rows) == actual.Row, "Resolve",
		ErrExtentMismatch, "declared rows %s, actual %d", e.Rows, actual.Row)
	checkf(e.Cols.IsDynamic() || int(e.Cols) == actual.Col, "Resolve",
		ErrExtentMismatch, "declared cols %s, actual %d", e.Cols, actual.Col)
	return Extent{Rows: Dim(actual.Row), Cols: Dim(actual.Col)}
}

// String implements fmt.Stringer, e.g. "3x?" for a static-by-dynamic extent.
func (e Extent) String() string {
	return e.Rows.String() + "x" + e.Cols.String()
}
