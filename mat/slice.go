// SPDX-License-Identifier: MIT

// Package mat: Slice is the rectangular sub-window view.
//
// A Slice delegates (i, j) to parent[i+off.Row, j+off.Col] without copying;
// writes go through to the parent (alias semantics). Slicing a slice
// composes offsets onto the root parent, so chains stay one indirection
// deep. Construction validates that the window fits the parent from the
// given offset.
package mat

// Slice is a rectangular window over a parent matrix.
type Slice struct {
	m     Mutable
	off   RowCol
	shape RowCol
}

// NewSlice creates a window of the given shape anchored at off inside m.
// Raises ErrBadSlice when the window exceeds the parent's remaining extent
// from the offset, ErrBadShape on a non-positive window.
// When m is itself a *Slice, the offsets compose and the new view indexes
// the root parent directly.
// Complexity: O(1).
func NewSlice(m Mutable, off, shape RowCol) *Slice {
	CheckNotNil("NewSlice", m)
	checkf(shape.Row > 0 && shape.Col > 0, "NewSlice", ErrBadShape,
		"window %dx%d", shape.Row, shape.Col)
	if parent, ok := m.(*Slice); ok {
		off = off.Add(parent.off)
		m = parent.m
	}
	ps := m.Shape()
	checkf(off.Row >= 0 && off.Col >= 0 &&
		off.Row+shape.Row <= ps.Row && off.Col+shape.Col <= ps.Col,
		"NewSlice", ErrBadSlice,
		"window %dx%d at (%d,%d) inside %dx%d",
		shape.Row, shape.Col, off.Row, off.Col, ps.Row, ps.Col)
	return &Slice{m: m, off: off, shape: shape}
}

// Row returns the 1×cols slice covering row i of m, allowing iteration over
// all rows without copying.
// Complexity: O(1).
func Row(m Mutable, i int) *Slice {
	CheckNotNil("Row", m)
	return NewSlice(m, RowCol{Row: i}, RowCol{Row: 1, Col: m.Shape().Col})
}

// Col returns the rows×1 slice covering column j of m.
// Complexity: O(1).
func Col(m Mutable, j int) *Slice {
	CheckNotNil("Col", m)
	return NewSlice(m, RowCol{Col: j}, RowCol{Row: m.Shape().Row, Col: 1})
}

// Shape returns the window shape.
// Complexity: O(1).
func (v *Slice) Shape() RowCol { return v.shape }

// Offset returns the window anchor inside the root parent.
// Complexity: O(1).
func (v *Slice) Offset() RowCol { return v.off }

// Base returns the root parent matrix.
// Complexity: O(1).
func (v *Slice) Base() Mutable { return v.m }

// At reads parent[i+off.Row, j+off.Col].
// Raises ErrOutOfRange when the index leaves the window.
// Complexity: O(1).
func (v *Slice) At(i, j int) float64 {
	CheckInBounds("Slice.At", v.shape, i, j)
	return v.m.At(i+v.off.Row, j+v.off.Col)
}

// Set writes parent[i+off.Row, j+off.Col].
// Raises ErrOutOfRange when the index leaves the window.
// Complexity: O(1).
func (v *Slice) Set(i, j int, x float64) {
	CheckInBounds("Slice.Set", v.shape, i, j)
	v.m.Set(i+v.off.Row, j+v.off.Col, x)
}

// String implements fmt.Stringer via the package renderer.
func (v *Slice) String() string { return ToString(v) }
