// SPDX-License-Identifier: MIT

// Package mat: Identity is the no-storage backend.
//
// An Identity holds only its size; At answers by formula:
//
//	⎡ 1 0 0 0 ⎤
//	⎢ 0 1 0 0 ⎥
//	⎢ 0 0 1 0 ⎥
//	⎣ 0 0 0 1 ⎦
package mat

// Identity is the n×n identity matrix. It is read-only: materialize with
// NewDenseCopy to obtain a mutable copy.
type Identity struct {
	n int
}

// NewIdentity creates the n×n identity. Raises ErrBadShape when n <= 0.
// Complexity: O(1) — no storage is allocated.
func NewIdentity(n int) *Identity {
	checkf(n > 0, "NewIdentity", ErrBadShape, "size %d", n)
	return &Identity{n: n}
}

// Shape returns (n, n).
// Complexity: O(1).
func (m *Identity) Shape() RowCol { return RowCol{Row: m.n, Col: m.n} }

// At returns 1 iff row == col, 0 otherwise.
// Raises ErrOutOfRange on an invalid index.
// Complexity: O(1).
func (m *Identity) At(i, j int) float64 {
	CheckInBounds("Identity.At", m.Shape(), i, j)
	if i == j {
		return 1
	}
	return 0
}

// String implements fmt.Stringer via the package renderer.
func (m *Identity) String() string { return ToString(m) }
