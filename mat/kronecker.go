// SPDX-License-Identifier: MIT

// Package mat: Kronecker is the lazy tensor-product backend.
//
// A Kronecker holds two parent matrices and answers At by formula — every
// element of the (ar·br)×(ac·bc) product is a[i/br, j/bc] * b[i%br, j%bc],
// computed on demand. No storage is allocated; materialize with
// NewDenseCopy when repeated reads must be O(1) memory lookups.
package mat

// Kronecker is the a⊗b tensor product viewed through the Matrix contract.
// It is read-only and aliases its parents: mutating a or b changes the
// product's answers.
type Kronecker struct {
	a, b  Matrix
	shape RowCol
}

// NewKronecker creates the lazy tensor product of a and b. The result shape
// is (a.rows*b.rows, a.cols*b.cols).
// Complexity: O(1) — no element is computed until read.
func NewKronecker(a, b Matrix) *Kronecker {
	CheckNotNil("NewKronecker", a)
	CheckNotNil("NewKronecker", b)
	as, bs := a.Shape(), b.Shape()
	return &Kronecker{
		a:     a,
		b:     b,
		shape: RowCol{Row: as.Row * bs.Row, Col: as.Col * bs.Col},
	}
}

// Shape returns the product shape.
// Complexity: O(1).
func (m *Kronecker) Shape() RowCol { return m.shape }

// At returns a[i/br, j/bc] * b[i%br, j%bc].
// Raises ErrOutOfRange on an invalid index.
// Complexity: O(1) plus the parents' At cost.
func (m *Kronecker) At(i, j int) float64 {
	CheckInBounds("Kronecker.At", m.shape, i, j)
	bs := m.b.Shape()
	return m.a.At(i/bs.Row, j/bs.Col) * m.b.At(i%bs.Row, j%bs.Col)
}

// String implements fmt.Stringer via the package renderer.
func (m *Kronecker) String() string { return ToString(m) }
