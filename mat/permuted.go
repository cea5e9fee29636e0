// SPDX-License-Identifier: MIT

// Package mat: permuted views.
//
// RowPermuted and ColPermuted wrap a parent matrix plus a Permutation and
// redirect one index axis through it. Swap mutates only the permutation,
// never the parent's physical layout — this is how lu pivots rows without
// O(n) data movement per exchange.
//
// Views are not safe for concurrent writers; they assume single-writer
// access like the surrounding arithmetic and factorization code.
package mat

// RowPermuted reorders logical row access into a parent matrix.
type RowPermuted struct {
	m    Mutable
	perm *Permutation
}

// NewRowPermuted wraps m with the identity row permutation.
// Complexity: O(rows).
func NewRowPermuted(m Mutable) *RowPermuted {
	CheckNotNil("NewRowPermuted", m)
	return &RowPermuted{m: m, perm: NewPermutation(m.Shape().Row)}
}

// NewRowPermutedWith wraps m with an existing permutation, which the view
// takes ownership of (callers wanting independence should Clone first).
// Raises ErrVectorLength when the permutation length differs from m's rows.
// Complexity: O(1).
func NewRowPermutedWith(m Mutable, perm *Permutation) *RowPermuted {
	CheckNotNil("NewRowPermutedWith", m)
	checkf(perm != nil, "NewRowPermutedWith", ErrNilMatrix, "permutation is nil")
	CheckVecLen("NewRowPermutedWith", perm.Len(), m.Shape().Row)
	return &RowPermuted{m: m, perm: perm}
}

// Shape returns the parent's shape.
// Complexity: O(1).
func (v *RowPermuted) Shape() RowCol { return v.m.Shape() }

// At reads parent[perm[i], j].
// Complexity: O(1).
func (v *RowPermuted) At(i, j int) float64 {
	CheckInBounds("RowPermuted.At", v.Shape(), i, j)
	return v.m.At(v.perm.Index(i), j)
}

// Set writes parent[perm[i], j].
// Complexity: O(1).
func (v *RowPermuted) Set(i, j int, x float64) {
	CheckInBounds("RowPermuted.Set", v.Shape(), i, j)
	v.m.Set(v.perm.Index(i), j, x)
}

// Swap exchanges logical rows i and j by mutating only the permutation.
// Complexity: O(1).
func (v *RowPermuted) Swap(i, j int) {
	rows := v.Shape().Row
	checkf(i >= 0 && i < rows && j >= 0 && j < rows, "RowPermuted.Swap",
		ErrOutOfRange, "swap (%d,%d) of %d rows", i, j, rows)
	v.perm.Swap(i, j)
}

// Permutation exposes the current logical-to-physical row mapping, e.g. to
// permute a right-hand side before solving.
// Complexity: O(1).
func (v *RowPermuted) Permutation() *Permutation { return v.perm }

// Base returns the wrapped parent matrix.
// Complexity: O(1).
func (v *RowPermuted) Base() Mutable { return v.m }

// String implements fmt.Stringer via the package renderer.
func (v *RowPermuted) String() string { return ToString(v) }

// ColPermuted reorders logical column access into a parent matrix.
type ColPermuted struct {
	m    Mutable
	perm *Permutation
}

// NewColPermuted wraps m with the identity column permutation.
// Complexity: O(cols).
func NewColPermuted(m Mutable) *ColPermuted {
	CheckNotNil("NewColPermuted", m)
	return &ColPermuted{m: m, perm: NewPermutation(m.Shape().Col)}
}

// NewColPermutedWith wraps m with an existing permutation.
// Raises ErrVectorLength when the permutation length differs from m's cols.
// Complexity: O(1).
func NewColPermutedWith(m Mutable, perm *Permutation) *ColPermuted {
	CheckNotNil("NewColPermutedWith", m)
	checkf(perm != nil, "NewColPermutedWith", ErrNilMatrix, "permutation is nil")
	CheckVecLen("NewColPermutedWith", perm.Len(), m.Shape().Col)
	return &ColPermuted{m: m, perm: perm}
}

// Shape returns the parent's shape.
// Complexity: O(1).
func (v *ColPermuted) Shape() RowCol { return v.m.Shape() }

// At reads parent[i, perm[j]].
// Complexity: O(1).
func (v *ColPermuted) At(i, j int) float64 {
	CheckInBounds("ColPermuted.At", v.Shape(), i, j)
	return v.m.At(i, v.perm.Index(j))
}

// Set writes parent[i, perm[j]].
// Complexity: O(1).
func (v *ColPermuted) Set(i, j int, x float64) {
	CheckInBounds("ColPermuted.Set", v.Shape(), i, j)
	v.m.Set(i, v.perm.Index(j), x)
}

// Swap exchanges logical columns i and j by mutating only the permutation.
// Complexity: O(1).
func (v *ColPermuted) Swap(i, j int) {
	cols := v.Shape().Col
	checkf(i >= 0 && i < cols && j >= 0 && j < cols, "ColPermuted.Swap",
		ErrOutOfRange, "swap (%d,%d) of %d cols", i, j, cols)
	v.perm.Swap(i, j)
}

// Permutation exposes the current logical-to-physical column mapping.
// Complexity: O(1).
func (v *ColPermuted) Permutation() *Permutation { return v.perm }

// Base returns the wrapped parent matrix.
// Complexity: O(1).
func (v *ColPermuted) Base() Mutable { return v.m }

// String implements fmt.Stringer via the package renderer.
func (v *ColPermuted) String() string { return ToString(v) }
