// SPDX-License-Identifier: MIT

// Package mat: Permutation is the index-ordering backend.
//
// Purpose:
//   - Hold a bijection of {0..n-1} plus a parity counter, consulted by the
//     permuted views to redirect indexing and by lu to sign determinants.
//   - Present the Matrix contract (At(r,c) = 1 iff c == order[r]) so that
//     equality and printing code written for generic matrices applies.
//
// Invariant: the sequence is a valid permutation at all times; a malformed
// initializer is a fatal precondition failure at construction. A
// Permutation never mutates other matrices; adapters consult it on reads.
package mat

// Permutation is a bijection of {0..n-1} with transposition-parity tracking.
type Permutation struct {
	order []int
	swaps int // transpositions applied since construction
}

// NewPermutation creates the identity permutation of length n.
// Raises ErrBadShape when n <= 0.
// Complexity: O(n).
func NewPermutation(n int) *Permutation {
	checkf(n > 0, "NewPermutation", ErrBadShape, "length %d", n)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return &Permutation{order: order}
}

// NewPermutationOf creates a permutation from an explicit ordering.
// Raises ErrBadPermutation when the initializer contains a duplicate or
// out-of-range index (every element of {0..n-1} must appear exactly once).
// Complexity: O(n).
func NewPermutationOf(order ...int) *Permutation {
	checkf(len(order) > 0, "NewPermutationOf", ErrBadPermutation, "empty initializer")
	n := len(order)
	seen := make([]bool, n)
	for _, v := range order {
		checkf(v >= 0 && v < n, "NewPermutationOf", ErrBadPermutation,
			"index %d outside {0..%d}", v, n-1)
		checkf(!seen[v], "NewPermutationOf", ErrBadPermutation, "duplicate index %d", v)
		seen[v] = true
	}
	p := &Permutation{order: make([]int, n)}
	copy(p.order, order)
	return p
}

// Len returns the permutation length.
// Complexity: O(1).
func (p *Permutation) Len() int { return len(p.order) }

// Index returns the physical index the logical position i maps to.
// Raises ErrOutOfRange on an invalid position.
// Complexity: O(1).
func (p *Permutation) Index(i int) int {
	checkf(i >= 0 && i < len(p.order), "Permutation.Index", ErrOutOfRange,
		"position %d of %d", i, len(p.order))
	return p.order[i]
}

// Swap exchanges positions i and j and toggles the parity counter.
// A self-swap (i == j) is the identity transposition and does not change
// parity. Raises ErrOutOfRange on invalid positions.
// Complexity: O(1).
func (p *Permutation) Swap(i, j int) {
	n := len(p.order)
	checkf(i >= 0 && i < n && j >= 0 && j < n, "Permutation.Swap", ErrOutOfRange,
		"swap (%d,%d) of %d", i, j, n)
	if i == j {
		return
	}
	p.order[i], p.order[j] = p.order[j], p.order[i]
	p.swaps++
}

// Swaps returns the number of transpositions applied since construction.
// Complexity: O(1).
func (p *Permutation) Swaps() int { return p.swaps }

// Sign returns +1 for even parity and -1 for odd parity; this is the sign
// the permutation contributes to a determinant.
// Complexity: O(1).
func (p *Permutation) Sign() float64 {
	if p.swaps%2 == 0 {
		return 1
	}
	return -1
}

// Shape returns (n, n): the permutation viewed as a matrix.
// Complexity: O(1).
func (p *Permutation) Shape() RowCol {
	return RowCol{Row: len(p.order), Col: len(p.order)}
}

// At presents the Matrix contract: 1 iff col == order[row], 0 otherwise.
// Raises ErrOutOfRange on an invalid index.
// Complexity: O(1).
func (p *Permutation) At(i, j int) float64 {
	CheckInBounds("Permutation.At", p.Shape(), i, j)
	if j == p.order[i] {
		return 1
	}
	return 0
}

// ApplyRows physically reorders the rows of b so that row i of the result
// is row order[i] of the input — the materialized effect of viewing b
// through this permutation. Used by lu to permute a right-hand side before
// substitution. Raises ErrVectorLength when b's row count differs from n.
// Complexity: O(n*cols) time and space for the staging copy.
func (p *Permutation) ApplyRows(b Mutable) {
	CheckNotNil("Permutation.ApplyRows", b)
	s := b.Shape()
	CheckVecLen("Permutation.ApplyRows", s.Row, len(p.order))
	staged := make([]float64, s.Row*s.Col)
	for i := 0; i < s.Row; i++ {
		src := p.order[i]
		for k := 0; k < s.Col; k++ {
			staged[i*s.Col+k] = b.At(src, k)
		}
	}
	for i := 0; i < s.Row; i++ {
		for k := 0; k < s.Col; k++ {
			b.Set(i, k, staged[i*s.Col+k])
		}
	}
}

// Clone returns an independent copy with the same ordering and parity.
// Complexity: O(n).
func (p *Permutation) Clone() *Permutation {
	order := make([]int, len(p.order))
	copy(order, p.order)
	return &Permutation{order: order, swaps: p.swaps}
}

// String implements fmt.Stringer via the package renderer.
func (p *Permutation) String() string { return ToString(p) }
