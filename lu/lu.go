// SPDX-License-Identifier: MIT
// Package lu: the factorization core.
//
// Design:
//   - Elimination runs through a mat.RowPermuted view, so "swapping rows"
//     is an O(1) index exchange and the caller's storage is rewritten in
//     place: L's multipliers land below the diagonal, U on and above it.
//   - Pivot scales for PivotImplicit are captured before elimination and
//     swapped alongside the rows they describe.

package lu

import (
	"math"

	"github.com/katalvlaran/densekit/mat"
)

// Operation name constants for unified panic diagnostics.
const (
	opNew      = "lu.New"
	opSolve    = "lu.Decomposition.Solve"
	opSolveVec = "lu.Decomposition.SolveVec"
)

// tiny replaces a zero denominator in safeDivide. Small enough that any
// legitimate pivot dwarfs it, large enough to keep quotients finite.
const tiny = 1e-30

// safeDivide returns a/b, deflecting b == 0 to a/tiny so elimination on a
// singular matrix yields huge-but-finite multipliers instead of Inf/NaN.
func safeDivide(a, b float64) float64 {
	if b == 0 {
		b = tiny
	}
	return a / b
}

// Decomposition holds the combined L/U factors behind a row-permuted view
// of the caller's matrix. Construct with New.
type Decomposition struct {
	pm   *mat.RowPermuted
	n    int
	mode PivotMode
}

// New factorizes the square matrix m in place and returns the decomposition.
// After New, m's storage holds U on and above the diagonal and L's
// multipliers below it (L's diagonal is an implicit run of ones); the row
// exchanges live only in the returned permutation.
// Panics with mat.ErrNonSquare when m is not square.
// Complexity: O(n³), Space O(n) for pivot scales.
func New(m mat.Mutable, opts ...Option) *Decomposition {
	mat.CheckSquare(opNew, m)
	o := gatherOptions(opts...)
	d := &Decomposition{
		pm:   mat.NewRowPermuted(m),
		n:    m.Shape().Row,
		mode: o.pivot,
	}
	d.factorize()
	return d
}

// factorize runs Doolittle elimination column by column.
func (d *Decomposition) factorize() {
	scales := d.rowScales()
	for c := 0; c < d.n; c++ {
		p := d.selectPivot(c, scales)
		if p != c {
			d.pm.Swap(c, p)
			if scales != nil {
				scales[c], scales[p] = scales[p], scales[c]
			}
		}
		piv := d.pm.At(c, c)
		for r := c + 1; r < d.n; r++ {
			f := safeDivide(d.pm.At(r, c), piv)
			d.pm.Set(r, c, f)
			for k := c + 1; k < d.n; k++ {
				d.pm.Set(r, k, d.pm.At(r, k)-f*d.pm.At(c, k))
			}
		}
	}
}

// rowScales captures each row's largest absolute entry for PivotImplicit.
// Nil for the other modes.
func (d *Decomposition) rowScales() []float64 {
	if d.mode != PivotImplicit {
		return nil
	}
	scales := make([]float64, d.n)
	for i := 0; i < d.n; i++ {
		for j := 0; j < d.n; j++ {
			if v := math.Abs(d.pm.At(i, j)); v > scales[i] {
				scales[i] = v
			}
		}
	}
	return scales
}

// selectPivot returns the logical row index to eliminate with at column c.
func (d *Decomposition) selectPivot(c int, scales []float64) int {
	if d.mode == PivotNone {
		return c
	}
	best, bestScore := c, d.pivotScore(c, c, scales)
	for r := c + 1; r < d.n; r++ {
		if score := d.pivotScore(r, c, scales); score > bestScore {
			best, bestScore = r, score
		}
	}
	return best
}

// pivotScore ranks row r as a pivot candidate for column c.
func (d *Decomposition) pivotScore(r, c int, scales []float64) float64 {
	v := math.Abs(d.pm.At(r, c))
	if scales != nil {
		v = safeDivide(v, scales[r])
	}
	return v
}

// Determinant returns det(M): the product of U's diagonal times the sign of
// the row permutation accumulated during pivoting.
// Complexity: O(n).
func (d *Decomposition) Determinant() float64 {
	det := d.pm.Permutation().Sign()
	for i := 0; i < d.n; i++ {
		det *= d.pm.At(i, i)
	}
	return det
}

// Solve overwrites the n×k right-hand side b with the solution X of
// M·X = B, one column per system. b is first permuted by the
// factorization's row exchanges, then resolved by forward substitution
// against L and backward substitution against U.
// Panics with mat.ErrShapeMismatch when b does not have n rows.
// Complexity: O(n²·k).
func (d *Decomposition) Solve(b mat.Mutable) {
	mat.CheckNotNil(opSolve, b)
	mat.CheckShape(opSolve, b, mat.RowCol{Row: d.n, Col: b.Shape().Col})
	cols := b.Shape().Col
	d.pm.Permutation().ApplyRows(b)
	// Forward: L·Y = P·B with L's unit diagonal implicit.
	for c := 0; c < d.n; c++ {
		for r := c + 1; r < d.n; r++ {
			f := d.pm.At(r, c)
			for j := 0; j < cols; j++ {
				b.Set(r, j, b.At(r, j)-f*b.At(c, j))
			}
		}
	}
	// Backward: U·X = Y.
	for c := d.n - 1; c >= 0; c-- {
		piv := d.pm.At(c, c)
		for j := 0; j < cols; j++ {
			b.Set(c, j, safeDivide(b.At(c, j), piv))
		}
		for r := 0; r < c; r++ {
			f := d.pm.At(r, c)
			for j := 0; j < cols; j++ {
				b.Set(r, j, b.At(r, j)-f*b.At(c, j))
			}
		}
	}
}

// SolveVec solves M·x = b for a single right-hand side and returns x as a
// fresh slice. Panics with mat.ErrVectorLength when len(b) != n.
// Complexity: O(n²).
func (d *Decomposition) SolveVec(b []float64) []float64 {
	mat.CheckVecLen(opSolveVec, len(b), d.n)
	rhs := mat.NewDense(d.n, 1)
	for i, v := range b {
		rhs.Set(i, 0, v)
	}
	d.Solve(rhs)
	x := make([]float64, d.n)
	for i := range x {
		x[i] = rhs.At(i, 0)
	}
	return x
}

// Permutation returns the row exchanges applied during pivoting.
// The returned value is live; callers must not mutate it.
func (d *Decomposition) Permutation() *mat.Permutation {
	return d.pm.Permutation()
}

// Data returns the row-permuted view of the combined L/U factors. Reading
// Data().At(i, j) yields U for j >= i and L's multiplier for j < i.
func (d *Decomposition) Data() *mat.RowPermuted {
	return d.pm
}
