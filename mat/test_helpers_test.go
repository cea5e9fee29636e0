// SPDX-License-Identifier: MIT
// Package mat_test contains shared test helpers.
//
// Purpose:
//   - Small deterministic fixtures and assertions reused across the suite.
//   - Keep every value finite and well-formed so numeric policy never
//     interferes with structural tests.

package mat_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/densekit/mat"
)

// hide wraps any Mutable to mask its concrete type from type switches.
// Use hide{X} to force code under test off the *Dense fast path onto the
// generic At/Set fallback.
type hide struct{ mat.Mutable }

// FilledDense builds an r×c *Dense from a row-major flat slice.
// Fatal when len(vals) != r*c.
func FilledDense(t *testing.T, r, c int, vals []float64) *mat.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("FilledDense: want %d values, got %d", r*c, len(vals))
	}
	d := mat.NewDense(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d.Set(i, j, vals[i*c+j])
		}
	}

	return d
}

// RandFilledDense returns an r×c Dense filled with deterministic U(-1,1)
// values derived from seed. Identical seeds give identical matrices, which
// keeps cross-path comparisons exact.
func RandFilledDense(t *testing.T, r, c int, seed int64) *mat.Dense {
	t.Helper()
	d := mat.NewDense(r, c)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d.Set(i, j, rng.Float64()*2-1)
		}
	}

	return d
}

// CompareExact asserts strict element equality between m and a 2D literal.
// Use only for integer-like fixtures; floats go through CompareClose.
func CompareExact(t *testing.T, want [][]float64, m mat.Matrix) {
	t.Helper()
	s := m.Shape()
	if len(want) != s.Row {
		t.Fatalf("CompareExact: rows = %d; want %d", s.Row, len(want))
	}
	for i := 0; i < s.Row; i++ {
		if len(want[i]) != s.Col {
			t.Fatalf("CompareExact: cols[%d] = %d; want %d", i, s.Col, len(want[i]))
		}
		for j := 0; j < s.Col; j++ {
			if v := m.At(i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// CompareClose asserts mat.AllClose(a, b, rtol, atol).
func CompareClose(t *testing.T, a, b mat.Matrix, rtol, atol float64) {
	t.Helper()
	if !mat.AllClose(a, b, rtol, atol) {
		t.Fatalf("AllClose=false (rtol=%g, atol=%g)\ngot:\n%s\nwant:\n%s",
			rtol, atol, mat.ToString(a), mat.ToString(b))
	}
}

// ExpectPanicIs asserts that fn panics with an error matching the sentinel
// (via errors.Is on the recovered value).
func ExpectPanicIs(t *testing.T, sentinel error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic carrying %v, got none", sentinel)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v (%T) is not an error", r, r)
		}
		if !errors.Is(err, sentinel) {
			t.Fatalf("panic error %v does not match %v", err, sentinel)
		}
	}()
	fn()
}
