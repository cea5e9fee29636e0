// SPDX-License-Identifier: MIT
// Package multiply_test contains shared test helpers.
//
// Purpose:
//   - Deterministic operand builders and the panic-sentinel assertion used
//     across the kernel suite.

package multiply_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/densekit/mat"
)

// hide masks the concrete operand type, forcing kernels through the generic
// At/Set contract.
type hide struct{ mat.Mutable }

// IntFilledDense returns an r×c Dense of small deterministic integers.
// Integer values keep float accumulation exact, so kernels with different
// summation orders can be compared with Equal instead of AllClose.
func IntFilledDense(t *testing.T, r, c int, seed int64) *mat.Dense {
	t.Helper()
	d := mat.NewDense(r, c)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d.Set(i, j, float64(rng.Intn(19)-9))
		}
	}

	return d
}

// RandFilledDense returns an r×c Dense of deterministic U(-1,1) values.
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

// ExpectPanicIs asserts that fn panics with an error matching the sentinel.
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
