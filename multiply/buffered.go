// SPDX-License-Identifier: MIT
// Package multiply: the scratch-buffered kernel.
//
// Purpose:
//   - Buffered stages each operand tile in a small contiguous scratch before
//     accumulating, so the inner loop walks two flat slices regardless of the
//     operands' storage (views, permutations, column-major layouts).
//
// Design:
//   - The right tile is staged TRANSPOSED so both scratch walks advance with
//     stride 1 along the shared k axis.
//   - Scratch lives on the call frame; no state survives the call and no
//     synchronization is required.

package multiply

import "github.com/katalvlaran/densekit/mat"

// Buffered accumulates left*right into out, staging block×block tiles of
// both operands into local scratch. Block edge defaults to
// DefaultBufferedBlockSize; override with WithBlockSize.
// Complexity: O(m*n*k), Space O(block²).
func Buffered(left, right mat.Matrix, out mat.Mutable, opts ...Option) {
	checkOperands(opBuffered, left, right, out)
	o := gatherOptions(DefaultBufferedBlockSize, opts...)
	rows, inner, cols := left.Shape().Row, left.Shape().Col, right.Shape().Col
	bs := o.block
	lbuf := make([]float64, bs*bs)
	rbuf := make([]float64, bs*bs)
	for ib := 0; ib < rows; ib += bs {
		for jb := 0; jb < cols; jb += bs {
			bufferedTile(left, right, out, lbuf, rbuf, bs, ib, jb, rows, inner, cols)
		}
	}
}

// bufferedTile accumulates one (ib,jb) output tile, sweeping the k axis in
// block-sized steps and restaging the scratch for each step.
func bufferedTile(left, right mat.Matrix, out mat.Mutable,
	lbuf, rbuf []float64, bs, ib, jb, rows, inner, cols int) {
	ih := min(ib+bs, rows) - ib
	jh := min(jb+bs, cols) - jb
	for kb := 0; kb < inner; kb += bs {
		kh := min(kb+bs, inner) - kb
		// Stage the right tile transposed: rbuf[k + j*bs] = right[kb+k][jb+j].
		for j := 0; j < jh; j++ {
			for k := 0; k < kh; k++ {
				rbuf[k+j*bs] = right.At(kb+k, jb+j)
			}
		}
		// Stage the left tile row-major: lbuf[k + i*bs] = left[ib+i][kb+k].
		for i := 0; i < ih; i++ {
			for k := 0; k < kh; k++ {
				lbuf[k+i*bs] = left.At(ib+i, kb+k)
			}
		}
		for i := 0; i < ih; i++ {
			for j := 0; j < jh; j++ {
				acc := out.At(ib+i, jb+j)
				for k := 0; k < kh; k++ {
					acc += lbuf[k+i*bs] * rbuf[k+j*bs]
				}
				out.Set(ib+i, jb+j, acc)
			}
		}
	}
}
