// SPDX-License-Identifier: MIT
// Package multiply: the worker-pool kernel.
//
// Purpose:
//   - Parallel splits the output into block×block tiles and lets a fixed set
//     of workers claim them through a shared atomic counter, so the load
//     balances itself without a scheduler goroutine or channels.
//
// Determinism:
//   - Tiles never overlap, so each out element is written by exactly one
//     worker and the result matches the sequential kernels bit for bit on
//     exact inputs. Tile claim ORDER is scheduling-dependent, which is
//     invisible in the result.

package multiply

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/densekit/mat"
)

// tile is one (row, col) block origin of the output.
type tile struct {
	ib, jb int
}

// Parallel accumulates left*right into out, distributing disjoint output
// tiles over WithWorkers goroutines (DefaultWorkers when unset). Each worker
// owns its scratch pair, so workers share only the claim counter and out.
// The call returns after every worker has drained the tile list.
// Complexity: O(m*n*k) work, Space O(workers*block²).
func Parallel(left, right mat.Matrix, out mat.Mutable, opts ...Option) {
	checkOperands(opParallel, left, right, out)
	o := gatherOptions(DefaultBufferedBlockSize, opts...)
	rows, inner, cols := left.Shape().Row, left.Shape().Col, right.Shape().Col
	bs := o.block

	tiles := make([]tile, 0, ((rows+bs-1)/bs)*((cols+bs-1)/bs))
	for ib := 0; ib < rows; ib += bs {
		for jb := 0; jb < cols; jb += bs {
			tiles = append(tiles, tile{ib: ib, jb: jb})
		}
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(o.workers)
	for w := 0; w < o.workers; w++ {
		go func() {
			defer wg.Done()
			lbuf := make([]float64, bs*bs)
			rbuf := make([]float64, bs*bs)
			for {
				idx := next.Add(1) - 1
				if idx >= int64(len(tiles)) {
					return
				}
				t := tiles[idx]
				bufferedTile(left, right, out, lbuf, rbuf, bs, t.ib, t.jb, rows, inner, cols)
			}
		}()
	}
	wg.Wait()
}
