// Package densekit is your in-memory toolkit for building, viewing and
// factorizing dense matrices — from storage primitives to cache-aware
// multiplication kernels and LU-based solvers.
//
// 🚀 What is densekit?
//
//	A small, deterministic linear-algebra core that brings together:
//		• Storage backends: contiguous Dense (row- or col-major), formula-only
//		  Identity, index-mapping Permutation
//		• Views: rectangular Slice windows, O(1) row/column permuted adapters
//		• Element-wise ops: Add/Sub plus their in-place Assign forms
//		• Multiplication: naive, blocked, reverse-blocked, buffered and
//		  worker-pool parallel kernels sharing one accumulate contract
//		• Factorization: LU with partial/implicit/none pivoting, determinants
//		  and multi-RHS solves
//
// ✨ Why choose densekit?
//
//   - Fail-fast guarantees – every shape and index precondition is checked,
//     and violations terminate with a sentinel-tagged diagnostic
//   - Deterministic – fixed loop orders; identical inputs give identical
//     results, even from the parallel kernel
//   - View-first design – slices and permutations alias their parent, so
//     pivoting and windowing never copy data
//
// Under the hood, everything is organized under three subpackages:
//
//	mat/      — extents, layouts, storage backends, views, element-wise ops
//	multiply/ — the five multiplication kernels + allocating facade
//	lu/       — LU decomposition, determinant, Solve/SolveVec
//
// Quick example:
//
//	a := mat.NewDenseFromRows([][]float64{{4, 2}, {2, 3}})
//	d := lu.New(a.Clone())
//	x := d.SolveVec([]float64{8, 8}) // → [1 2]
//
// Dive into examples/ for end-to-end scenarios, and cmd/matbench to sweep
// the kernels on your own hardware.
//
//	go get github.com/katalvlaran/densekit
package densekit
