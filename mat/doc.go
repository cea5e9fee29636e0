// Package mat provides the core dense linear-algebra primitives of densekit.
//
// The mat package provides:
//
//   - An extent model (Dim, Extent) that tracks whether each axis of a
//     matrix shape is fixed up-front or resolved at construction, plus the
//     compatibility and conformability rules every operation must satisfy.
//   - Layout descriptors mapping (row, col) pairs onto flat storage offsets
//     in row-major or column-major order, generalized to N axes via Strides.
//   - Storage backends: Dense (owning, contiguous), Identity (formula-only),
//     Permutation (index-ordering-only) and the lazy Kronecker tensor
//     product, all behind the small Matrix / Mutable contracts.
//   - Views: Slice (rectangular sub-window with alias semantics) and
//     RowPermuted/ColPermuted (logical row/column reordering without data
//     movement).
//   - Element-wise arithmetic (Add/Sub and in-place variants), exact and
//     tolerance comparison, and an aligned textual renderer.
//
// Shape and precondition violations are programmer errors under the package
// policy: they panic with the sentinel errors defined in errors.go rather
// than returning them. See errors.go for the full taxonomy.
//
// Matrices are best for dense workloads where O(r*c) memory is acceptable;
// higher-level kernels live in the multiply and lu packages.
package mat
