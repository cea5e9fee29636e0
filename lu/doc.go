// SPDX-License-Identifier: MIT

// Package lu factorizes a square matrix into P·M = L·U with row pivoting
// and derives determinants and linear-system solutions from the factors.
//
// What you get:
//   - New:         in-place factorization behind a row-permuted view; the
//     original storage holds L (unit diagonal, below) and U (on and above).
//   - Determinant: product of U's diagonal folded with the permutation sign.
//   - Solve / SolveVec: forward + backward substitution over one or many
//     right-hand sides.
//
// Pivoting modes (WithPivot):
//   - PivotPartial:  largest absolute candidate in the column (default).
//   - PivotImplicit: candidates scaled by their row's largest entry.
//   - PivotNone:     take the diagonal as-is; only for matrices known to
//     need no row exchanges.
//
// Determinism:
//   - Factorization is a fixed elimination order; identical inputs and
//     options give identical factors, permutation and determinant.
//
// Numerical notes:
//   - Division by a zero pivot is deflected through a tiny perturbation
//     (see safeDivide) instead of producing Inf/NaN, so singular inputs
//     factor "successfully" with a determinant of zero. Callers deciding
//     solvability should test Determinant, not recover from panics.
//
// AI-Hints:
//   - The factorization aliases the input: mutating the source matrix after
//     New invalidates the Decomposition. Pass a Clone to keep the original.
//   - Solve overwrites its argument with the solution; use SolveVec for the
//     common single-vector case.
package lu
