// Package multiply provides interchangeable matrix-multiplication kernels.
//
// All kernels share one contract: given conformable left (m×k) and right
// (k×n) operands they ACCUMULATE left*right into an m×n mutable output
// (zero it first for a plain product; the Multiply facade does so).
//
//   - Naive           — i,j,k triple loop; the correctness baseline.
//   - Blocked         — fixed-size i/j/k blocks for cache locality.
//   - ReverseBlocked  — k-block outermost; a different reuse pattern.
//   - Buffered        — copies sub-blocks into transposed scratch buffers
//     before accumulating; trades copies for access locality at scale.
//   - Parallel        — partitions the output tiles across a fixed pool of
//     worker goroutines claiming tasks from a shared atomic counter.
//
// Every kernel produces the same logical result; floating-point summation
// order differs between kernels, so compare float results with
// mat.AllClose rather than bit-for-bit.
package multiply
