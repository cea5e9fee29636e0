// SPDX-License-Identifier: MIT

// Package multiply: functional configuration for the kernels.
//
// Design goals:
//   - Deterministic behavior: no global state; every option is explicit.
//   - Safe by construction: panic only on nonsensical parameters
//     (programmer error), with stable messages.
//   - Options fields are unexported; kernels consume ...Option and resolve
//     against per-kernel defaults.
package multiply

// Defaults - single source of truth for zero-value behavior.
const (
	// DefaultBlockSize is the tile edge used by Blocked and ReverseBlocked
	// when no WithBlockSize option is given.
	DefaultBlockSize = 16

	// DefaultBufferedBlockSize is the tile edge used by Buffered and
	// Parallel; larger than DefaultBlockSize because the scratch copies
	// amortize better over bigger tiles.
	DefaultBufferedBlockSize = 128

	// DefaultWorkers is the goroutine pool size used by Parallel.
	DefaultWorkers = 32
)

const (
	panicBlockSizeInvalid = "multiply: WithBlockSize: block size must be >= 1"
	panicWorkersInvalid   = "multiply: WithWorkers: worker count must be >= 1"
)

// Option mutates kernel options. Safe to apply repeatedly.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// Zero fields mean "use the kernel's default".
type options struct {
	block   int
	workers int
}

// WithBlockSize overrides the tile edge of the blocked kernels.
// Panics with a stable message when n < 1.
func WithBlockSize(n int) Option {
	if n < 1 {
		panic(panicBlockSizeInvalid)
	}
	return func(o *options) { o.block = n }
}

// WithWorkers overrides the Parallel pool size.
// Panics with a stable message when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}
	return func(o *options) { o.workers = n }
}

// gatherOptions resolves opts against the given per-kernel block default.
// Complexity: O(len(opts)).
func gatherOptions(defBlock int, opts ...Option) options {
	o := options{block: defBlock, workers: DefaultWorkers}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
