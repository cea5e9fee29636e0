// SPDX-License-Identifier: MIT

// Package mat: functional configuration for Dense construction.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer
//     error), with stable messages.
//   - Options fields are unexported; public constructors consume ...Option.
package mat

// Defaults - single source of truth for zero-value behavior.
const (
	// DefaultOrder is the storage order used when none is requested.
	DefaultOrder = RowMajor
)

const panicExtentNotStatic = "mat: WithExtent: extent axes must be static or Dynamic, not negative"

// Option mutates construction options. Safe to apply repeatedly.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	order  Order
	extent Extent // declared extent checked against the actual shape
}

// WithRowMajor selects row-major storage (the default).
func WithRowMajor() Option {
	return func(o *options) { o.order = RowMajor }
}

// WithColMajor selects column-major storage.
func WithColMajor() Option {
	return func(o *options) { o.order = ColMajor }
}

// WithExtent declares the extent the constructed matrix must satisfy.
// Static axes are verified against the actual shape at construction
// (Extent.Resolve); a disagreement raises ErrExtentMismatch. Dynamic axes
// accept any dimension.
func WithExtent(e Extent) Option {
	if (e.Rows < 0 && !e.Rows.IsDynamic()) || (e.Cols < 0 && !e.Cols.IsDynamic()) {
		panic(panicExtentNotStatic)
	}
	return func(o *options) { o.extent = e }
}

// gatherOptions resolves the option list against the documented defaults.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) options {
	o := options{order: DefaultOrder, extent: DynamicExtent()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
