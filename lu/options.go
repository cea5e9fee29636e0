// SPDX-License-Identifier: MIT
// Package lu: functional options for the factorization.

package lu

// PivotMode selects how New chooses the pivot row at each elimination step.
type PivotMode int

const (
	// PivotPartial picks the row with the largest absolute candidate in the
	// current column. The default.
	PivotPartial PivotMode = iota
	// PivotImplicit scales each candidate by the largest absolute entry of
	// its row before comparing, compensating for badly scaled rows.
	PivotImplicit
	// PivotNone performs no row exchanges. Factorization quality then
	// depends entirely on the input's diagonal.
	PivotNone
)

// Stable panic-message constant for invalid construction parameters.
const panicPivotModeInvalid = "lu: WithPivot: unknown pivot mode"

// Option adjusts factorization behaviour at New time.
type Option func(*options)

type options struct {
	pivot PivotMode
}

// WithPivot overrides the pivot-selection strategy.
// Panics with panicPivotModeInvalid when mode is not one of the declared
// PivotMode constants.
func WithPivot(mode PivotMode) Option {
	if mode < PivotPartial || mode > PivotNone {
		panic(panicPivotModeInvalid)
	}
	return func(o *options) { o.pivot = mode }
}

// gatherOptions resolves opts over the defaults.
func gatherOptions(opts ...Option) options {
	o := options{pivot: PivotPartial}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
