// SPDX-License-Identifier: MIT

package ranges

import "github.com/katalvlaran/ranger/scalar"

// Aliases so callers only need to import this package.
type (
	// Curve is scalar.Curve.
	Curve = scalar.Curve
	// Option is scalar.Option.
	Option = scalar.Option
)

// Linear is the default pass-through curve.
var Linear = scalar.Linear

// Option constructors re-exported from package scalar.
var (
	WithCurve  = scalar.WithCurve
	WithSource = scalar.WithSource
	WithSeed   = scalar.WithSeed
)

// Range is an interval [Min, Max] with a default curve.
//
// No invariant is enforced: Min may exceed Max. A nil Curve behaves as Linear,
// so the zero value is the empty range (0, 0, Linear).
type Range struct {
	// Min is the lower bound.
	Min float64

	// Max is the upper bound.
	Max float64

	// Curve is applied by default to every position conversion.
	// It is shared by reference with clones and copies, never mutated.
	Curve Curve
}

var (
	_ scalar.Positioner = (*Range)(nil)
	_ scalar.Interval   = (*Range)(nil)
)
