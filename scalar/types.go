// SPDX-License-Identifier: MIT

package scalar

import "golang.org/x/exp/constraints"

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Curve maps a normalized position (nominally 0.0 to 1.0) to a transformed
// position. Curves are called, never inspected; a nil Curve behaves as Linear.
type Curve func(x float64) float64

// Linear is the default pass-through curve.
var Linear Curve = func(x float64) float64 { return x }

// Interval is anything exposing a lower and an upper bound.
type Interval interface {
	Bounds() (min, max float64)
}

// Positioner is an Interval that can compute the position of a value inside
// itself. Map uses it on the source side.
type Positioner interface {
	Interval
	GetPosition(x float64, opts ...Option) float64
}

// Bounds is a plain (Min, Max) pair implementing Positioner.
// It lets callers use Map and ContainsRange without a stateful range type.
type Bounds struct {
	Min float64
	Max float64
}

// Bounds returns b.Min and b.Max.
func (b Bounds) Bounds() (min, max float64) { return b.Min, b.Max }

// GetPosition returns the position of x in b. See GetPosition.
func (b Bounds) GetPosition(x float64, opts ...Option) float64 {
	return GetPosition(x, b.Min, b.Max, opts...)
}
