// SPDX-License-Identifier: MIT

package ranges

import (
	"fmt"

	"github.com/katalvlaran/ranger/scalar"
)

// New returns a range [min, max]. The curve defaults to Linear; set another
// with WithCurve. No validation is performed.
func New(min, max float64, opts ...Option) *Range {
	return &Range{Min: min, Max: max, Curve: scalar.Resolve(opts...).Curve()}
}

// FromSizeAndCenter sets Min to size*-0.5 + center and Max to size*0.5 + center.
// The curve is replaced only when WithCurve is given.
func (r *Range) FromSizeAndCenter(size, center float64, opts ...Option) *Range {
	r.Min = size*-0.5 + center
	r.Max = size*0.5 + center
	r.setCurveFrom(opts)

	return r
}

// Set sets Min and Max. The curve is replaced only when WithCurve is given.
func (r *Range) Set(min, max float64, opts ...Option) *Range {
	r.Min = min
	r.Max = max
	r.setCurveFrom(opts)

	return r
}

// SetMin sets Min. Mostly exists for chaining.
func (r *Range) SetMin(min float64) *Range {
	r.Min = min

	return r
}

// SetMax sets Max. Mostly exists for chaining.
func (r *Range) SetMax(max float64) *Range {
	r.Max = max

	return r
}

// SetCurve sets the default curve. nil means Linear.
func (r *Range) SetCurve(c Curve) *Range {
	r.Curve = c

	return r
}

// Scale multiplies Min and Max by s.
func (r *Range) Scale(s float64) *Range {
	r.Min *= s
	r.Max *= s

	return r
}

// Expand subtracts d from Min and adds it to Max.
func (r *Range) Expand(d float64) *Range {
	r.Min -= d
	r.Max += d

	return r
}

// Contract adds d to Min and subtracts it from Max.
// If d exceeds half the length the range inverts; this is not corrected.
func (r *Range) Contract(d float64) *Range {
	r.Min += d
	r.Max -= d

	return r
}

// Shift adds d to both bounds.
func (r *Range) Shift(d float64) *Range {
	r.Min += d
	r.Max += d

	return r
}

// Copy copies other's bounds and curve into r. The curve is shared by reference.
func (r *Range) Copy(other *Range) *Range {
	r.Min = other.Min
	r.Max = other.Max
	r.Curve = other.Curve

	return r
}

// Clone returns a new range with the same bounds and curve reference.
func (r *Range) Clone() *Range {
	return &Range{Min: r.Min, Max: r.Max, Curve: r.Curve}
}

// IsEmpty reports whether Min == Max.
func (r *Range) IsEmpty() bool {
	return r.Min == r.Max
}

// MakeEmpty sets Min and Max to 0.
func (r *Range) MakeEmpty() *Range {
	r.Min = 0
	r.Max = 0

	return r
}

// Center returns the midpoint (Min+Max)/2.
func (r *Range) Center() float64 {
	return (r.Min + r.Max) * 0.5
}

// Bounds returns Min and Max.
func (r *Range) Bounds() (min, max float64) {
	return r.Min, r.Max
}

// String formats r as "[min, max]".
func (r *Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}

// Validate checks r with scalar.Validate: finite bounds and Max >= Min.
func (r *Range) Validate() error {
	return scalar.Validate(r.Min, r.Max)
}

// setCurveFrom replaces r.Curve only if opts carry a curve.
func (r *Range) setCurveFrom(opts []Option) {
	if o := scalar.Resolve(opts...); o.HasCurve() {
		r.Curve = o.Curve()
	}
}
