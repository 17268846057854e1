// SPDX-License-Identifier: MIT

package ranges

import "github.com/katalvlaran/ranger/scalar"

// withCurve puts r.Curve in front of the caller's options, so an explicit
// WithCurve still wins.
func (r *Range) withCurve(opts []Option) []Option {
	return append([]Option{WithCurve(r.Curve)}, opts...)
}

// effectiveCurve resolves r.Curve against opts once, for loops that would
// otherwise rebuild the option list per value.
func (r *Range) effectiveCurve(opts []Option) Option {
	if len(opts) == 0 {
		return WithCurve(r.Curve)
	}

	return WithCurve(scalar.Resolve(r.withCurve(opts)...).Curve())
}

// Length returns Max - Min. See scalar.Length.
func (r *Range) Length() float64 {
	return scalar.Length(r.Min, r.Max)
}

// GetPosition returns the position of x in r. See scalar.GetPosition.
func (r *Range) GetPosition(x float64, opts ...Option) float64 {
	return scalar.GetPosition(x, r.Min, r.Max, r.withCurve(opts)...)
}

// GetValue returns the value at position x in r. See scalar.GetValue.
func (r *Range) GetValue(x float64, opts ...Option) float64 {
	return scalar.GetValue(x, r.Min, r.Max, r.withCurve(opts)...)
}

// Map maps x from source into r. The source is sampled linearly; the curve
// applies on r's side. See scalar.Map.
func (r *Range) Map(x float64, source scalar.Positioner, opts ...Option) float64 {
	return scalar.Map(x, source, r, r.withCurve(opts)...)
}

// MapFloat maps x from [min, max] into r. See scalar.MapFloat.
func (r *Range) MapFloat(x, min, max float64, opts ...Option) float64 {
	return scalar.MapFloat(x, min, max, r.Min, r.Max, r.withCurve(opts)...)
}

// Random returns a random value in r. See scalar.Random.
func (r *Range) Random(opts ...Option) float64 {
	return scalar.Random(r.Min, r.Max, r.withCurve(opts)...)
}

// RandomInt returns a random integer in r. See scalar.RandomInt.
func (r *Range) RandomInt(opts ...Option) int {
	return scalar.RandomInt(r.Min, r.Max, r.withCurve(opts)...)
}

// Clamp clamps x to r. See scalar.Clamp.
func (r *Range) Clamp(x float64) float64 {
	return scalar.Clamp(x, r.Min, r.Max)
}

// Wrap wraps x around r. See scalar.Wrap.
func (r *Range) Wrap(x float64) float64 {
	return scalar.Wrap(x, r.Min, r.Max)
}

// Contains reports whether x lies in r, both ends inclusive.
func (r *Range) Contains(x float64) bool {
	return scalar.Contains(x, r.Min, r.Max)
}

// ContainsRange reports whether both bounds of other lie in r.
// See scalar.ContainsRange.
func (r *Range) ContainsRange(other scalar.Interval) bool {
	return scalar.ContainsRange(other, r)
}
