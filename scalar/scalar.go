// SPDX-License-Identifier: MIT

package scalar

import (
	"math"

	"golang.org/x/exp/constraints"
)

// ---------- measurements ----------

// Length returns max - min.
// No validation is performed; an inverted range has a negative length.
func Length[T Number](min, max T) T {
	return max - min
}

// IsValid reports whether max >= min.
func IsValid[T constraints.Ordered](min, max T) bool {
	return max >= min
}

// GetPosition returns the position of x in [min, max], passed through the curve.
//
// The value is not clamped: x outside the range yields a position
// proportionally outside [0, 1]. A zero-length range yields ±Inf or NaN.
//
// Example:
//
//	GetPosition(15, 10, 20) // 0.5
func GetPosition(x, min, max float64, opts ...Option) float64 {
	curve := Resolve(opts...).Curve()

	return curve((x - min) / Length(min, max))
}

// GetValue returns the value at position x (nominally 0.0 to 1.0) in [min, max].
// The result is not clamped. A curved position of exactly 0 or 1 yields min or
// max exactly.
//
// Example:
//
//	GetValue(0.5, 10, 20) // 15
func GetValue(x, min, max float64, opts ...Option) float64 {
	curve := Resolve(opts...).Curve()

	return lerp(curve(x), min, max)
}

// lerp returns min + t*(max-min), pinned to max at t == 1 so the far end
// does not drift by a rounding step.
func lerp(t, min, max float64) float64 {
	if t == 1 {
		return max
	}

	return min + t*Length(min, max)
}

// ---------- mapping ----------

// Map maps x from source to the value at the same position in target.
//
// Behavior highlights:
//   - The source is always sampled linearly; its own curve is bypassed.
//   - The curve from opts (default Linear) is applied on the target side.
//   - Nothing is clamped.
func Map(x float64, source Positioner, target Interval, opts ...Option) float64 {
	min, max := target.Bounds()

	return GetValue(source.GetPosition(x, WithCurve(Linear)), min, max, opts...)
}

// MapFloat is Map with raw bounds instead of range values.
//
// Example:
//
//	MapFloat(32, 0, 64, 0, 100) // 50
func MapFloat(x, sourceMin, sourceMax, targetMin, targetMax float64, opts ...Option) float64 {
	return GetValue(GetPosition(x, sourceMin, sourceMax), targetMin, targetMax, opts...)
}

// ---------- random ----------

// Random returns min + curve(u) * (max - min) where u is uniform in [0, 1).
// The curve shapes the distribution: Linear is uniform, a curve biased toward
// 0 or 1 skews samples toward min or max.
func Random(min, max float64, opts ...Option) float64 {
	o := Resolve(opts...)

	return lerp(o.Curve()(o.Source().Float64()), min, max)
}

// RandomInt returns floor(Random(min, max, opts...)).
//
// Under Linear the result is never below min and never equals max. This is a
// convention, not a guarantee: a curve that reaches 1 (or beyond) can return max.
//
// The conversion to int is unspecified when the sample is NaN, ±Inf or outside
// the int range (non-finite bounds, or a curve returning NaN or ±Inf). It does
// not panic; use Validate on the bounds when that matters.
func RandomInt(min, max float64, opts ...Option) int {
	return int(math.Floor(Random(min, max, opts...)))
}

// ---------- common operations ----------

// Clamp returns min if x < min, max if x > max, and x otherwise.
// Inverted bounds are not swapped; the result then depends on comparison order.
func Clamp[T constraints.Ordered](x, min, max T) T {
	if x < min {
		return min
	}
	if x > max {
		return max
	}

	return x
}

// Wrap wraps x around [min, max), like the modulo operator for arbitrary ranges.
// A zero-length range yields NaN.
//
// Example:
//
//	Wrap(12, 0, 10)  // 2
//	Wrap(-1, 0, 10)  // 9
func Wrap(x, min, max float64) float64 {
	l := Length(min, max)

	return math.Mod(math.Mod(x-min, l)+l, l) + min
}

// Contains reports whether min <= x <= max (both ends inclusive).
func Contains[T constraints.Ordered](x, min, max T) bool {
	return x >= min && x <= max
}

// ContainsRange reports whether both bounds of source lie in target.
//
// Containment is pointwise: each source bound is checked on its own, so an
// inverted source is judged by its two endpoints only.
func ContainsRange(source, target Interval) bool {
	sMin, sMax := source.Bounds()
	tMin, tMax := target.Bounds()

	return Contains(sMin, tMin, tMax) && Contains(sMax, tMin, tMax)
}
