// SPDX-License-Identifier: MIT

// Package ranges provides Range, a mutable (min, max, curve) value with fluent
// mutators and methods bound to its own bounds and curve.
//
// Every query forwards to package scalar, supplying r.Min, r.Max and, unless
// overridden with WithCurve, r.Curve. On top of that Range adds two
// compositions:
//
//   - Slice: count evenly spaced values, both endpoints inclusive.
//   - Divide: count contiguous sub-ranges, each carrying r.Curve.
//
// Like package scalar, nothing here validates its input or returns errors:
// min may exceed max, and degenerate input yields NaN/Inf or a small fallback
// slice. Validate is the opt-in strict check.
//
// Usage:
//
//	r := ranges.New(0, 100)
//	r.Shift(10).Expand(5)        // [5, 115]
//	v := r.GetValue(0.5)         // 60
//	xs := r.Slice(5)             // [5 32.5 60 87.5 115]
//	parts := r.Divide(4)         // 4 sub-ranges of length 27.5
//
// A *Range is not safe for concurrent mutation; distinct ranges are
// independent. Clone and Copy share the curve by reference.
package ranges
