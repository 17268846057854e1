// Package ranger is a small arithmetic toolkit for numeric intervals:
// normalizing values into a range, producing values from a normalized
// position, remapping between ranges, curve-shaped random sampling, and
// interval arithmetic (clamp, wrap, containment, subdivision).
//
// ✨ Two layers, leaves first:
//
//	scalar/ : stateless functions over explicit (min, max[, curve]) bounds
//	ranges/ : Range, a mutable (min, max, curve) value with fluent mutators,
//	          delegating every query to scalar and adding Slice and Divide
//
// A curve is any func(float64) float64. The library never inspects curves
// and ships none besides Linear; bring your own (for example from an easing
// package).
//
// Quick example:
//
//	r := ranges.New(0, 100)
//	r.GetValue(0.25)              // 25
//	r.MapFloat(32, 0, 64)         // 50
//	r.Divide(4)                   // [0,25] [25,50] [50,75] [75,100]
//
// Nothing validates input and nothing panics: an inverted range has a
// negative length, a zero-length wrap is NaN. Strict callers use
// scalar.Validate and the *Checked helpers.
//
//	go get github.com/katalvlaran/ranger
package ranger
