// SPDX-License-Identifier: MIT

// Package scalar provides stateless range arithmetic over explicit bounds.
//
// 🚀 What is a range here?
//
//	A range is just a pair (min, max) plus an optional curve. The curve is a
//	plain func(float64) float64 applied to the normalized position, which
//	lets callers bias conversions away from linear without this package
//	knowing anything about easing.
//
// ✨ Operations:
//   - Length, IsValid: measurements
//   - GetPosition, GetValue: value ⇄ normalized position
//   - Map, MapFloat: remap a value between two ranges
//   - Random, RandomInt: curve-shaped random samples
//   - Clamp, Wrap, Contains: common interval arithmetic
//   - ContainsRange: pointwise containment of two ranges
//
// No validation is performed. Degenerate input never panics and never
// returns an error; it produces the number the formula yields:
//
//	Wrap(x, 5, 5)        // NaN, zero-length range
//	GetPosition(x, 5, 5) // ±Inf or NaN
//	Length(10, 0)        // -10, inverted range
//
// Callers that want to reject such input up front use the opt-in
// validators (Validate, ValidateNonEmpty) or the *Checked variants.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ranger/scalar"
//
//	v := scalar.MapFloat(32, 0, 64, 0, 100)                    // 50
//	p := scalar.GetPosition(15, 10, 20)                        // 0.5
//	r := scalar.Random(0, 1, scalar.WithCurve(square))         // biased toward 0
//	n := scalar.RandomInt(0, 6, scalar.WithSeed(42))           // reproducible
//
// Concurrency:
//
//	Every function is safe for concurrent use. The default random source is
//	the goroutine-safe package-level math/rand generator. A *rand.Rand passed
//	via WithSource or created by WithSeed is NOT goroutine-safe; give each
//	worker its own stream with DeriveSource.
package scalar
