// SPDX-License-Identifier: MIT

// Package scalar: functional configuration for the optional trailing
// arguments of every operation. This file defines:
//   - Option / Options (functional options with internal state),
//   - WithX constructors,
//   - Resolve, which applies options in order and exposes the effective values.
//
// Design goals:
//   - No dead switches: each option changes the result of at least one operation.
//   - Zero value works: with no options every operation uses Linear and the
//     package-level math/rand generator.
//   - Never panic: nil arguments are ignored instead of rejected.
package scalar

import "math/rand"

// Option mutates internal options. Options are applied in order;
// the last writer wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; read them through Curve, HasCurve and Source.
type Options struct {
	curve  Curve  // nil ⇒ Linear
	source Source // nil ⇒ package-level math/rand
}

// Source is a uniform random generator returning values in [0, 1).
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// globalSource forwards to the package-level math/rand generator, which is
// goroutine-safe and randomly seeded.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// WithCurve overrides the curve used by an operation.
//
// Behavior highlights:
//   - WithCurve(nil) is a no-op, so the default curve stays in effect:
//     Linear for package functions, the receiver's own curve for range methods.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithCurve(c Curve) Option {
	return func(o *Options) {
		if c != nil {
			o.curve = c
		}
	}
}

// WithSource sets the random source used by Random and RandomInt.
// WithSource(nil) is a no-op.
//
// Notes:
//   - A *rand.Rand is NOT goroutine-safe. Do not share one across goroutines;
//     derive independent streams with DeriveSource.
func WithSource(src Source) Option {
	return func(o *Options) {
		if src != nil {
			o.source = src
		}
	}
}

// WithSeed uses a deterministic stream seeded with seed (seed==0 ⇒ DefaultSeed).
//
// The stream is created once, when WithSeed is called; reusing the returned
// Option across calls continues the same stream instead of restarting it.
func WithSeed(seed int64) Option {
	return WithSource(NewSource(seed))
}

// Resolve applies opts in order on top of the defaults.
//
// Complexity:
//   - Time O(len(opts)), Space O(1).
func Resolve(opts ...Option) Options {
	var o Options
	for _, set := range opts {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}

// Curve returns the effective curve; never nil.
func (o Options) Curve() Curve {
	if o.curve == nil {
		return Linear
	}

	return o.curve
}

// HasCurve reports whether a curve was supplied via WithCurve.
func (o Options) HasCurve() bool { return o.curve != nil }

// Source returns the effective random source; never nil.
func (o Options) Source() Source {
	if o.source == nil {
		return globalSource{}
	}

	return o.source
}
