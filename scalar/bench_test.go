// SPDX-License-Identifier: MIT

package scalar_test

import (
	"testing"

	"github.com/katalvlaran/ranger/scalar"
)

var sink float64

func BenchmarkGetValue(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = scalar.GetValue(0.25, -10, 10)
	}
}

func BenchmarkGetValue_Curve(b *testing.B) {
	opt := scalar.WithCurve(square)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = scalar.GetValue(0.25, -10, 10, opt)
	}
}

func BenchmarkMapFloat(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = scalar.MapFloat(float64(i&63), 0, 64, 0, 100)
	}
}

func BenchmarkRandom_Seeded(b *testing.B) {
	opt := scalar.WithSeed(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = scalar.Random(0, 1, opt)
	}
}

func BenchmarkWrap(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = scalar.Wrap(float64(i), 0, 360)
	}
}
