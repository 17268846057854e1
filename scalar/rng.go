// SPDX-License-Identifier: MIT

// Package scalar - seeded sources for Random and RandomInt.
//
// A *rand.Rand returned here satisfies Source and plugs in through WithSource.
// Unseeded calls never reach this file; they read math/rand's global state.
//
// A *rand.Rand is not safe for concurrent use. Hand each goroutine its own,
// split off a shared root with DeriveSource.
package scalar

import "math/rand"

// DefaultSeed replaces a zero seed in NewSource and seeds a nil root in DeriveSource.
const DefaultSeed int64 = 1

// NewSource returns a *rand.Rand seeded with seed, or with DefaultSeed when
// seed is 0.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// splitSeed scrambles a root draw with a stream id (SplitMix64 finalizer),
// so streams 0, 1, 2... start far apart even from the same root draw.
func splitSeed(root int64, stream uint64) int64 {
	z := uint64(root) + (stream+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return int64(z ^ (z >> 31))
}

// DeriveSource splits a new source off root for the given stream id.
//
// Each call draws once from root, so the i-th derivation depends only on the
// draws before it: appending streams leaves earlier ones unchanged. A nil root
// stands for DefaultSeed and does not advance anything.
//
// Example:
//
//	root := NewSource(3)
//	for i := range dots {
//		dots[i].src = DeriveSource(root, uint64(i))
//	}
func DeriveSource(root *rand.Rand, stream uint64) *rand.Rand {
	draw := DefaultSeed
	if root != nil {
		draw = root.Int63()
	}

	return rand.New(rand.NewSource(splitSeed(draw, stream)))
}
