// SPDX-License-Identifier: MIT

package ranges

import "github.com/katalvlaran/ranger/scalar"

// Slice returns count values spread over r, both endpoints inclusive:
// values[i] = r.GetValue(i/(count-1)).
//
// Behavior highlights:
//   - values[0] == Min and values[count-1] == Max exactly under any curve that
//     maps 0 to 0 and 1 to 1.
//   - count < 2 returns exactly [Min, Max]; one sample cannot hold both endpoints.
//   - WithCurve overrides r.Curve for the spacing.
//
// Complexity: O(count) time and space.
func (r *Range) Slice(count int, opts ...Option) []float64 {
	if count < 2 {
		return []float64{r.Min, r.Max}
	}

	values := make([]float64, count)
	last := float64(count - 1)
	curve := r.effectiveCurve(opts)
	for i := range values {
		values[i] = scalar.GetValue(float64(i)/last, r.Min, r.Max, curve)
	}

	return values
}

// Divide partitions r into count contiguous sub-ranges.
//
// Behavior highlights:
//   - Boundary i is r.GetValue(i/count); WithCurve overrides r.Curve for the
//     boundaries only. Every sub-range carries r.Curve, never the override.
//   - Boundaries are computed once, so parts[i].Max == parts[i+1].Min exactly,
//     and parts[0].Min == Min, parts[count-1].Max == Max.
//   - count <= 1 returns a single clone of r.
//
// Complexity: O(count) time and space.
func (r *Range) Divide(count int, opts ...Option) []*Range {
	if count <= 1 {
		return []*Range{r.Clone()}
	}

	edges := make([]float64, count+1)
	n := float64(count)
	curve := r.effectiveCurve(opts)
	for i := range edges {
		edges[i] = scalar.GetValue(float64(i)/n, r.Min, r.Max, curve)
	}

	parts := make([]*Range, count)
	for i := range parts {
		parts[i] = &Range{Min: edges[i], Max: edges[i+1], Curve: r.Curve}
	}

	return parts
}
