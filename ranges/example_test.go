// SPDX-License-Identifier: MIT

package ranges_test

import (
	"fmt"

	"github.com/fogleman/ease"
	"github.com/katalvlaran/ranger/ranges"
)

// ExampleRange_Divide lays out four equal columns across 400 pixels.
func ExampleRange_Divide() {
	for _, col := range ranges.New(0, 400).Divide(4) {
		fmt.Println(col)
	}
	// Output:
	// [0, 100]
	// [100, 200]
	// [200, 300]
	// [300, 400]
}

// ExampleRange_Slice samples five stops with an ease-in curve.
func ExampleRange_Slice() {
	r := ranges.New(0, 16, ranges.WithCurve(ease.InQuad))
	fmt.Println(r.Slice(5))
	fmt.Println(r.Slice(5, ranges.WithCurve(ranges.Linear)))
	// Output:
	// [0 1 4 9 16]
	// [0 4 8 12 16]
}

// ExampleRange_Map converts a 0..1 slider position into a hue angle.
func ExampleRange_Map() {
	hue := ranges.New(0, 360)
	slider := ranges.New(0, 1)
	fmt.Println(hue.Map(0.25, slider))
	fmt.Println(hue.Wrap(450))
	// Output:
	// 90
	// 90
}

// ExampleRange_FromSizeAndCenter builds a centered interval and mutates it.
func ExampleRange_FromSizeAndCenter() {
	r := new(ranges.Range).FromSizeAndCenter(40, 40)
	fmt.Println(r)
	fmt.Println(r.Shift(-20).Contract(5))
	// Output:
	// [20, 60]
	// [5, 35]
}
