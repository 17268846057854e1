// SPDX-License-Identifier: MIT

package scalar_test

import (
	"testing"

	"github.com/katalvlaran/ranger/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolve_Defaults verifies the zero configuration.
func TestResolve_Defaults(t *testing.T) {
	o := scalar.Resolve()

	assert.False(t, o.HasCurve(), "no curve supplied")
	require.NotNil(t, o.Curve(), "effective curve is never nil")
	assert.Equal(t, 0.42, o.Curve()(0.42), "default curve is Linear")
	require.NotNil(t, o.Source(), "effective source is never nil")

	u := o.Source().Float64()
	assert.GreaterOrEqual(t, u, 0.0)
	assert.Less(t, u, 1.0)
}

// TestResolve_LastWriterWins ensures options apply in order.
func TestResolve_LastWriterWins(t *testing.T) {
	double := func(x float64) float64 { return 2 * x }

	o := scalar.Resolve(scalar.WithCurve(square), scalar.WithCurve(double))
	assert.True(t, o.HasCurve())
	assert.Equal(t, 1.0, o.Curve()(0.5))

	o = scalar.Resolve(scalar.WithSource(fixedSource(0.1)), scalar.WithSource(fixedSource(0.2)))
	assert.Equal(t, 0.2, o.Source().Float64())
}

// TestResolve_NilIsNoOp verifies nil curves, sources and options are ignored.
func TestResolve_NilIsNoOp(t *testing.T) {
	o := scalar.Resolve(scalar.WithCurve(square), scalar.WithCurve(nil), nil)
	assert.True(t, o.HasCurve())
	assert.Equal(t, 0.25, o.Curve()(0.5), "WithCurve(nil) keeps the previous curve")

	o = scalar.Resolve(scalar.WithSource(fixedSource(0.3)), scalar.WithSource(nil))
	assert.Equal(t, 0.3, o.Source().Float64(), "WithSource(nil) keeps the previous source")
}

// TestWithSeed_StreamContinues checks that a reused WithSeed option advances
// one stream rather than restarting it.
func TestWithSeed_StreamContinues(t *testing.T) {
	opt := scalar.WithSeed(11)
	ref := scalar.NewSource(11)

	for i := 0; i < 5; i++ {
		assert.Equal(t, ref.Float64(), scalar.Resolve(opt).Source().Float64())
	}
}
