package circular_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathanielatom/clockwork/circular"
	"github.com/nathanielatom/clockwork/tensor"
)

const angleTol = 1e-9

// TestPrincipalAngle_Degrees walks the reference table of degree inputs,
// including many-turn magnitudes in both directions.
func TestPrincipalAngle_Degrees(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"two turns positive", 790.234, 70.234},
		{"two turns plus", 884, 164},
		{"three quarters", 270, -90},
		{"negative wrap", -444, -84},
		{"negative boundary stays", -180, -180},
		{"positive boundary flips", 180, -180},
		{"full turn", 360, 0},
		{"negative five quarters", -450, -90},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := circular.PrincipalAngle(tc.in, circular.InDegrees())
			assert.InDelta(t, tc.want, got, angleTol, "PrincipalAngle(%v)", tc.in)
		})
	}
}

// TestPrincipalAngle_BoundaryFlip reproduces the documented floating-point
// behavior just past the branch cut: 180+1e-12 lands on the negative side.
func TestPrincipalAngle_BoundaryFlip(t *testing.T) {
	got := circular.PrincipalAngle(180.000000000001, circular.InDegrees())
	assert.Negative(t, got, "a hair past +180 must wrap to the negative branch")
	assert.InDelta(t, -180, got, 1e-8, "wraps to approximately -180")
}

// TestPrincipalAngle_Radians covers the default radian unit.
func TestPrincipalAngle_Radians(t *testing.T) {
	got := circular.PrincipalAngle(27 * math.Pi / 4)
	assert.InDelta(t, 3*math.Pi/4, got, 1e-12, "27π/4 reduces to 3π/4")

	assert.InDelta(t, 0, circular.PrincipalAngle(2*math.Pi), 1e-12, "full radian turn reduces to 0")
}

// TestPrincipalAngle_CustomArc rescales the circle to hours and to days of year.
func TestPrincipalAngle_CustomArc(t *testing.T) {
	assert.InDelta(t, 2.5, circular.PrincipalAngle(14.5, circular.WithArc(12)), angleTol,
		"14.5 on a 12-arc reduces to 2.5")
	assert.InDelta(t, 142, circular.PrincipalAngle(872.4844, circular.WithArc(365.2422)), angleTol,
		"872.4844 days reduce to day 142")
}

// TestPrincipalAngle_HalfOpenInterval checks the [-half, half) contract
// across units: exactly +half maps to -half.
func TestPrincipalAngle_HalfOpenInterval(t *testing.T) {
	assert.Equal(t, -180.0, circular.PrincipalAngle(180, circular.InDegrees()), "180° → -180°")
	assert.Equal(t, -6.0, circular.PrincipalAngle(6, circular.WithArc(12)), "+half of a 12-arc → -half")
}

// TestPrincipalAngleTensor applies the reduction element-wise and
// preserves shape and order.
func TestPrincipalAngleTensor(t *testing.T) {
	in, err := tensor.FromSlice([]float64{790.234, 884, 270, -444})
	require.NoError(t, err)

	out, err := circular.PrincipalAngleTensor(in, circular.InDegrees())
	require.NoError(t, err)
	require.Equal(t, []int{4}, out.Shape(), "shape preserved")

	want := []float64{70.234, 164, -90, -84}
	for i, w := range want {
		got, err := out.At(i)
		require.NoError(t, err)
		assert.InDelta(t, w, got, angleTol, "element %d", i)
	}
}

// TestPrincipalAngleTensor_Nil rejects a nil operand.
func TestPrincipalAngleTensor_Nil(t *testing.T) {
	_, err := circular.PrincipalAngleTensor(nil, circular.InDegrees())
	assert.ErrorIs(t, err, circular.ErrNilTensor, "nil tensor must error")
}
