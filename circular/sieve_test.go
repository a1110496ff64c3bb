package circular_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathanielatom/clockwork/circular"
	"github.com/nathanielatom/clockwork/tensor"
)

// TestSieve_Degrees walks the reference sector table, including sectors
// straddling the branch cut and angles of many-turn magnitude.
func TestSieve_Degrees(t *testing.T) {
	cases := []struct {
		name             string
		angle, start, end float64
		want             bool
	}{
		{"reduced inside", 790.234, 25, 92, true},
		{"reduced outside", 884, 25, 92, false},
		{"negative branch outside", 270, 25, 92, false},
		{"negative wrap outside", -444, 25, 92, false},
		{"branch cut sector catches -180", -180, 170, -170, true},
		{"branch cut sector catches just past +180", 180.000000000001, 170, -170, true},
		{"boundary inclusive start", 25, 25, 92, true},
		{"boundary inclusive end", 92, 25, 92, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := circular.Sieve(tc.angle, tc.start, tc.end, circular.InDegrees())
			assert.Equal(t, tc.want, got, "Sieve(%v, %v, %v)", tc.angle, tc.start, tc.end)
		})
	}
}

// TestSieve_Radians: the default unit, with a wrapping sector.
func TestSieve_Radians(t *testing.T) {
	assert.True(t, circular.Sieve(27*math.Pi/4, math.Pi/2, 5*math.Pi/4),
		"27π/4 reduces into [π/2, 5π/4]")
}

// TestSieve_CustomArc rescales the circle before sieving.
func TestSieve_CustomArc(t *testing.T) {
	assert.False(t, circular.Sieve(14.5, 3, 4.20, circular.WithArc(12)),
		"14.5 reduces to 2.5, outside [3, 4.2] on a 12-arc")
	assert.False(t, circular.Sieve(872.4844, 151, 192, circular.WithArc(365.2422)),
		"day 142 is outside [151, 192]")
}

// TestSieve_OpenBounds: exclusive boundaries reject exact endpoints but
// keep interior membership, on both wrapping and non-wrapping sectors.
func TestSieve_OpenBounds(t *testing.T) {
	assert.False(t, circular.Sieve(25, 25, 92, circular.InDegrees(), circular.OpenBounds()),
		"exact start excluded")
	assert.False(t, circular.Sieve(92, 25, 92, circular.InDegrees(), circular.OpenBounds()),
		"exact end excluded")
	assert.True(t, circular.Sieve(50, 25, 92, circular.InDegrees(), circular.OpenBounds()),
		"interior retained")

	assert.False(t, circular.Sieve(170, 170, -170, circular.InDegrees(), circular.OpenBounds()),
		"exact start of wrapping sector excluded")
	assert.True(t, circular.Sieve(-180, 170, -170, circular.InDegrees(), circular.OpenBounds()),
		"interior of wrapping sector retained")
}

// TestSieveTensor_ShapeMismatch: the one explicit validation in the
// system — sector bounds must share a shape, and the error names both.
func TestSieveTensor_ShapeMismatch(t *testing.T) {
	angles := tensor.Scalar(0)
	start, err := tensor.FromSlice([]float64{0, 90})
	require.NoError(t, err)
	end, err := tensor.FromSlice([]float64{10, 100, 190})
	require.NoError(t, err)

	_, err = circular.SieveTensor(angles, start, end, circular.InDegrees())
	require.ErrorIs(t, err, circular.ErrShapeMismatch, "mismatched bounds must error")
	assert.Contains(t, err.Error(), "[2]", "error names the start shape")
	assert.Contains(t, err.Error(), "[3]", "error names the end shape")
}

// TestSieveTensor_ScalarAngleBroadcast: a scalar angle is tested against
// every sector, with the branch-cut decision made per pair.
func TestSieveTensor_ScalarAngleBroadcast(t *testing.T) {
	angles := tensor.Scalar(0)
	start, err := tensor.FromSlice([]float64{-10, 100, 170})
	require.NoError(t, err)
	end, err := tensor.FromSlice([]float64{10, 120, -170})
	require.NoError(t, err)

	mask, err := circular.SieveTensor(angles, start, end, circular.InDegrees())
	require.NoError(t, err)
	require.Equal(t, []int{3}, mask.Shape(), "result follows the sector shape")

	assert.Equal(t, []bool{true, false, false}, mask.Raw(),
		"0° is inside [-10,10], outside [100,120], outside the wrapping [170,-170]")
}

// TestSieveTensor_VectorAngles: array angles against one scalar sector.
func TestSieveTensor_VectorAngles(t *testing.T) {
	angles, err := tensor.FromSlice([]float64{790.234, 884, 270, -444})
	require.NoError(t, err)
	start := tensor.Scalar(25)
	end := tensor.Scalar(92)

	mask, err := circular.SieveTensor(angles, start, end, circular.InDegrees())
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false, false}, mask.Raw(), "matches the scalar table")
	assert.Equal(t, 1, mask.Count(), "one angle inside")
}

// TestSieveTensor_Grid: a 2-D angle grid against a scalar sector keeps
// the grid shape.
func TestSieveTensor_Grid(t *testing.T) {
	angles, err := tensor.FromRows([][]float64{{30, 100}, {50, -30}})
	require.NoError(t, err)

	mask, err := circular.SieveTensor(angles, tensor.Scalar(25), tensor.Scalar(92), circular.InDegrees())
	require.NoError(t, err)
	require.Equal(t, []int{2, 2}, mask.Shape())

	at := func(i, j int) bool {
		v, err := mask.At(i, j)
		require.NoError(t, err)
		return v
	}
	assert.True(t, at(0, 0), "30 inside")
	assert.False(t, at(0, 1), "100 outside")
	assert.True(t, at(1, 0), "50 inside")
	assert.False(t, at(1, 1), "-30 outside")
}

// TestSieveTensor_AllScalar: rank-0 operands produce a rank-0 mask that
// unwraps with Item.
func TestSieveTensor_AllScalar(t *testing.T) {
	mask, err := circular.SieveTensor(tensor.Scalar(70), tensor.Scalar(25), tensor.Scalar(92),
		circular.InDegrees())
	require.NoError(t, err)
	require.Equal(t, 0, mask.Rank(), "all-scalar input keeps rank 0")

	got, err := mask.Item()
	require.NoError(t, err)
	assert.True(t, got, "70 inside [25, 92]")
}

// TestSieveTensor_Nil rejects nil operands.
func TestSieveTensor_Nil(t *testing.T) {
	_, err := circular.SieveTensor(nil, tensor.Scalar(0), tensor.Scalar(1))
	assert.ErrorIs(t, err, circular.ErrNilTensor)
}
