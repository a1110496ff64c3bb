package circular

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"

	"github.com/nathanielatom/clockwork/tensor"
)

// resultantOf computes the resultant vector of a lane of angles: the mean
// of the unit vectors exp(iθ) on the complex plane. It is the single
// source of truth for Mean, Var and Std, so the three always agree.
//
// Reduction policy:
//   - skipNaN=false: NaN angles propagate (cos/sin of NaN are NaN, and the
//     sums follow), matching a plain mean.
//   - skipNaN=true: NaN angles are dropped; a lane with no finite angles
//     (or no angles at all) reduces to the NaN resultant.
//
// Complexity: O(n) time, O(n) transient memory for the component slices.
func resultantOf(vals []float64, a Arc, skipNaN bool) complex128 {
	re := make([]float64, 0, len(vals))
	im := make([]float64, 0, len(vals))
	for _, v := range vals {
		if skipNaN && math.IsNaN(v) {
			continue
		}
		r := a.toRad(v)
		re = append(re, math.Cos(r))
		im = append(im, math.Sin(r))
	}
	if len(re) == 0 {
		return complex(math.NaN(), math.NaN())
	}
	n := float64(len(re))

	return complex(floats.Sum(re)/n, floats.Sum(im)/n)
}

// meanAngle maps a resultant vector back to an angle in arc units.
// The argument of the zero vector is 0 (the atan2(0, 0) convention), so
// exactly cancelling angle sets have mean 0 rather than NaN. The result
// is wrapped onto the half-open principal branch [-half, half).
func meanAngle(c complex128, a Arc) float64 {
	p := a.fromRad(cmplx.Phase(c))
	half := a.Half()
	if p >= half {
		p -= a.Span()
	}
	if p < -half {
		p += a.Span()
	}

	return p
}

// varOf maps a resultant vector to the circular variance 1 − |c|:
// 0 means all angles identical, 1 means complete cancellation.
func varOf(c complex128) float64 { return 1 - cmplx.Abs(c) }

// stdOf maps a resultant vector to the circular standard deviation
// sqrt(−2·ln|c|). A zero resultant gives ln 0 = −Inf and therefore +Inf;
// near-zero resultants saturate around 8.6 for float64 inputs because |c|
// bottoms out near machine epsilon rather than 0.
func stdOf(c complex128) float64 { return math.Sqrt(-2 * math.Log(cmplx.Abs(c))) }

// Mean calculates the circular mean of angles or other circular
// quantities: the argument of the resultant vector, Arg(Σ exp(iθ)/N),
// converted back to the caller's unit. The output is itself a circular
// quantity in [-half, half).
//
//	Mean([]float64{350, 355, 0, 5}, InDegrees()) // ≈ -2.5
//
// Angle sets that cancel exactly (e.g. an antipodal pair) have a zero
// resultant vector, whose argument is 0 by the atan2 convention.
func Mean(angles []float64, opts ...Option) float64 {
	o := gatherOptions(opts)
	a := o.arc()

	return meanAngle(resultantOf(angles, a, o.skipNaN), a)
}

// Var calculates the circular variance 1 − |resultant|, a dimensionless
// dispersion measure in [0, 1] regardless of unit: 0 for identical
// angles, 1 for complete cancellation. It is not a circular quantity.
// An approximate relation 2·Var ≈ Std² holds only for small dispersion.
func Var(angles []float64, opts ...Option) float64 {
	o := gatherOptions(opts)

	return varOf(resultantOf(angles, o.arc(), o.skipNaN))
}

// Std calculates the circular standard deviation sqrt(−2·ln|resultant|),
// a non-negative dispersion measure that is not unit-converted and not a
// circular quantity. It diverges to +Inf as the resultant vanishes;
// float64 rounding saturates the antipodal case near 8.64.
func Std(angles []float64, opts ...Option) float64 {
	o := gatherOptions(opts)

	return stdOf(resultantOf(angles, o.arc(), o.skipNaN))
}

// reduceResultant reduces t's angles to resultant vectors — over all
// elements by default, or lane-wise along one axis under Along(axis) —
// then finishes each resultant into a float via finish.
// Element order inside every lane follows row-major input order.
func reduceResultant(t *tensor.Dense, o options, finish func(complex128) float64) (*tensor.Dense, error) {
	if t == nil {
		return nil, ErrNilTensor
	}
	a := o.arc()

	// Full reduction: one resultant over the whole buffer.
	if !o.hasAxis {
		return tensor.Scalar(finish(resultantOf(t.Raw(), a, o.skipNaN))), nil
	}

	outer, size, inner, err := t.AxisSpans(o.axis)
	if err != nil {
		return nil, err
	}
	shape, err := t.ReducedShape(o.axis)
	if err != nil {
		return nil, err
	}
	out, err := tensor.New(shape...)
	if err != nil {
		return nil, err
	}

	// One lane per retained (outer, inner) position.
	src := t.Raw()
	dst := out.Raw()
	lane := make([]float64, size)
	for oi := 0; oi < outer; oi++ {
		for ii := 0; ii < inner; ii++ {
			for j := 0; j < size; j++ {
				lane[j] = src[(oi*size+j)*inner+ii]
			}
			dst[oi*inner+ii] = finish(resultantOf(lane, a, o.skipNaN))
		}
	}

	return out, nil
}

// MeanTensor is Mean over a tensor of angles: a rank-0 result by default,
// or one mean per retained axis position under Along(axis).
func MeanTensor(t *tensor.Dense, opts ...Option) (*tensor.Dense, error) {
	o := gatherOptions(opts)
	a := o.arc()

	return reduceResultant(t, o, func(c complex128) float64 { return meanAngle(c, a) })
}

// VarTensor is Var over a tensor of angles: a rank-0 result by default,
// or one variance per retained axis position under Along(axis).
func VarTensor(t *tensor.Dense, opts ...Option) (*tensor.Dense, error) {
	return reduceResultant(t, gatherOptions(opts), varOf)
}

// StdTensor is Std over a tensor of angles: a rank-0 result by default,
// or one deviation per retained axis position under Along(axis).
func StdTensor(t *tensor.Dense, opts ...Option) (*tensor.Dense, error) {
	return reduceResultant(t, gatherOptions(opts), stdOf)
}
