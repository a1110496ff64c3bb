package circular

import (
	"fmt"
	"math"

	"github.com/nathanielatom/clockwork/tensor"
)

// subOne computes the circular distance between two angles on a circle of
// the given span:
//
//	(span/2 − | |a−b| − span/2 |)  mod span
//
// The modulo is taken with the sign of the divisor (so the result is
// always non-negative), and reflex flips to the longer way around.
func subOne(minuend, subtrahend, span float64, reflex bool) float64 {
	d := span/2 - math.Abs(math.Abs(minuend-subtrahend)-span/2)
	d = math.Mod(d, span)
	if d < 0 {
		d += span
	}
	if reflex {
		d = span - d
	}

	return d
}

// Sub calculates the circular difference minuend − subtrahend: the closer
// (non-reflex, ≤ half) distance between the two angles, or the reflex
// distance under Reflex(). The result is non-negative and
// order-independent — Sub(a, b) == Sub(b, a):
//
//	Sub(10, 350, InDegrees())           // 20
//	Sub(10, 350, InDegrees(), Reflex()) // 340
//
// The circle defaults to 360 under InDegrees() and 2π otherwise;
// WithArc overrides both.
func Sub(minuend, subtrahend float64, opts ...Option) float64 {
	o := gatherOptions(opts)

	return subOne(minuend, subtrahend, o.arc().Span(), o.reflex)
}

// SubTensor is Sub element-wise over tensors, broadcasting minuend against
// subtrahend under standard rules.
func SubTensor(minuend, subtrahend *tensor.Dense, opts ...Option) (*tensor.Dense, error) {
	if minuend == nil || subtrahend == nil {
		return nil, ErrNilTensor
	}
	o := gatherOptions(opts)
	span := o.arc().Span()

	shape, err := tensor.BroadcastShapes(minuend.Shape(), subtrahend.Shape())
	if err != nil {
		return nil, fmt.Errorf("circular: minuend shape %v against subtrahend shape %v: %w",
			minuend.Shape(), subtrahend.Shape(), err)
	}
	bm, err := minuend.BroadcastTo(shape)
	if err != nil {
		return nil, err
	}
	bs, err := subtrahend.BroadcastTo(shape)
	if err != nil {
		return nil, err
	}

	out, err := tensor.New(shape...)
	if err != nil {
		return nil, err
	}
	ms, ss, os := bm.Raw(), bs.Raw(), out.Raw()
	for i := range os {
		os[i] = subOne(ms[i], ss[i], span, o.reflex)
	}

	return out, nil
}
