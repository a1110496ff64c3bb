package circular

import (
	"fmt"

	"github.com/nathanielatom/clockwork/tensor"
)

// sieveOne tests one principal-form angle against one principal-form
// sector. A sector with start ≤ end does not cross the branch cut and is
// the ordinary interval test; start > end means the sector wraps through
// ±half, and membership is either side of the cut.
func sieveOne(theta, start, end float64, open bool) bool {
	if start <= end {
		if open {
			return theta > start && theta < end
		}

		return theta >= start && theta <= end
	}
	if open {
		return theta > start || theta < end
	}

	return theta >= start || theta <= end
}

// Sieve reports whether theta lies within the circular sector sweeping
// from start to end in the positive direction. All three angles are
// reduced to principal form first, so sectors and angles of arbitrary
// magnitude work, including sectors straddling the branch cut:
//
//	Sieve(790.234, 25, 92, InDegrees())    // true  (790.234° → 70.234°)
//	Sieve(-180, 170, -170, InDegrees())    // true  (wrapping sector)
//
// Boundaries are inclusive by default; OpenBounds() makes them strict.
//
// Angles exactly on a boundary that reach it only after principal
// reduction of non-principal input can flip inclusion by the reduction's
// rounding error. This imprecision is part of the contract.
func Sieve(theta, start, end float64, opts ...Option) bool {
	o := gatherOptions(opts)
	a := o.arc()

	return sieveOne(principal(theta, a), principal(start, a), principal(end, a), o.open)
}

// SieveTensor is Sieve over tensors. start and end must have identical
// shapes; angles broadcasts against them (a scalar angle is tested against
// every sector, and vice versa). The branch-cut decision is made per
// corresponding (start, end) pair. Returns a boolean mask of the
// broadcast shape.
func SieveTensor(angles, start, end *tensor.Dense, opts ...Option) (*tensor.Mask, error) {
	if angles == nil || start == nil || end == nil {
		return nil, ErrNilTensor
	}
	// The system's one explicit validation: sector bounds must pair up.
	if !tensor.SameShape(start.Shape(), end.Shape()) {
		return nil, fmt.Errorf("circular: start shape %v and end shape %v must be the same: %w",
			start.Shape(), end.Shape(), ErrShapeMismatch)
	}
	o := gatherOptions(opts)
	a := o.arc()

	shape, err := tensor.BroadcastShapes(angles.Shape(), start.Shape())
	if err != nil {
		return nil, fmt.Errorf("circular: angles shape %v against sector shape %v: %w",
			angles.Shape(), start.Shape(), err)
	}

	bAngles, err := angles.BroadcastTo(shape)
	if err != nil {
		return nil, err
	}
	bStart, err := start.BroadcastTo(shape)
	if err != nil {
		return nil, err
	}
	bEnd, err := end.BroadcastTo(shape)
	if err != nil {
		return nil, err
	}

	mask, err := tensor.NewMask(shape...)
	if err != nil {
		return nil, err
	}
	ts, ss, es, ms := bAngles.Raw(), bStart.Raw(), bEnd.Raw(), mask.Raw()
	for i := range ms {
		ms[i] = sieveOne(principal(ts[i], a), principal(ss[i], a), principal(es[i], a), o.open)
	}

	return mask, nil
}
