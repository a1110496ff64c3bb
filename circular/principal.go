package circular

import (
	"math"

	"github.com/nathanielatom/clockwork/tensor"
)

// principal wraps theta into the half-open principal branch [-half, half)
// of arc a. The angle is taken through its unit vector (cos, sin) and back
// through atan2, so inputs of arbitrary magnitude (many turns either way)
// reduce correctly; a trailing guard closes the branch on the positive
// side, mapping exactly +half to -half.
func principal(theta float64, a Arc) float64 {
	r := a.toRad(theta)
	p := a.fromRad(math.Atan2(math.Sin(r), math.Cos(r)))
	half := a.Half()
	if p >= half {
		p -= a.Span()
	}
	if p < -half {
		p += a.Span()
	}

	return p
}

// PrincipalAngle maps any angle to its canonical representative modulo the
// full arc, lying in [-half, half). Exactly +half maps to -half:
//
//	PrincipalAngle(180, InDegrees())  // -180
//	PrincipalAngle(270, InDegrees())  // -90
//	PrincipalAngle(14.5, WithArc(12)) // 2.5
//
// Inputs far outside the principal branch reduce with ordinary
// floating-point error (e.g. 470° → 109.999…97°); values exactly on the
// branch cut after many turns may land on either side of it.
// Accepts any finite real; never errors.
func PrincipalAngle(theta float64, opts ...Option) float64 {
	o := gatherOptions(opts)

	return principal(theta, o.arc())
}

// PrincipalAngleTensor applies PrincipalAngle element-wise, preserving
// shape and element order.
func PrincipalAngleTensor(t *tensor.Dense, opts ...Option) (*tensor.Dense, error) {
	if t == nil {
		return nil, ErrNilTensor
	}
	o := gatherOptions(opts)
	a := o.arc()

	return t.Map(func(v float64) float64 { return principal(v, a) }), nil
}
