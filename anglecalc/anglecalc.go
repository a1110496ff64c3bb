package anglecalc

import "github.com/nathanielatom/clockwork/circular"

// AngleCalc bundles degree-based angle utilities for heading math.
// It is stateless; the zero value is ready to use and safe to share.
type AngleCalc struct{}

// BoundTo180 converts any angle in degrees to the principal branch
// [-180, 180). Exactly 180 maps to -180.
func (AngleCalc) BoundTo180(angle float64) float64 {
	return circular.PrincipalAngle(angle, circular.InDegrees())
}

// IsAngleBetween reports whether middle lies strictly inside the smaller
// (non-reflex) sector bounded by first and second, all in degrees.
// middle exactly equal to first or second is not between.
//
// The non-reflex sector's orientation is recovered from the closer
// circular distance d between first and second: if stepping first forward
// by d lands on second, the sector runs first → second in the positive
// direction, otherwise second → first. The membership test itself is the
// exclusive sector sieve, so sectors straddling ±180 work unchanged.
func (AngleCalc) IsAngleBetween(first, middle, second float64) bool {
	d := circular.Sub(first, second, circular.InDegrees())

	start, end := second, first
	if circular.PrincipalAngle(first+d, circular.InDegrees()) ==
		circular.PrincipalAngle(second, circular.InDegrees()) {
		start, end = first, second
	}

	return circular.Sieve(middle, start, end, circular.InDegrees(), circular.OpenBounds())
}
